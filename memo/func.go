package memo

// Func1 memoizes a pure single-argument function behind a bounded Cache.
func Func1[A comparable, O any](pureFn func(A) O, maxSize uint32) func(A) O {
	cache := NewCache[A, O](maxSize)
	return func(a A) O {
		v, ok := cache.Load(a)
		if !ok {
			v = pureFn(a)
			cache.Store(a, v)
		}
		return v
	}
}

type pair[A, B comparable] struct {
	a A
	b B
}

// Func2 memoizes a pure two-argument function behind a bounded Cache.
// Argument order is part of the key.
func Func2[A, B comparable, O any](pureFn func(A, B) O, maxSize uint32) func(A, B) O {
	cache := NewCache[pair[A, B], O](maxSize)
	return func(a A, b B) O {
		k := pair[A, B]{a: a, b: b}
		v, ok := cache.Load(k)
		if !ok {
			v = pureFn(a, b)
			cache.Store(k, v)
		}
		return v
	}
}
