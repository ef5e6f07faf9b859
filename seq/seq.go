package seq

import (
	"errors"
	"fmt"
	"iter"
)

// ErrUnbounded reports that a sequence expected to be finite produced more
// elements than the caller was willing to materialize.
var ErrUnbounded = errors.New("sequence exceeded bound during materialization")

// Empty returns a sequence that yields nothing.
func Empty[V any]() iter.Seq[V] {
	return func(_ func(V) bool) {}
}

// Concat concatenates the given sequences into a single sequence.
func Concat[V any](seqs ...iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, s := range seqs {
			for v := range s {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Map returns a sequence whose elements are produced by applying fn to each
// element of src. Values are transformed only as they are requested.
func Map[A, B any](src iter.Seq[A], fn func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for a := range src {
			if !yield(fn(a)) {
				return
			}
		}
	}
}

// Filter returns a sequence containing only the elements of src for which
// keep returns true.
func Filter[V any](src iter.Seq[V], keep func(V) bool) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range src {
			if !keep(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Enumerate pairs each element of src with its zero-based position.
func Enumerate[V any](src iter.Seq[V]) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		i := 0
		for v := range src {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Take returns a sequence of at most n elements from the start of src.
// A non-positive n yields nothing.
func Take[V any](src iter.Seq[V], n int) iter.Seq[V] {
	return func(yield func(V) bool) {
		if n <= 0 {
			return
		}
		left := n
		for v := range src {
			if !yield(v) {
				return
			}
			if left--; left == 0 {
				return
			}
		}
	}
}

// AppendTo appends every element of src to dst and returns the extended
// slice. Useful when the caller already knows the final size and wants to
// provide capacity up front.
func AppendTo[S ~[]V, V any](dst S, src iter.Seq[V]) S {
	for v := range src {
		dst = append(dst, v)
	}
	return dst
}

// Collect materializes src into a slice. The caller asserts finiteness; for
// sequences of unknown origin use CollectBounded.
func Collect[V any](src iter.Seq[V]) []V {
	return AppendTo[[]V](nil, src)
}

// CollectBounded materializes src into a slice of at most max elements.
// It fails with ErrUnbounded as soon as src produces a max+1-th element,
// making it the standing guard against materializing a sequence that was
// supposed to be finite but is not.
func CollectBounded[V any](src iter.Seq[V], max int) ([]V, error) {
	if max < 0 {
		max = 0
	}
	out := make([]V, 0, min(max, 64))
	for v := range src {
		if len(out) == max {
			return nil, fmt.Errorf("%w: more than %d elements", ErrUnbounded, max)
		}
		out = append(out, v)
	}
	return out, nil
}
