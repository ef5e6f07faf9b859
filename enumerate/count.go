package enumerate

import (
	"fmt"
	"math/bits"

	"github.com/on-the-ground/combinat_ive_go/memo"
)

// ProductLen returns the number of tuples Product yields for components of
// the given sizes: the product of all of them, or zero when any component is
// empty. Zero sizes means zero components, which has exactly one tuple.
//
// Fails with ErrSizeOverflow when the count exceeds uint64.
func ProductLen(sizes ...int) (uint64, error) {
	total := uint64(1)
	for _, n := range sizes {
		if n <= 0 {
			return 0, nil
		}
		hi, lo := bits.Mul64(total, uint64(n))
		if hi != 0 {
			return 0, fmt.Errorf("%w: product of sizes %v exceeds uint64", ErrSizeOverflow, sizes)
		}
		total = lo
	}
	return total, nil
}

// PowerSetLen returns 2^n, the number of subsets of an n-element input.
// Fails with ErrSizeOverflow when n >= 64.
func PowerSetLen(n int) (uint64, error) {
	if n < 0 {
		n = 0
	}
	if n >= 64 {
		return 0, fmt.Errorf("%w: 2^%d exceeds uint64", ErrSizeOverflow, n)
	}
	return 1 << n, nil
}

// factorials memoizes the n! table; 21 distinct inputs fit in uint64, so the
// bound comfortably covers the whole domain.
var factorials = memo.Func1(factorialOf, 32)

func factorialOf(n int) uint64 {
	f := uint64(1)
	for i := 2; i <= n; i++ {
		f *= uint64(i)
	}
	return f
}

// Factorial returns n!, the number of permutations of an n-element input.
// Fails with ErrSizeOverflow when n > 20.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		n = 0
	}
	if n > 20 {
		return 0, fmt.Errorf("%w: %d! exceeds uint64", ErrSizeOverflow, n)
	}
	return factorials(n), nil
}

type binom struct {
	v  uint64
	ok bool
}

var binomials = memo.Func2(binomialOf, 4096)

// binomialOf computes C(n, k) by the multiplicative formula, carrying each
// intermediate product in 128 bits so only a genuinely unrepresentable
// result reports !ok. Each step divides exactly: the running value after
// step i is C(n-k+i, i), an integer.
func binomialOf(n, k int) binom {
	v := uint64(1)
	for i := 1; i <= k; i++ {
		hi, lo := bits.Mul64(v, uint64(n-k+i))
		if hi >= uint64(i) {
			return binom{}
		}
		v, _ = bits.Div64(hi, lo, uint64(i))
	}
	return binom{v: v, ok: true}
}

// Binomial returns C(n, k), the number of k-element subsets of an n-element
// input. k outside [0, n] has no subsets and counts zero. Fails with
// ErrSizeOverflow when the count exceeds uint64.
func Binomial(n, k int) (uint64, error) {
	if k < 0 || k > n {
		return 0, nil
	}
	if k > n-k {
		k = n - k
	}
	r := binomials(n, k)
	if !r.ok {
		return 0, fmt.Errorf("%w: C(%d, %d) exceeds uint64", ErrSizeOverflow, n, k)
	}
	return r.v, nil
}
