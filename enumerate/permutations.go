package enumerate

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/on-the-ground/combinat_ive_go/seq"
)

// Permutations returns every ordering of elements, fully materialized, in a
// deterministic order beginning with the input order. The empty input has
// exactly one permutation, the empty tuple.
//
// Fails with ErrSizeOverflow when n! does not fit in int.
func Permutations[T any](elements []T) ([][]T, error) {
	total, err := Factorial(len(elements))
	if err != nil {
		return nil, err
	}
	if total > math.MaxInt {
		return nil, fmt.Errorf("%w: %d elements have %d permutations", ErrSizeOverflow, len(elements), total)
	}
	out := make([][]T, 0, int(total))
	return seq.AppendTo(out, PermutationsSeq(elements)), nil
}

// PermutationsSeq is the lazy form of Permutations: same orderings, same
// order, one per pull. Orderings are generated by in-place position swaps on
// a private copy of the input, with a fresh clone yielded each time, so the
// input is never mutated and yielded tuples may be retained.
func PermutationsSeq[T any](elements []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		buf := slices.Clone(elements)
		permuteInto(buf, 0, yield)
	}
}

// permuteInto fixes positions left to right: each candidate is swapped into
// position l, the suffix is permuted, and the swap is undone. Returns false
// once the consumer stops.
func permuteInto[T any](buf []T, l int, yield func([]T) bool) bool {
	if l == len(buf) {
		return yield(slices.Clone(buf))
	}
	for i := l; i < len(buf); i++ {
		buf[l], buf[i] = buf[i], buf[l]
		if !permuteInto(buf, l+1, yield) {
			return false
		}
		buf[l], buf[i] = buf[i], buf[l]
	}
	return true
}
