package enumerate

import (
	"fmt"
	"iter"
	"math"

	"github.com/on-the-ground/combinat_ive_go/seq"
)

// Combinations returns all k-element subsets of elements, fully
// materialized, in lexicographic order of their positions in the input.
// k == 0 produces a single empty tuple; k < 0 or k > len(elements) produces
// an empty result.
//
// Fails with ErrSizeOverflow when the number of combinations does not fit
// in int.
func Combinations[T any](elements []T, k int) ([][]T, error) {
	total, err := Binomial(len(elements), k)
	if err != nil {
		return nil, err
	}
	if total > math.MaxInt {
		return nil, fmt.Errorf("%w: choosing %d of %d gives %d combinations", ErrSizeOverflow, k, len(elements), total)
	}
	out := make([][]T, 0, int(total))
	return seq.AppendTo(out, CombinationsSeq(elements, k)), nil
}

// CombinationsSeq is the lazy form of Combinations: same subsets, same
// order, one per pull. The cursor is a slice of k positions advanced by the
// classic successor rule — bump the rightmost position that can still move,
// then reset everything after it to the consecutive run that follows.
func CombinationsSeq[T any](elements []T, k int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := len(elements)
		if k < 0 || k > n {
			return
		}
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			combo := make([]T, k)
			for i, j := range idx {
				combo[i] = elements[j]
			}
			if !yield(combo) {
				return
			}
			j := k - 1
			for ; j >= 0 && idx[j] == n-k+j; j-- {
			}
			if j < 0 {
				return
			}
			idx[j]++
			for i := j + 1; i < k; i++ {
				idx[i] = idx[i-1] + 1
			}
		}
	}
}
