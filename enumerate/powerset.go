package enumerate

import (
	"fmt"
	"iter"
	"math"

	"github.com/on-the-ground/combinat_ive_go/seq"
)

// PowerSet returns all 2^n subsets of elements, fully materialized. Each
// subset is a tuple preserving the relative order of its elements in the
// input. The result always contains the empty tuple and the full input.
//
// Subsets appear in doubling order: all subsets without the first element,
// then the same subsets with the first element prepended. For [0 1 2]:
//
//	(), (2), (1), (1 2), (0), (0 2), (0 1), (0 1 2)
//
// Fails with ErrSizeOverflow when 2^n does not fit in int.
func PowerSet[T any](elements []T) ([][]T, error) {
	total, err := PowerSetLen(len(elements))
	if err != nil {
		return nil, err
	}
	if total > math.MaxInt {
		return nil, fmt.Errorf("%w: power set of %d elements has %d subsets", ErrSizeOverflow, len(elements), total)
	}
	return powerSet(elements), nil
}

// powerSet doubles the tail's subsets: once as-is, once with the head
// prepended, in that order.
func powerSet[T any](elements []T) [][]T {
	if len(elements) == 0 {
		return [][]T{{}}
	}
	head, without := elements[0], powerSet(elements[1:])
	out := make([][]T, 0, 2*len(without))
	out = append(out, without...)
	for _, sub := range without {
		with := make([]T, 0, 1+len(sub))
		out = append(out, append(append(with, head), sub...))
	}
	return out
}

// inclusionDomain is the two-valued absent/present component used to express
// a power set as a cartesian product of boolean choices, one per element.
var inclusionDomain = []bool{false, true}

// PowerSetSeq is the lazy form of PowerSet: same subsets, same order,
// produced one per pull and with working memory of one boolean per element.
//
// It composes ProductSeq over n copies of the absent/present domain and
// applies each inclusion vector to the input by position. Because absent
// sorts before present, the resulting mask order coincides exactly with the
// doubling order of PowerSet, so the two variants agree tuple for tuple.
func PowerSetSeq[T any](elements []T) iter.Seq[[]T] {
	domains := make([][]bool, len(elements))
	for i := range domains {
		domains[i] = inclusionDomain
	}
	return seq.Map(ProductSeq(domains...), func(mask []bool) []T {
		subset := make([]T, 0, len(elements))
		for i, present := range mask {
			if present {
				subset = append(subset, elements[i])
			}
		}
		return subset
	})
}
