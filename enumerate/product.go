package enumerate

import (
	"fmt"
	"iter"
	"math"
)

// Product returns every tuple formed by choosing one element from each
// component, fully materialized. Tuples appear in nested-loop order: the
// first component varies slowest, the last fastest.
//
// Zero components produce a single empty tuple. Any empty component produces
// an empty result. Duplicate elements within a component occupy distinct
// positions and yield duplicate-looking tuples, which is expected.
//
// Fails with ErrSizeOverflow when the result size does not fit in int.
func Product[T any](components ...[]T) ([][]T, error) {
	sizes := make([]int, len(components))
	for i, c := range components {
		sizes[i] = len(c)
	}
	total, err := ProductLen(sizes...)
	if err != nil {
		return nil, err
	}
	if total > math.MaxInt {
		return nil, fmt.Errorf("%w: product of %d components has %d tuples", ErrSizeOverflow, len(components), total)
	}
	return product(components), nil
}

// product prepends each head element to every tuple of the tail product.
// The head loop is outermost, so the head varies slowest.
func product[T any](components [][]T) [][]T {
	if len(components) == 0 {
		return [][]T{{}}
	}
	head, rest := components[0], product(components[1:])
	out := make([][]T, 0, len(head)*len(rest))
	for _, x := range head {
		for _, tail := range rest {
			tuple := make([]T, 0, 1+len(tail))
			tuple = append(append(tuple, x), tail...)
			out = append(out, tuple)
		}
	}
	return out
}

// ProductSeq is the lazy form of Product: same tuples, same order, produced
// one per pull. The cursor works like an odometer with one digit per
// component — the last digit advances fastest and carries into earlier
// digits on exhaustion — so working memory is one position per component,
// independent of the output size.
//
// Each yielded tuple is a fresh slice. Ranging again restarts the odometer
// from zero.
func ProductSeq[T any](components ...[]T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for _, c := range components {
			if len(c) == 0 {
				return
			}
		}
		n := len(components)
		cursor := make([]int, n)
		for {
			tuple := make([]T, n)
			for i, c := range components {
				tuple[i] = c[cursor[i]]
			}
			if !yield(tuple) {
				return
			}
			digit := n - 1
			for ; digit >= 0; digit-- {
				cursor[digit]++
				if cursor[digit] < len(components[digit]) {
					break
				}
				cursor[digit] = 0
			}
			if digit < 0 {
				// Every digit rolled over: the odometer is back at the start.
				return
			}
		}
	}
}
