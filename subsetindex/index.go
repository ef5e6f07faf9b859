// Package subsetindex builds a set-of-sets view over enumeration output.
//
// Enumeration yields subsets as ordered tuples; an Index records each tuple
// under a canonical key so that membership of a given subset — including the
// empty tuple and the full input — can be answered in constant time, and
// duplicate-looking tuples arising from duplicate input elements collapse to
// one entry.
package subsetindex

import (
	"iter"

	"github.com/cespare/xxhash/v2"
)

// Index records subsets under an xxhash key of their rendered elements.
// Hash collisions are resolved by element-wise comparison within a bucket,
// so equality is exact as long as render is injective on the element type.
//
// Index is not safe for concurrent mutation.
type Index[T any] struct {
	render  func(T) string
	buckets map[uint64][][]T
	size    int
}

// New returns an empty Index using render to give each element a canonical
// string form.
func New[T any](render func(T) string) *Index[T] {
	return &Index[T]{
		render:  render,
		buckets: make(map[uint64][][]T),
	}
}

// Add records subset, reporting whether it was not already present.
// The subset is stored as given; the caller must not mutate it afterwards.
func (ix *Index[T]) Add(subset []T) bool {
	k := ix.key(subset)
	for _, seen := range ix.buckets[k] {
		if ix.equal(seen, subset) {
			return false
		}
	}
	ix.buckets[k] = append(ix.buckets[k], subset)
	ix.size++
	return true
}

// AddAll records every subset produced by src, returning how many were new.
func (ix *Index[T]) AddAll(src iter.Seq[[]T]) int {
	added := 0
	for subset := range src {
		if ix.Add(subset) {
			added++
		}
	}
	return added
}

// Contains reports whether subset was recorded, comparing element-wise in
// order.
func (ix *Index[T]) Contains(subset []T) bool {
	for _, seen := range ix.buckets[ix.key(subset)] {
		if ix.equal(seen, subset) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct subsets recorded.
func (ix *Index[T]) Len() int { return ix.size }

// key hashes the rendered elements with a separator byte so element
// boundaries cannot collide ("ab" vs "a","b").
func (ix *Index[T]) key(subset []T) uint64 {
	d := xxhash.New()
	for _, e := range subset {
		_, _ = d.WriteString(ix.render(e))
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

func (ix *Index[T]) equal(a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if ix.render(a[i]) != ix.render(b[i]) {
			return false
		}
	}
	return true
}
