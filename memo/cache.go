package memo

import (
	"sync"
	"sync/atomic"
)

// Cache is a bounded memo table safe for concurrent use. Two generations of
// entries are kept; Store rotates them when the active generation reaches
// maxSize, discarding the previous fallback wholesale.
type Cache[K comparable, V any] struct {
	gens    [2]*sync.Map
	headIdx uint32
	size    atomic.Uint32
	maxSize uint32
}

func NewCache[K comparable, V any](maxSize uint32) *Cache[K, V] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &Cache[K, V]{
		gens:    [2]*sync.Map{{}, {}},
		maxSize: maxSize,
	}
}

// Load looks up key in the active generation, falling back to the previous
// one.
func (c *Cache[K, V]) Load(key K) (V, bool) {
	headIdx := c.headIdx
	v, ok := c.gens[headIdx].Load(key)
	if !ok {
		if v, ok = c.gens[1-headIdx].Load(key); !ok {
			var zero V
			return zero, false
		}
	}
	return v.(V), true
}

// Store records key in the active generation, rotating generations first
// when the active one is full.
func (c *Cache[K, V]) Store(key K, value V) {
	if swapped := c.size.CompareAndSwap(c.maxSize, 0); swapped {
		c.headIdx = 1 - c.headIdx
		c.gens[c.headIdx] = &sync.Map{}
	}
	c.gens[c.headIdx].Store(key, value)
	c.size.Add(1)
}
