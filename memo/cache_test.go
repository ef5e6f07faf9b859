package memo_test

import (
	"testing"

	"github.com/on-the-ground/combinat_ive_go/memo"

	"github.com/stretchr/testify/assert"
)

func TestCacheLoadStore(t *testing.T) {
	c := memo.NewCache[string, int](4)

	_, ok := c.Load("a")
	assert.False(t, ok)

	c.Store("a", 1)
	v, ok := c.Load("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestCacheRotationKeepsFallback(t *testing.T) {
	c := memo.NewCache[int, int](2)

	c.Store(1, 10)
	c.Store(2, 20)
	// The active generation is full; this store rotates.
	c.Store(3, 30)

	// Entries from the previous generation stay reachable until the next
	// rotation discards them.
	for _, k := range []int{1, 2, 3} {
		v, ok := c.Load(k)
		assert.Truef(t, ok, "key %d", k)
		assert.Equal(t, k*10, v)
	}

	c.Store(4, 40)
	// Second rotation: the generation holding 1 and 2 is gone.
	c.Store(5, 50)
	_, ok := c.Load(1)
	assert.False(t, ok, "two rotations age an entry out")
}

func TestNewCacheZeroSizePanics(t *testing.T) {
	assert.Panics(t, func() { memo.NewCache[int, int](0) })
}
