package enumerate_test

import (
	"testing"

	"github.com/on-the-ground/combinat_ive_go/enumerate"
	"github.com/on-the-ground/combinat_ive_go/seq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinationsLexicographic(t *testing.T) {
	got, err := enumerate.Combinations([]int{0, 1, 2, 3, 4}, 3)
	require.NoError(t, err)

	want := [][]int{
		{0, 1, 2}, {0, 1, 3}, {0, 1, 4}, {0, 2, 3}, {0, 2, 4},
		{0, 3, 4}, {1, 2, 3}, {1, 2, 4}, {1, 3, 4}, {2, 3, 4},
	}
	assert.Equal(t, want, got)
}

func TestCombinationsEdges(t *testing.T) {
	full, err := enumerate.Combinations([]int{1, 2, 3}, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}}, full, "k == n is the full tuple")

	empty, err := enumerate.Combinations([]int{1, 2, 3}, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{}}, empty, "k == 0 is the empty tuple")

	none, err := enumerate.Combinations([]int{1, 2, 3}, 4)
	require.NoError(t, err)
	assert.Empty(t, none)

	negative, err := enumerate.Combinations([]int{1, 2, 3}, -1)
	require.NoError(t, err)
	assert.Empty(t, negative)
}

func TestCombinationsCountMatchesBinomial(t *testing.T) {
	elements := make([]int, 8)
	for i := range elements {
		elements[i] = i
	}
	for k := 0; k <= 8; k++ {
		got, err := enumerate.Combinations(elements, k)
		require.NoError(t, err)

		want, err := enumerate.Binomial(8, k)
		require.NoError(t, err)
		assert.Len(t, got, int(want))
	}
}

func TestCombinationsSeqEarlyExit(t *testing.T) {
	elements := make([]int, 60)
	for i := range elements {
		elements[i] = i
	}
	// C(60, 30) ≈ 1.18e17 — enumerate only the first few.
	got := seq.Collect(seq.Take(enumerate.CombinationsSeq(elements, 30), 2))

	first := make([]int, 30)
	for i := range first {
		first[i] = i
	}
	second := append(append([]int{}, first[:29]...), 30)

	require.Len(t, got, 2)
	assert.Equal(t, first, got[0])
	assert.Equal(t, second, got[1], "only the last position advanced")
}
