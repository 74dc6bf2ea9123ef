package sorting_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algotrace/sorting"
)

func TestRandom_Deterministic(t *testing.T) {
	a, err := sorting.Random(30, 10, sorting.WithSeed(42))
	require.NoError(t, err)
	b, err := sorting.Random(30, 10, sorting.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed, same values")

	zero, err := sorting.Random(30, 10)
	require.NoError(t, err)
	one, err := sorting.Random(30, 10, sorting.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, one, zero, "seed 0 maps to the default seed")

	for _, v := range a {
		assert.True(t, v >= 1 && v <= 10, "value %d outside [1,10]", v)
	}
}

func TestReversed(t *testing.T) {
	got, err := sorting.Reversed(4)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1}, got)

	got, err = sorting.Reversed(0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNearlySorted_IsPermutation(t *testing.T) {
	got, err := sorting.NearlySorted(10, 4, sorting.WithSeed(5))
	require.NoError(t, err)
	sorted := slices.Clone(got)
	slices.Sort(sorted)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, sorted)

	got, err = sorting.NearlySorted(1, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)
}

func TestFewUnique_Range(t *testing.T) {
	got, err := sorting.FewUnique(25, 2, sorting.WithSeed(9))
	require.NoError(t, err)
	require.Len(t, got, 25)
	for _, v := range got {
		assert.Contains(t, []int{1, 2}, v)
	}
}

func TestGenerators_BadSize(t *testing.T) {
	_, err := sorting.Random(-1, 5)
	assert.ErrorIs(t, err, sorting.ErrBadSize)
	_, err = sorting.Random(3, 0)
	assert.ErrorIs(t, err, sorting.ErrBadSize)
	_, err = sorting.Reversed(-2)
	assert.ErrorIs(t, err, sorting.ErrBadSize)
	_, err = sorting.NearlySorted(3, -1)
	assert.ErrorIs(t, err, sorting.ErrBadSize)
	_, err = sorting.FewUnique(3, 0)
	assert.ErrorIs(t, err, sorting.ErrBadSize)
}
