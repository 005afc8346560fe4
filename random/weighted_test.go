package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	extensions "github.com/orbitalgames/collections-extensions"
)

func TestWeightedPickConvergence(t *testing.T) {
	table := Weighted[string]{
		{Weight: 7, Item: "common"},
		{Weight: 2, Item: "rare"},
		{Weight: 1, Item: "epic"},
	}

	src := NewSeeded(42)
	const draws = 100000

	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		item, err := table.Pick(src)
		require.NoError(t, err)
		counts[item]++
	}

	assert.InDelta(t, 0.7, float64(counts["common"])/draws, 0.02)
	assert.InDelta(t, 0.2, float64(counts["rare"])/draws, 0.02)
	assert.InDelta(t, 0.1, float64(counts["epic"])/draws, 0.02)
}

func TestWeightedPickZeroWeightNeverPicked(t *testing.T) {
	table := Weighted[string]{
		{Weight: 1, Item: "a"},
		{Weight: 0, Item: "never"},
		{Weight: 1, Item: "b"},
	}

	src := NewSeeded(7)
	for i := 0; i < 1000; i++ {
		item, err := table.Pick(src)
		require.NoError(t, err)
		assert.NotEqual(t, "never", item)
	}
}

func TestWeightedPickDeterministicWithSeed(t *testing.T) {
	table := Weighted[int]{
		{Weight: 1, Item: 1},
		{Weight: 1, Item: 2},
		{Weight: 1, Item: 3},
	}

	a, b := NewSeeded(99), NewSeeded(99)
	for i := 0; i < 100; i++ {
		va, err := table.Pick(a)
		require.NoError(t, err)
		vb, err := table.Pick(b)
		require.NoError(t, err)
		assert.Equal(t, va, vb)
	}
}

func TestWeightedPickErrors(t *testing.T) {
	t.Run("EmptySet", func(t *testing.T) {
		_, err := Weighted[int]{}.Pick(NewSeeded(1))
		assert.ErrorIs(t, err, extensions.ErrInvalidState)
	})

	t.Run("ZeroSum", func(t *testing.T) {
		table := Weighted[int]{{Weight: 0, Item: 1}, {Weight: 0, Item: 2}}
		_, err := table.Pick(NewSeeded(1))
		assert.ErrorIs(t, err, extensions.ErrInvalidState)
	})

	t.Run("NegativeWeight", func(t *testing.T) {
		table := Weighted[int]{{Weight: 1, Item: 1}, {Weight: -1, Item: 2}}
		_, err := table.Pick(NewSeeded(1))
		assert.ErrorIs(t, err, extensions.ErrInvalidArgument)
	})
}

func TestWeightedPickDefaultsSource(t *testing.T) {
	table := Weighted[string]{{Weight: 1, Item: "only"}}
	item, err := table.Pick(nil)
	require.NoError(t, err)
	assert.Equal(t, "only", item)
}

func TestPickBy(t *testing.T) {
	type loot struct {
		name   string
		weight float64
	}
	items := []loot{
		{name: "sword", weight: 1},
		{name: "shield", weight: 3},
	}

	src := NewSeeded(5)
	counts := map[string]int{}
	for i := 0; i < 20000; i++ {
		item, err := PickBy(items, func(l loot) float64 { return l.weight }, src)
		require.NoError(t, err)
		counts[item.name]++
	}
	assert.InDelta(t, 0.25, float64(counts["sword"])/20000, 0.03)
	assert.InDelta(t, 0.75, float64(counts["shield"])/20000, 0.03)
}

func TestPickByNilSelector(t *testing.T) {
	_, err := PickBy([]int{1, 2}, nil, NewSeeded(1))
	assert.ErrorIs(t, err, extensions.ErrInvalidArgument)
}
