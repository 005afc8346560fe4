package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func elementCounts[T comparable](s []T) map[T]int {
	counts := make(map[T]int, len(s))
	for _, v := range s {
		counts[v]++
	}
	return counts
}

func TestShufflePreservesElements(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	shuffled := append([]int(nil), in...)

	Shuffle(shuffled, NewSeeded(3))

	assert.Equal(t, elementCounts(in), elementCounts(shuffled))
	assert.Len(t, shuffled, len(in))
}

func TestShuffleTwoElementFairness(t *testing.T) {
	src := NewSeeded(17)
	const trials = 10000

	swapped := 0
	for i := 0; i < trials; i++ {
		pair := []string{"a", "b"}
		Shuffle(pair, src)
		if pair[0] == "b" {
			swapped++
		}
	}

	// Both orderings should come up roughly half the time.
	assert.Greater(t, swapped, 4000)
	assert.Less(t, swapped, 6000)
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	a := []int{1, 2, 3, 4, 5}
	b := []int{1, 2, 3, 4, 5}

	Shuffle(a, NewSeeded(21))
	Shuffle(b, NewSeeded(21))

	assert.Equal(t, a, b)
}

func TestShuffleDegenerateLengths(t *testing.T) {
	empty := []int{}
	Shuffle(empty, NewSeeded(1))
	assert.Empty(t, empty)

	single := []int{42}
	Shuffle(single, NewSeeded(1))
	assert.Equal(t, []int{42}, single)
}

func TestShuffleCopyLeavesInputIntact(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	out := ShuffleCopy(in, NewSeeded(8))

	assert.Equal(t, []int{1, 2, 3, 4, 5}, in)
	assert.Equal(t, elementCounts(in), elementCounts(out))
}

func TestSecureShufflePreservesElements(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	shuffled := append([]int(nil), in...)

	err := SecureShuffle(shuffled)
	require.NoError(t, err)
	assert.Equal(t, elementCounts(in), elementCounts(shuffled))
}

func TestSecureSourceRanges(t *testing.T) {
	src := Secure()
	for i := 0; i < 1000; i++ {
		n := src.IntN(7)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 7)

		f := src.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func TestDefaultSourcesDiffer(t *testing.T) {
	// Not a strict guarantee, but two entropy-seeded sources agreeing on a
	// 64-draw prefix would be a broken seeding path in practice.
	a, b := Default(), Default()
	same := true
	for i := 0; i < 64; i++ {
		if a.IntN(1000) != b.IntN(1000) {
			same = false
		}
	}
	assert.False(t, same)
}
