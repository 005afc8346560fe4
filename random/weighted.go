package random

import (
	"fmt"

	extensions "github.com/orbitalgames/collections-extensions"
)

// WeightedItem pairs an element with its selection weight. Weights must be
// non-negative; a zero-weight item is legal but never picked.
type WeightedItem[T any] struct {
	Weight float64
	Item   T
}

// Weighted is a set of weighted items supporting proportional random picks.
type Weighted[T any] []WeightedItem[T]

// Pick draws one item with probability proportional to its weight, using a
// linear scan over the cumulative weights. O(n) per draw; fine for the small
// one-off tables this package is meant for, and deliberately without any
// precomputed prefix-sum structure.
//
// A nil src means Default(). An empty set or a weight sum of zero is
// extensions.ErrInvalidState; a negative weight is extensions.ErrInvalidArgument.
func (w Weighted[T]) Pick(src Source) (T, error) {
	var zero T
	if len(w) == 0 {
		return zero, fmt.Errorf("weighted pick over empty set: %w", extensions.ErrInvalidState)
	}

	var sum float64
	for i, item := range w {
		if item.Weight < 0 {
			return zero, fmt.Errorf("negative weight %v at index %d: %w", item.Weight, i, extensions.ErrInvalidArgument)
		}
		sum += item.Weight
	}
	if sum <= 0 {
		return zero, fmt.Errorf("weight sum is zero: %w", extensions.ErrInvalidState)
	}

	if src == nil {
		src = Default()
	}

	r := src.Float64() * sum
	for _, item := range w {
		if r < item.Weight {
			return item.Item, nil
		}
		r -= item.Weight
	}

	// Float accumulation can leave r marginally above the last boundary.
	return w[len(w)-1].Item, nil
}

// PickBy draws one element of items with probability proportional to
// weightOf(element). It is the accessor-function form of Weighted.Pick for
// callers whose elements already carry their weight.
func PickBy[S any](items []S, weightOf func(S) float64, src Source) (S, error) {
	var zero S
	if weightOf == nil {
		return zero, fmt.Errorf("nil weight selector: %w", extensions.ErrInvalidArgument)
	}

	w := make(Weighted[S], len(items))
	for i, item := range items {
		w[i] = WeightedItem[S]{Weight: weightOf(item), Item: item}
	}
	return w.Pick(src)
}
