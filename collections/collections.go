// Package collections holds small generic helpers over slices and maps:
// range insertion, cartesian products, string joining, and map lookup with a
// default. Every helper is a pure function over its arguments.
package collections

import (
	"fmt"
	"strings"

	extensions "github.com/orbitalgames/collections-extensions"
)

// InsertRange returns s with values inserted starting at index i, where i may
// equal len(s) to append. The input slice is never modified. An out-of-range
// index returns s unchanged together with extensions.ErrInvalidArgument.
func InsertRange[T any](s []T, i int, values ...T) ([]T, error) {
	if i < 0 || i > len(s) {
		return s, fmt.Errorf("insert index %d out of range [0,%d]: %w", i, len(s), extensions.ErrInvalidArgument)
	}
	out := make([]T, 0, len(s)+len(values))
	out = append(out, s[:i]...)
	out = append(out, values...)
	out = append(out, s[i:]...)
	return out, nil
}

// Cartesian returns the cartesian product of sets, each result row holding one
// element per input set in order. With no sets the product is a single empty
// row; with any empty set the product is empty.
func Cartesian[T any](sets ...[]T) [][]T {
	for _, set := range sets {
		if len(set) == 0 {
			return nil
		}
	}

	product := [][]T{{}}
	for _, set := range sets {
		next := make([][]T, 0, len(product)*len(set))
		for _, row := range product {
			for _, v := range set {
				grown := make([]T, len(row), len(row)+1)
				copy(grown, row)
				next = append(next, append(grown, v))
			}
		}
		product = next
	}
	return product
}

// Join stringifies each item with fmt and concatenates them with sep.
func Join[T any](items []T, sep string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprintf(&b, "%v", item)
	}
	return b.String()
}

// GetOrDefault returns m[key] if present, def otherwise. A nil map yields def.
func GetOrDefault[K comparable, V any](m map[K]V, key K, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}
