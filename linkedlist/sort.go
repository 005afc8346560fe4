package linkedlist

import (
	"fmt"

	"golang.org/x/exp/constraints"

	extensions "github.com/orbitalgames/collections-extensions"
)

// SortBy sorts l in place, ascending by key, by relocating nodes rather than
// rebuilding the list. It is an insertion sort: the first node is the sorted
// prefix, and each later node is detached and relinked before the first prefix
// node whose key is strictly greater, or left in place when no such node
// exists. Ties land before the leftmost greater key, so the pre-existing order
// of equal keys is not preserved. O(n^2) comparisons worst case; meant for
// short lists.
//
// Handles stay valid across the sort; only links move. Lists of length <= 1
// return immediately. A nil list or nil key function is
// extensions.ErrInvalidArgument, raised before any relinking.
func SortBy[T any, K constraints.Ordered](l *List[T], key func(T) K) error {
	if l == nil {
		return fmt.Errorf("sort of nil list: %w", extensions.ErrInvalidArgument)
	}
	if key == nil {
		return fmt.Errorf("nil key selector: %w", extensions.ErrInvalidArgument)
	}
	if l.size <= 1 {
		return nil
	}

	current := l.Next(l.head)
	for current != None {
		// The relocation below rewires current's links, so its successor in
		// the original order has to be captured first.
		next := l.Next(current)
		k := key(l.at(current).value)

		for scan := l.head; scan != current; scan = l.Next(scan) {
			if key(l.at(scan).value) > k {
				l.detach(current)
				l.linkBefore(current, scan)
				break
			}
		}
		current = next
	}
	return nil
}
