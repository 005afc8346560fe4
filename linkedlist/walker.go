package linkedlist

// Walker is a forward-only, single-pass iterator over a List that tolerates
// node removal during iteration. Before each node is yielded, its next sibling
// is captured; if the consumer removes the yielded node, the walker advances
// through the captured sibling instead. If both the yielded node and its
// captured sibling are removed in the same step, the walk terminates early.
// That truncation is an accepted limit of the protocol, not silent recovery.
//
// A Walker is only valid for the traversal it was created for: create a fresh
// one per pass, and do not interleave inserts that could recycle freed slots.
// Abandoning a walker mid-pass needs no cleanup.
type Walker[T any] struct {
	list     *List[T]
	current  Handle
	fallback Handle
	started  bool
}

// Walk returns a new walker positioned before the first node. Call Next to
// advance onto it.
func (l *List[T]) Walk() *Walker[T] {
	return &Walker[T]{list: l}
}

// Next advances to the next surviving node and reports whether one exists.
func (w *Walker[T]) Next() bool {
	var next Handle
	switch {
	case !w.started:
		w.started = true
		next = w.list.Front()
	case w.list.Contains(w.current):
		next = w.list.Next(w.current)
	case w.list.Contains(w.fallback):
		// The yielded node was removed; resume at the sibling captured
		// before yielding it.
		next = w.fallback
	default:
		next = None
	}

	if next == None {
		w.current = None
		w.fallback = None
		return false
	}
	w.current = next
	w.fallback = w.list.Next(next)
	return true
}

// Handle returns the handle of the current node, or None before the first
// Next or after exhaustion.
func (w *Walker[T]) Handle() Handle { return w.current }

// Value returns the value of the current node. It is only meaningful after a
// Next call that returned true and before that node is removed.
func (w *Walker[T]) Value() T {
	v, _ := w.list.Value(w.current)
	return v
}
