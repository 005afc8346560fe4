// Package linkedlist implements a doubly linked list backed by an
// index-addressable arena. Nodes live in a backing slice and are addressed by
// opaque handles rather than pointers, so external iterators can survive node
// removal without any dangling-reference hazard: a removed node's slot is
// simply marked free and its neighbors relinked.
//
// Lists are caller-owned and not safe for concurrent use.
package linkedlist

// Handle is a stable, opaque reference to a node in a List. The zero value is
// None and never refers to a node. A handle stays valid until its node is
// removed; after removal the slot may be recycled by a later insert.
type Handle int

// None is the null handle, returned when navigation runs off either end.
const None Handle = 0

type node[T any] struct {
	value    T
	prev     Handle
	next     Handle
	attached bool
}

// List is a doubly linked list of values of type T. The zero value is an
// empty list ready for use.
type List[T any] struct {
	nodes []node[T]
	free  []int
	head  Handle
	tail  Handle
	size  int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// From returns a list holding values in order.
func From[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of attached nodes.
func (l *List[T]) Len() int { return l.size }

// Front returns the handle of the first node, or None if the list is empty.
func (l *List[T]) Front() Handle { return l.head }

// Back returns the handle of the last node, or None if the list is empty.
func (l *List[T]) Back() Handle { return l.tail }

// Contains reports whether h refers to a node currently attached to l.
func (l *List[T]) Contains(h Handle) bool { return l.at(h) != nil }

// Next returns the handle after h, or None if h is the tail, detached, or None.
func (l *List[T]) Next(h Handle) Handle {
	if n := l.at(h); n != nil {
		return n.next
	}
	return None
}

// Prev returns the handle before h, or None if h is the head, detached, or None.
func (l *List[T]) Prev(h Handle) Handle {
	if n := l.at(h); n != nil {
		return n.prev
	}
	return None
}

// Value returns the value stored at h. The second result is false if h does
// not refer to an attached node.
func (l *List[T]) Value(h Handle) (T, bool) {
	if n := l.at(h); n != nil {
		return n.value, true
	}
	var zero T
	return zero, false
}

// Values returns the list contents front to back as a fresh slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for h := l.head; h != None; h = l.Next(h) {
		n := l.at(h)
		out = append(out, n.value)
	}
	return out
}

// PushBack appends v and returns its handle.
func (l *List[T]) PushBack(v T) Handle {
	h := l.alloc(v)
	n := l.at(h)
	n.prev = l.tail
	if l.tail != None {
		l.at(l.tail).next = h
	} else {
		l.head = h
	}
	l.tail = h
	l.size++
	return h
}

// PushFront prepends v and returns its handle.
func (l *List[T]) PushFront(v T) Handle {
	h := l.alloc(v)
	n := l.at(h)
	n.next = l.head
	if l.head != None {
		l.at(l.head).prev = h
	} else {
		l.tail = h
	}
	l.head = h
	l.size++
	return h
}

// InsertBefore inserts v immediately before mark and returns the new handle.
// It returns None and false if mark is not an attached node.
func (l *List[T]) InsertBefore(mark Handle, v T) (Handle, bool) {
	m := l.at(mark)
	if m == nil {
		return None, false
	}
	h := l.alloc(v)
	l.linkBefore(h, mark)
	l.size++
	return h, true
}

// InsertAfter inserts v immediately after mark and returns the new handle.
// It returns None and false if mark is not an attached node.
func (l *List[T]) InsertAfter(mark Handle, v T) (Handle, bool) {
	m := l.at(mark)
	if m == nil {
		return None, false
	}
	if m.next != None {
		return l.InsertBefore(m.next, v)
	}
	return l.PushBack(v), true
}

// Remove detaches the node at h, relinks its neighbors, and frees its slot for
// reuse. It returns the removed value, or false if h was not attached. Walkers
// positioned on or about to visit the removed node recover as described in
// Walker.
func (l *List[T]) Remove(h Handle) (T, bool) {
	var zero T
	n := l.at(h)
	if n == nil {
		return zero, false
	}
	v := n.value
	l.detach(h)
	n.value = zero
	n.attached = false
	l.free = append(l.free, int(h)-1)
	l.size--
	return v, true
}

// at resolves a handle to its node, or nil for None, out-of-range, or
// detached handles.
func (l *List[T]) at(h Handle) *node[T] {
	i := int(h) - 1
	if i < 0 || i >= len(l.nodes) {
		return nil
	}
	n := &l.nodes[i]
	if !n.attached {
		return nil
	}
	return n
}

// alloc claims a slot (recycling freed ones) and returns its handle. The node
// is attached but not yet linked.
func (l *List[T]) alloc(v T) Handle {
	if k := len(l.free); k > 0 {
		i := l.free[k-1]
		l.free = l.free[:k-1]
		l.nodes[i] = node[T]{value: v, attached: true}
		return Handle(i + 1)
	}
	l.nodes = append(l.nodes, node[T]{value: v, attached: true})
	return Handle(len(l.nodes))
}

// detach unlinks h from its neighbors without freeing the slot.
func (l *List[T]) detach(h Handle) {
	n := l.at(h)
	if n.prev != None {
		l.at(n.prev).next = n.next
	} else {
		l.head = n.next
	}
	if n.next != None {
		l.at(n.next).prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = None
	n.next = None
}

// linkBefore links an allocated, unlinked node h immediately before mark.
func (l *List[T]) linkBefore(h, mark Handle) {
	n := l.at(h)
	m := l.at(mark)
	n.prev = m.prev
	n.next = mark
	if m.prev != None {
		l.at(m.prev).next = h
	} else {
		l.head = h
	}
	m.prev = h
}
