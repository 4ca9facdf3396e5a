package platform

import platformerror "circular-list/internal/platform/error"

// Node is a handle to one element of a CircularList. Removing the element,
// or emptying the list, invalidates the handle: Valid then reports false,
// Value returns the zero value, SetValue does nothing and Next returns
// another invalid handle.
type Node[T any] struct {
	list  *CircularList[T]
	idx   int
	gen   uint64
	epoch uint64
}

func (l *CircularList[T]) node(idx int) Node[T] {
	return Node[T]{list: l, idx: idx, gen: l.slots[idx].gen, epoch: l.epoch}
}

func (n Node[T]) Valid() bool {
	return n.list != nil &&
		n.epoch == n.list.epoch &&
		n.idx >= 0 && n.idx < len(n.list.slots) &&
		n.list.slots[n.idx].gen == n.gen
}

func (n Node[T]) Value() T {
	if !n.Valid() {
		var zero T
		return zero
	}
	return n.list.slots[n.idx].val
}

func (n Node[T]) SetValue(val T) {
	if !n.Valid() {
		return
	}
	n.list.slots[n.idx].val = val
}

// Next returns the successor. The successor of the tail is the head.
func (n Node[T]) Next() Node[T] {
	if !n.Valid() {
		return Node[T]{}
	}
	return n.list.node(n.list.slots[n.idx].next)
}

func (l *CircularList[T]) Head() (Node[T], error) {
	if l.count == 0 {
		return Node[T]{}, platformerror.NewEmptyListError("Head")
	}
	return l.node(l.head), nil
}

func (l *CircularList[T]) Tail() (Node[T], error) {
	if l.count == 0 {
		return Node[T]{}, platformerror.NewEmptyListError("Tail")
	}
	return l.node(l.tail), nil
}
