package platform

import (
	"iter"

	platformerror "circular-list/internal/platform/error"
)

// Iterator walks a CircularList once, from head to tail. It yields exactly
// as many values as the list held when the iterator was created; the count,
// not a return to the head, ends the walk.
//
// Iterators are single-pass. Any structural change to the list after the
// iterator was created stops it, and Err reports the change.
type Iterator[T any] struct {
	list      *CircularList[T]
	cur       int
	remaining int
	mods      uint64
	err       error
}

func (l *CircularList[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		list:      l,
		cur:       l.head,
		remaining: l.count,
		mods:      l.mods,
	}
}

// HasNext reports whether Next will return a value. It returns false once
// the list has been structurally modified, and Err then reports why.
func (it *Iterator[T]) HasNext() bool {
	if it.err != nil || it.remaining == 0 {
		return false
	}
	if it.list.mods != it.mods {
		it.err = platformerror.NewConcurrentModificationError(it.mods, it.list.mods)
		return false
	}
	return true
}

// Next returns the next value, or false once the iterator is exhausted or
// has detected a modification of the list.
func (it *Iterator[T]) Next() (T, bool) {
	var zero T
	if !it.HasNext() {
		return zero, false
	}

	s := it.list.slots[it.cur]
	it.cur = s.next
	it.remaining--
	return s.val, true
}

func (it *Iterator[T]) Err() error {
	return it.err
}

// All returns a sequence over the values for use with range. A modification
// of the list inside the loop ends the sequence early; use Iterator to
// observe the error.
func (l *CircularList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iterator()
		for val, ok := it.Next(); ok; val, ok = it.Next() {
			if !yield(val) {
				return
			}
		}
	}
}
