package platform

// BoundedList keeps at most cap values. Putting a value into a full list
// evicts the oldest one, so the list always holds the most recent values.
type BoundedList[T any] struct {
	list *CircularList[T]
	cap  int
}

func NewBoundedList[T any](cap int) *BoundedList[T] {
	if cap < 1 {
		cap = 1
	}
	return &BoundedList[T]{
		list: NewCircularList[T](),
		cap:  cap,
	}
}

// Put appends val and reports whether an old value was evicted.
func (b *BoundedList[T]) Put(val T) bool {
	evicted := false
	if b.list.Size() >= b.cap {
		b.removeOldest()
		evicted = true
	}
	b.list.AddLast(val)
	return evicted
}

func (b *BoundedList[T]) removeOldest() {
	// The list is never empty here.
	_ = b.list.RemoveFirst()
}

func (b *BoundedList[T]) Oldest() (T, error) {
	return b.list.GetFirst()
}

func (b *BoundedList[T]) Newest() (T, error) {
	return b.list.GetLast()
}

func (b *BoundedList[T]) Len() int {
	return b.list.Size()
}

func (b *BoundedList[T]) Cap() int {
	return b.cap
}

// Values returns the kept values, oldest first.
func (b *BoundedList[T]) Values() []T {
	return b.list.Values()
}

func (b *BoundedList[T]) Clear() {
	b.list.RemoveAll()
}
