package platform

import (
	platformerror "circular-list/internal/platform/error"
	"circular-list/internal/platform/helper"
)

// nilIdx marks an absent slot: the head and tail of an empty list.
const nilIdx = -1

type (
	MatchFunc[T any] func(val T) bool

	// slot is one arena cell. A live slot is a node of the ring; a vacated
	// slot sits on the free list with a zero value.
	slot[T any] struct {
		val  T
		next int

		// gen is bumped each time the slot is vacated.
		gen uint64
	}

	// CircularList is a singly linked list whose tail links back to its head.
	// Nodes are stored in an arena and linked by slot index, so the tail to
	// head back-link is a plain integer.
	//
	// A CircularList is not safe for concurrent use.
	CircularList[T any] struct {
		slots []slot[T]
		free  []int
		head  int
		tail  int
		count int

		// mods counts structural changes; iterators use it to fail fast.
		mods uint64

		// epoch is bumped whenever the arena is dropped by reset.
		epoch uint64
	}
)

// NewCircularList returns a list holding values in order.
func NewCircularList[T any](values ...T) *CircularList[T] {
	l := &CircularList[T]{
		head: nilIdx,
		tail: nilIdx,
	}
	for _, val := range values {
		l.AddLast(val)
	}
	return l
}

func (l *CircularList[T]) Size() int {
	return l.count
}

func (l *CircularList[T]) IsEmpty() bool {
	return l.count == 0
}

func (l *CircularList[T]) GetFirst() (T, error) {
	if l.count == 0 {
		var zero T
		return zero, platformerror.NewEmptyListError("GetFirst")
	}
	return l.slots[l.head].val, nil
}

func (l *CircularList[T]) GetLast() (T, error) {
	if l.count == 0 {
		var zero T
		return zero, platformerror.NewEmptyListError("GetLast")
	}
	return l.slots[l.tail].val, nil
}

// Get returns the value at index, counted from the head.
func (l *CircularList[T]) Get(index int) (T, error) {
	idx, err := l.nodeAt("Get", index)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.slots[idx].val, nil
}

// Set replaces the value at index in place.
func (l *CircularList[T]) Set(index int, val T) error {
	idx, err := l.nodeAt("Set", index)
	if err != nil {
		return err
	}
	l.slots[idx].val = val
	return nil
}

func (l *CircularList[T]) AddFirst(val T) {
	idx := l.alloc(val, l.head)
	l.head = idx
	if l.count == 0 {
		l.tail = idx
	}
	l.slots[l.tail].next = l.head
	l.count++
	l.mods++
}

func (l *CircularList[T]) AddLast(val T) {
	if l.count == 0 {
		l.AddFirst(val)
		return
	}
	idx := l.alloc(val, l.head)
	l.slots[l.tail].next = idx
	l.tail = idx
	l.count++
	l.mods++
}

func (l *CircularList[T]) RemoveFirst() error {
	if l.count == 0 {
		return platformerror.NewEmptyListError("RemoveFirst")
	}
	if l.count == 1 {
		l.reset()
		return nil
	}

	old := l.head
	l.head = l.slots[old].next
	l.slots[l.tail].next = l.head
	l.release(old)
	l.count--
	l.mods++
	return nil
}

func (l *CircularList[T]) RemoveLast() error {
	if l.count == 0 {
		return platformerror.NewEmptyListError("RemoveLast")
	}
	if l.count == 1 {
		l.reset()
		return nil
	}

	old := l.tail
	l.tail = l.walk(l.count - 2)
	l.slots[l.tail].next = l.head
	l.release(old)
	l.count--
	l.mods++
	return nil
}

// RemoveAll empties the list in a single step. It is a no-op on an empty list.
func (l *CircularList[T]) RemoveAll() {
	if l.count == 0 {
		return
	}
	l.reset()
}

// Insert places val so that it becomes the element at index, shifting the
// following elements one position towards the tail.
func (l *CircularList[T]) Insert(index int, val T) error {
	switch index {
	case 0:
		l.AddFirst(val)
		return nil
	case l.count:
		l.AddLast(val)
		return nil
	}
	if err := l.checkIndex("Insert", index); err != nil {
		return err
	}

	prev := l.walk(index - 1)
	idx := l.alloc(val, l.slots[prev].next)
	l.slots[prev].next = idx
	l.count++
	l.mods++
	return nil
}

func (l *CircularList[T]) Remove(index int) error {
	if l.count == 0 {
		return platformerror.NewEmptyListError("Remove")
	}
	switch index {
	case 0:
		return l.RemoveFirst()
	case l.count - 1:
		return l.RemoveLast()
	}
	if err := l.checkIndex("Remove", index); err != nil {
		return err
	}

	prev := l.walk(index - 1)
	cur := l.slots[prev].next
	l.slots[prev].next = l.slots[cur].next
	l.release(cur)
	l.count--
	l.mods++
	return nil
}

// Rotate moves the head n positions towards the tail. A negative n rotates
// the other way. The order of the ring itself is unchanged.
func (l *CircularList[T]) Rotate(n int) {
	if l.count == 0 {
		return
	}
	steps := n % l.count
	if steps < 0 {
		steps += l.count
	}
	if steps == 0 {
		return
	}
	l.tail = l.walk(steps - 1)
	l.head = l.slots[l.tail].next
	l.mods++
}

// IndexFunc returns the index of the first value satisfying match, or -1.
func (l *CircularList[T]) IndexFunc(match MatchFunc[T]) int {
	idx := l.head
	for i := 0; i < l.count; i++ {
		if match(l.slots[idx].val) {
			return i
		}
		idx = l.slots[idx].next
	}
	return -1
}

func (l *CircularList[T]) Values() []T {
	values := make([]T, 0, l.count)
	idx := l.head
	for i := 0; i < l.count; i++ {
		values = append(values, l.slots[idx].val)
		idx = l.slots[idx].next
	}
	return values
}

// Strings returns the stringified values from head to tail. The walk is
// bounded by the element count, never by meeting the head again.
func (l *CircularList[T]) Strings() []string {
	values := make([]string, 0, l.count)
	idx := l.head
	for i := 0; i < l.count; i++ {
		values = append(values, helper.Stringify(l.slots[idx].val))
		idx = l.slots[idx].next
	}
	return values
}

// String renders the list as "[1, 2, 3]".
func (l *CircularList[T]) String() string {
	return helper.FormatList(l.Strings())
}

func (l *CircularList[T]) checkIndex(op string, index int) error {
	if l.count == 0 {
		return platformerror.NewEmptyListError(op)
	}
	if index < 0 || index >= l.count {
		return platformerror.NewIndexOutOfRangeError(index, l.count)
	}
	return nil
}

// nodeAt returns the slot holding the element at index.
func (l *CircularList[T]) nodeAt(op string, index int) (int, error) {
	if err := l.checkIndex(op, index); err != nil {
		return nilIdx, err
	}
	return l.walk(index), nil
}

// walk follows next from the head index times. The caller checks bounds.
func (l *CircularList[T]) walk(index int) int {
	idx := l.head
	for i := 0; i < index; i++ {
		idx = l.slots[idx].next
	}
	return idx
}

func (l *CircularList[T]) alloc(val T, next int) int {
	if n := len(l.free); n > 0 {
		idx := l.free[n-1]
		l.free = l.free[:n-1]
		l.slots[idx] = slot[T]{val: val, next: next, gen: l.slots[idx].gen}
		return idx
	}
	l.slots = append(l.slots, slot[T]{val: val, next: next})
	return len(l.slots) - 1
}

func (l *CircularList[T]) release(idx int) {
	// Zero the value so the arena does not keep it reachable.
	l.slots[idx] = slot[T]{next: nilIdx, gen: l.slots[idx].gen + 1}
	l.free = append(l.free, idx)
}

func (l *CircularList[T]) reset() {
	clear(l.slots)
	l.slots = l.slots[:0]
	l.free = l.free[:0]
	l.head = nilIdx
	l.tail = nilIdx
	l.count = 0
	l.mods++
	l.epoch++
}
