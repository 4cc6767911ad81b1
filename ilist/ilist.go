// Package ilist provides the implementation of intrusive linked lists

package ilist

// List is an intrusive circular list of *T, linked through the field of T
// selected by the mark M. Entries can be added to or removed from the list
// in O(1) time and with no additional memory allocations. The list never
// owns its elements; they must stay alive for as long as they are linked
//
// The zero value for List is an empty list ready to use. A List must not be
// copied after first use, as the ring points back at its head
//
// To iterate over a list (where l is a List):
//		for e := range l.All() {
//			// do something with e
//		}
type List[T any, M Mark[T]] struct {
	head	Link[T]
}

// link returns the link of e selected by the mark M
func (l *List[T, M]) link(e *T) *Link[T] {
	var m M
	return m.Link(e)
}

// Init initializes l as an empty ring. Elements still linked into l are
// orphaned: their links keep pointing into the old ring
func (l *List[T, M]) Init() {
	l.head.next = &l.head
	l.head.prev = &l.head
	l.head.owner = nil
}

func (l *List[T, M]) lazyInit() {
	if l.head.next == nil {
		l.Init()
	}
}

// Reset unlinks every element of l, leaving each free to be inserted again
func (l *List[T, M]) Reset() {
	for e := range l.AllSafe() {
		l.link(e).Unlink()
	}
	l.Init()
}

// Empty returns true if the list is empty
func (l *List[T, M]) Empty() bool {
	return l.head.next == nil || l.head.next == &l.head
}

// Len returns the number of elements in l. It walks the whole ring
func (l *List[T, M]) Len() int {
	n := 0
	for range l.All() {
		n++
	}
	return n
}

// Front returns the first element of list l, or ErrEmpty
func (l *List[T, M]) Front() (*T, error) {
	if l.Empty() {
		return nil, ErrEmpty
	}
	return l.head.next.owner, nil
}

// Back returns the last element of list l, or ErrEmpty
func (l *List[T, M]) Back() (*T, error) {
	if l.Empty() {
		return nil, ErrEmpty
	}
	return l.head.prev.owner, nil
}

// PopFront removes and returns the first element of list l, or ErrEmpty
func (l *List[T, M]) PopFront() (*T, error) {
	e, err := l.Front()
	if err != nil {
		return nil, err
	}
	return e, l.head.next.Unlink()
}

// PopBack removes and returns the last element of list l, or ErrEmpty
func (l *List[T, M]) PopBack() (*T, error) {
	e, err := l.Back()
	if err != nil {
		return nil, err
	}
	return e, l.head.prev.Unlink()
}

// PushFront inserts the element e at the front of list l. It fails with
// ErrLinked if e is already in a list through the same mark
func (l *List[T, M]) PushFront(e *T) error {
	k := l.link(e)
	if k.Linked() {
		return ErrLinked
	}

	l.lazyInit()
	k.splice(e, &l.head, l.head.next)
	return nil
}

// PushBack inserts the element e at the back of list l. It fails with
// ErrLinked if e is already in a list through the same mark
func (l *List[T, M]) PushBack(e *T) error {
	k := l.link(e)
	if k.Linked() {
		return ErrLinked
	}

	l.lazyInit()
	k.splice(e, l.head.prev, &l.head)
	return nil
}

// InsertAfter inserts e right after b, which must be linked
func (l *List[T, M]) InsertAfter(b, e *T) error {
	bk := l.link(b)
	if !bk.Linked() {
		return ErrNotLinked
	}

	k := l.link(e)
	if k.Linked() {
		return ErrLinked
	}

	k.splice(e, bk, bk.next)
	return nil
}

// InsertBefore inserts e right before a, which must be linked
func (l *List[T, M]) InsertBefore(a, e *T) error {
	ak := l.link(a)
	if !ak.Linked() {
		return ErrNotLinked
	}

	k := l.link(e)
	if k.Linked() {
		return ErrLinked
	}

	k.splice(e, ak.prev, ak)
	return nil
}

// PushBackList inserts list m at the end of list l, emptying m
func (l *List[T, M]) PushBackList(m *List[T, M]) {
	if m.Empty() {
		return
	}
	l.lazyInit()

	first := m.head.next
	last := m.head.prev
	tail := l.head.prev

	tail.next = first
	first.prev = tail
	last.next = &l.head
	l.head.prev = last

	m.Init()
}

// Remove removes e from the list it is linked into through the mark M. It
// fails with ErrNotLinked if e is not linked
func (l *List[T, M]) Remove(e *T) error {
	return l.link(e).Unlink()
}
