package ilist

// Link is the pair of ring pointers embedded inside an element. An element
// carries one Link per list it may belong to; each such field is a mark
//
// The zero value is the unlinked state. Pushing the element into a list
// links it, removing it unlinks it again
type Link[T any] struct {
	next	*Link[T]
	prev	*Link[T]

	// owner is the element embedding this link, recorded on insertion.
	// It is nil for a list head
	owner	*T
}

// Linked reports whether k is currently part of a ring
func (k *Link[T]) Linked() bool {
	return k.next != nil
}

// Next returns the element following k in its ring, or nil if k is the last
// element or is unlinked
func (k *Link[T]) Next() *T {
	if k.next == nil {
		return nil
	}
	return k.next.owner
}

// Prev returns the element preceding k in its ring, or nil if k is the first
// element or is unlinked
func (k *Link[T]) Prev() *T {
	if k.prev == nil {
		return nil
	}
	return k.prev.owner
}

// Unlink removes k from whatever ring it is in and returns it to the unlinked
// state. It fails with ErrNotLinked if k is not in a ring
func (k *Link[T]) Unlink() error {
	if k.next == nil {
		return ErrNotLinked
	}

	k.next.prev = k.prev
	k.prev.next = k.next

	k.next = nil
	k.prev = nil
	k.owner = nil
	return nil
}

// splice links k, owned by e, between prev and next
func (k *Link[T]) splice(e *T, prev, next *Link[T]) {
	k.owner = e
	k.prev = prev
	k.next = next
	prev.next = k
	next.prev = k
}

// Mark selects which Link field of T a List operates on. Implementations are
// zero-size types whose Link method returns the address of one field:
//
//	type byPriority struct{}
//
//	func (byPriority) Link(j *job) *ilist.Link[job] { return &j.priority }
//
// The mark is a type argument of List, so the selection is fixed at compile
// time and a list can never hand back an element of another type
type Mark[T any] interface {
	Link(e *T) *Link[T]
}

// Linker is satisfied by pointers to types embedding Entry, or by any *T with
// a Link method returning its canonical link
type Linker[T any] interface {
	*T
	Link() *Link[T]
}

// Entry is the default mark. Users can add anonymous fields of this type to
// their structs and then use EntryMark as the mark of their lists:
//
//	type key struct {
//		ilist.Entry[key]
//		k int
//	}
//
//	var keys ilist.List[key, ilist.EntryMark[key, *key]]
type Entry[T any] struct {
	link	Link[T]
}

// Link returns the link embedded in e
func (e *Entry[T]) Link() *Link[T] {
	return &e.link
}

// EntryMark selects the canonical link of T, as returned by its Link method
type EntryMark[T any, P Linker[T]] struct{}

// Link implements Mark.Link
func (EntryMark[T, P]) Link(e *T) *Link[T] {
	return P(e).Link()
}
