package ilist

import (
	"iter"
)

// All returns the elements of l from front to back. The loop body must not
// change the list; use AllSafe to remove elements while iterating
func (l *List[T, M]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if l.head.next == nil {
			return
		}

		for k := l.head.next; k != &l.head; k = k.next {
			if !yield(k.owner) {
				return
			}
		}
	}
}

// AllSafe returns the elements of l from front to back. The successor of
// each element is captured before the element is yielded, so the loop body
// may remove the element it was given. Any other change to the list while
// iterating is not supported
func (l *List[T, M]) AllSafe() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if l.head.next == nil {
			return
		}

		for k, next := l.head.next, l.head.next.next; k != &l.head; k, next = next, next.next {
			if !yield(k.owner) {
				return
			}
		}
	}
}

// Backward returns the elements of l from back to front, with the same
// restrictions as All
func (l *List[T, M]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if l.head.prev == nil {
			return
		}

		for k := l.head.prev; k != &l.head; k = k.prev {
			if !yield(k.owner) {
				return
			}
		}
	}
}
