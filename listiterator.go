package wiredlist

import (
	"fmt"
	"iter"
)

// ListIterator is a bidirectional, read-only cursor over a list. Its position is always between two elements,
// or before the first, or after the last one. It doesn't support changing the list, use Iterator() or
// ReverseIterator() for that.
type ListIterator[E comparable] struct {
	list  *List[E]
	next  *node[E]
	index int
	mods  int
}

// ListIterator returns a bidirectional iterator positioned before the first element.
func (l *List[E]) ListIterator() *ListIterator[E] {
	return &ListIterator[E]{list: l, next: l.head, mods: l.mods}
}

// ListIteratorAt returns a bidirectional iterator positioned before the element at index. An index equal to
// Len() positions it after the last element.
func (l *List[E]) ListIteratorAt(index int) (*ListIterator[E], error) {
	if err := checkPosition(index, l.size); err != nil {
		return nil, err
	}

	it := &ListIterator[E]{list: l, index: index, mods: l.mods}
	if index < l.size {
		it.next = l.nodeAt(index)
	}

	return it, nil
}

func (it *ListIterator[E]) checkMods() error {
	if it.mods != it.list.mods {
		return ErrConcurrentModification
	}

	return nil
}

func (it *ListIterator[E]) HasNext() bool { return it.index < it.list.size }

func (it *ListIterator[E]) HasPrevious() bool { return it.index > 0 }

func (it *ListIterator[E]) NextIndex() int { return it.index }

func (it *ListIterator[E]) PreviousIndex() int { return it.index - 1 }

// Next returns the element after the cursor and moves the cursor forward.
func (it *ListIterator[E]) Next() (E, error) {
	var zero E
	if err := it.checkMods(); err != nil {
		return zero, err
	}

	if !it.HasNext() {
		return zero, ErrNoSuchElement
	}

	n := it.next
	if n == nil {
		return zero, ErrConcurrentModification
	}

	it.next = n.next
	it.index++
	return n.value, nil
}

// Previous returns the element before the cursor and moves the cursor backward.
func (it *ListIterator[E]) Previous() (E, error) {
	var zero E
	if err := it.checkMods(); err != nil {
		return zero, err
	}

	if !it.HasPrevious() {
		return zero, ErrNoSuchElement
	}

	var n *node[E]
	if it.next == nil {
		n = it.list.tail
	} else {
		n = it.next.prev
	}

	if n == nil {
		return zero, ErrConcurrentModification
	}

	it.next = n
	it.index--
	return n.value, nil
}

func (it *ListIterator[E]) Remove() error {
	return fmt.Errorf("%w: remove through list iterator", ErrUnsupported)
}

func (it *ListIterator[E]) Set(E) error {
	return fmt.Errorf("%w: set through list iterator", ErrUnsupported)
}

func (it *ListIterator[E]) Add(E) error {
	return fmt.Errorf("%w: add through list iterator", ErrUnsupported)
}

// All returns an iterator over the index-value pairs of the list, from head to tail.
func (l *List[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		var i int
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.value) {
				return
			}

			i++
		}
	}
}

// Backward returns an iterator over the index-value pairs of the list, from tail to head.
func (l *List[E]) Backward() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		i := l.size - 1
		for n := l.tail; n != nil; n = n.prev {
			if !yield(i, n.value) {
				return
			}

			i--
		}
	}
}

// Values returns an iterator over the elements of the list, from head to tail.
func (l *List[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}
