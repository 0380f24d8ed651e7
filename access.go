package wiredlist

import "fmt"

// Get returns the element at index.
func (l *List[E]) Get(index int) (E, error) {
	if err := checkIndex(index, l.size); err != nil {
		var zero E
		return zero, err
	}

	return l.nodeAt(index).value, nil
}

// Set overwrites the element at index, and returns the previous one.
func (l *List[E]) Set(index int, v E) (E, error) {
	if err := checkIndex(index, l.size); err != nil {
		var zero E
		return zero, err
	}

	n := l.nodeAt(index)
	old := n.value
	n.value = v
	return old, nil
}

// First returns the first element of the list.
func (l *List[E]) First() (E, error) {
	if l.size == 0 {
		var zero E
		return zero, ErrNoSuchElement
	}

	return l.head.value, nil
}

// Last returns the last element of the list.
func (l *List[E]) Last() (E, error) {
	if l.size == 0 {
		var zero E
		return zero, ErrNoSuchElement
	}

	return l.tail.value, nil
}

// DeleteFirst removes the first element of the list and returns it.
func (l *List[E]) DeleteFirst() (E, error) {
	if l.size == 0 {
		var zero E
		return zero, ErrNoSuchElement
	}

	return l.unlink(l.head), nil
}

// DeleteLast removes the last element of the list and returns it.
func (l *List[E]) DeleteLast() (E, error) {
	if l.size == 0 {
		var zero E
		return zero, ErrNoSuchElement
	}

	return l.unlink(l.tail), nil
}

// IndexOf returns the index of the first occurrence of v, or -1.
func (l *List[E]) IndexOf(v E) int {
	var i int
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return i
		}

		i++
	}

	return -1
}

// LastIndexOf returns the index of the last occurrence of v, or -1.
func (l *List[E]) LastIndexOf(v E) int {
	i := l.size - 1
	for n := l.tail; n != nil; n = n.prev {
		if n.value == v {
			return i
		}

		i--
	}

	return -1
}

// Contains tells whether v is in the list.
func (l *List[E]) Contains(v E) bool {
	return l.IndexOf(v) >= 0
}

// Append adds the values to the end of the list.
func (l *List[E]) Append(values ...E) {
	l.link(l.tail, nil, newChain(values))
}

// Prepend adds the values to the front of the list, keeping their order.
func (l *List[E]) Prepend(values ...E) {
	l.link(nil, l.head, newChain(values))
}

// Insert inserts the values in front of the element at index. An index equal to Len() appends them.
func (l *List[E]) Insert(index int, values ...E) error {
	if err := checkPosition(index, l.size); err != nil {
		return err
	}

	l.insert(index, newChain(values))
	return nil
}

// Remove removes the element at index and returns it.
func (l *List[E]) Remove(index int) (E, error) {
	if err := checkIndex(index, l.size); err != nil {
		var zero E
		return zero, err
	}

	return l.unlink(l.nodeAt(index)), nil
}

// RemoveValue removes the first occurrence of v. It returns false if v was not found.
func (l *List[E]) RemoveValue(v E) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			l.unlink(n)
			return true
		}
	}

	return false
}

// RemoveIf removes every element for which the predicate returns true, and returns the number of removed
// elements.
func (l *List[E]) RemoveIf(pred func(E) bool) int {
	var count int
	for n := l.head; n != nil; {
		next := n.next
		if pred(n.value) {
			l.unlink(n)
			count++
		}

		n = next
	}

	return count
}

func valueSet[E comparable](values []E) map[E]struct{} {
	s := make(map[E]struct{}, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}

	return s
}

// RemoveAll removes every element that equals any of the values, and returns the number of removed elements.
func (l *List[E]) RemoveAll(values ...E) int {
	s := valueSet(values)
	return l.RemoveIf(func(v E) bool {
		_, ok := s[v]
		return ok
	})
}

// RetainAll removes every element that does not equal any of the values, and returns the number of removed
// elements.
func (l *List[E]) RetainAll(values ...E) int {
	s := valueSet(values)
	return l.RemoveIf(func(v E) bool {
		_, ok := s[v]
		return !ok
	})
}

// Clear removes all the elements.
func (l *List[E]) Clear() {
	l.detach().clear()
}

// Slice returns the elements of the list in a new slice.
func (l *List[E]) Slice() []E {
	s := make([]E, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		s = append(s, n.value)
	}

	return s
}

// Copy returns a new list with the same elements. The two lists don't share any nodes.
func (l *List[E]) Copy() *List[E] {
	return fromChain(copyChain(l.head, l.size))
}

func copyChain[E comparable](from *node[E], length int) chain[E] {
	var c chain[E]
	for n := from; c.length < length; n = n.next {
		c.push(newNode(n.value))
	}

	return c
}

// SubList is not supported, because nearly every operation of the list is structural, and a live view would
// be invalidated by most of them. Use CopyRange or Cut instead.
func (l *List[E]) SubList(from, to int) (*List[E], error) {
	return nil, fmt.Errorf("%w: live sub-list views", ErrUnsupported)
}
