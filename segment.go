package wiredlist

// Cut removes the segment [from, to) and returns it as a new list. The nodes are relinked, not copied.
func (l *List[E]) Cut(from, to int) (*List[E], error) {
	if err := checkRange(from, to, l.size); err != nil {
		return nil, err
	}

	c := l.segment(from, to)
	l.unlinkChain(c)
	return fromChain(c), nil
}

// CopyRange returns a new list with the elements of the segment [from, to). The list is not changed.
func (l *List[E]) CopyRange(from, to int) (*List[E], error) {
	if err := checkRange(from, to, l.size); err != nil {
		return nil, err
	}

	if from == to {
		return &List[E]{}, nil
	}

	return fromChain(copyChain(l.nodeAt(from), to-from)), nil
}

// Delete removes the segment [from, to).
func (l *List[E]) Delete(from, to int) error {
	if err := checkRange(from, to, l.size); err != nil {
		return err
	}

	c := l.segment(from, to)
	l.unlinkChain(c)
	c.clear()
	return nil
}

// Embed moves all the elements of other into the list, in front of the element at index. Other is left
// empty. An index equal to Len() appends the elements.
func (l *List[E]) Embed(index int, other *List[E]) error {
	if err := checkOther(l, other); err != nil {
		return err
	}

	if err := checkPosition(index, l.size); err != nil {
		return err
	}

	l.insert(index, other.detach())
	return nil
}

// Attach moves all the elements of other to the end of the list. Other is left empty.
func (l *List[E]) Attach(other *List[E]) error {
	if err := checkOther(l, other); err != nil {
		return err
	}

	l.link(l.tail, nil, other.detach())
	return nil
}

// replaces a linked chain with a detached one, in the position of the linked one
func (l *List[E]) swapChain(linked, detached chain[E], at int) {
	if linked.empty() {
		l.insert(at, detached)
		return
	}

	prev, next := linked.head.prev, linked.tail.next
	l.unlinkChain(linked)
	l.link(prev, next, detached)
}

// Rewire replaces the segment [from, to) with all the elements of other, leaving other empty. It returns the
// replaced segment as a new list.
func (l *List[E]) Rewire(from, to int, other *List[E]) (*List[E], error) {
	if err := checkOther(l, other); err != nil {
		return nil, err
	}

	if err := checkRange(from, to, l.size); err != nil {
		return nil, err
	}

	replaced := l.segment(from, to)
	l.swapChain(replaced, other.detach(), from)
	return fromChain(replaced), nil
}

// Replace replaces the segment [from, to) with the provided values. When the number of values equals the
// length of the segment, the elements are overwritten in place.
func (l *List[E]) Replace(from, to int, values ...E) error {
	if err := checkRange(from, to, l.size); err != nil {
		return err
	}

	replaced := l.segment(from, to)
	if len(values) == replaced.length {
		n := replaced.head
		for _, v := range values {
			n.value = v
			n = n.next
		}

		return nil
	}

	l.swapChain(replaced, newChain(values), from)
	replaced.clear()
	return nil
}

// Exchange swaps the segment [from0, to0) of the list with the segment [from1, to1) of other. The nodes of
// the two segments are relinked in the opposite list.
func (l *List[E]) Exchange(from0, to0 int, other *List[E], from1, to1 int) error {
	if err := checkOther(l, other); err != nil {
		return err
	}

	if err := checkRange(from0, to0, l.size); err != nil {
		return err
	}

	if err := checkRange(from1, to1, other.size); err != nil {
		return err
	}

	own, theirs := l.segment(from0, to0), other.segment(from1, to1)
	switch {
	case own.empty() && theirs.empty():
	case own.empty():
		other.unlinkChain(theirs)
		l.insert(from0, theirs)
	case theirs.empty():
		l.unlinkChain(own)
		other.insert(from1, own)
	default:
		ownPrev, ownNext := own.head.prev, own.tail.next
		theirPrev, theirNext := theirs.head.prev, theirs.tail.next
		l.unlinkChain(own)
		other.unlinkChain(theirs)
		l.link(ownPrev, ownNext, theirs)
		other.link(theirPrev, theirNext, own)
	}

	return nil
}

// Move moves the segment [from, to) within the list, such that afterwards it starts at newFrom. NewFrom
// must not be greater than Len() minus the length of the segment. When newFrom equals from, the list is not
// changed.
func (l *List[E]) Move(from, to, newFrom int) error {
	if err := checkRange(from, to, l.size); err != nil {
		return err
	}

	if err := checkPosition(newFrom, l.size-(to-from)); err != nil {
		return err
	}

	if newFrom == from || from == to {
		return nil
	}

	c := l.segment(from, to)
	if newFrom > from {
		l.moveToTail(c, from, newFrom)
	} else {
		l.moveToHead(c, from, newFrom)
	}

	return nil
}

// moves a linked chain starting at from towards the tail, such that it starts at newFrom, newFrom > from
func (l *List[E]) moveToTail(c chain[E], from, newFrom int) {
	after := c.tail.next
	l.unlinkChain(c)

	// after the unlink, the node following the segment is at from, and the new position is right after the
	// node at newFrom-1
	prev := l.nodeAfter(after, from, newFrom-1)
	l.link(prev, prev.next, c)
}

// moves a linked chain starting at from towards the head, such that it starts at newFrom, newFrom < from
func (l *List[E]) moveToHead(c chain[E], from, newFrom int) {
	before := c.head.prev
	l.unlinkChain(c)
	next := l.nodeBefore(before, from-1, newFrom)
	l.link(next.prev, next, c)
}
