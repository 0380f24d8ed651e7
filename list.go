package wiredlist

// List is a doubly linked list whose structural operations, e.g. cutting, embedding or exchanging segments,
// relink whole runs of nodes instead of copying or shifting elements. The zero value is an empty list ready
// to use. A List is not safe for concurrent use.
type List[E comparable] struct {
	head, tail *node[E]
	size       int

	// incremented on every structural change, checked by the iterators
	mods int
}

// New creates a list containing the provided values.
func New[E comparable](values ...E) *List[E] {
	l := &List[E]{}
	l.insert(0, newChain(values))
	return l
}

// wraps a detached chain into a new list
func fromChain[E comparable](c chain[E]) *List[E] {
	l := &List[E]{}
	l.insert(0, c)
	return l
}

// Len returns the number of elements in the list.
func (l *List[E]) Len() int { return l.size }

// Empty tells whether the list has no elements.
func (l *List[E]) Empty() bool { return l.size == 0 }

// links a detached chain between prev and next, where a nil prev means the head of the list, and a nil next
// means the tail. Together with unlinkChain, this is the only place where head, tail and size are changed.
func (l *List[E]) link(prev, next *node[E], c chain[E]) {
	if c.empty() {
		return
	}

	c.head.prev, c.tail.next = prev, next

	if prev == nil {
		l.head = c.head
	} else {
		prev.next = c.head
	}

	if next == nil {
		l.tail = c.tail
	} else {
		next.prev = c.tail
	}

	l.size += c.length
	l.mods++
}

// inserts a chain in front of the node currently at index. The index must be valid for insertion.
func (l *List[E]) insert(index int, c chain[E]) {
	if index == l.size {
		l.link(l.tail, nil, c)
		return
	}

	at := l.nodeAt(index)
	l.link(at.prev, at, c)
}

// detaches a chain of the list. The inner links of the chain are kept, so it can be linked somewhere else,
// only the outer links are reset.
func (l *List[E]) unlinkChain(c chain[E]) {
	if c.empty() {
		return
	}

	prev, next := c.head.prev, c.tail.next

	if prev == nil {
		l.head = next
	} else {
		prev.next = next
	}

	if next == nil {
		l.tail = prev
	} else {
		next.prev = prev
	}

	c.head.prev, c.tail.next = nil, nil
	l.size -= c.length
	l.mods++
}

// removes a single node for good and returns its value
func (l *List[E]) unlink(n *node[E]) E {
	l.unlinkChain(singleChain(n))
	v := n.value
	var zero E
	n.value = zero
	return v
}

// takes all the nodes of the list as a chain, leaving the list empty
func (l *List[E]) detach() chain[E] {
	c := chain[E]{head: l.head, tail: l.tail, length: l.size}
	l.head, l.tail, l.size = nil, nil, 0
	l.mods++
	return c
}
