package wiredlist

func forward[E comparable](n *node[E], steps int) *node[E] {
	for ; steps > 0; steps-- {
		n = n.next
	}

	return n
}

func backward[E comparable](n *node[E], steps int) *node[E] {
	for ; steps > 0; steps-- {
		n = n.prev
	}

	return n
}

// returns the node at index, walking from the closer end. The index must be valid.
func (l *List[E]) nodeAt(index int) *node[E] {
	if index < l.size/2 {
		return forward(l.head, index)
	}

	return backward(l.tail, l.size-1-index)
}

// returns the node at targetIndex, when the node at startIndex is already known and startIndex <= targetIndex.
// Walks either from the start node or from the tail, whichever is closer.
func (l *List[E]) nodeAfter(start *node[E], startIndex, targetIndex int) *node[E] {
	if targetIndex-startIndex <= l.size-1-targetIndex {
		return forward(start, targetIndex-startIndex)
	}

	return backward(l.tail, l.size-1-targetIndex)
}

// returns the node at targetIndex, when the node at startIndex is already known and targetIndex <= startIndex.
// Walks either from the start node or from the head, whichever is closer.
func (l *List[E]) nodeBefore(start *node[E], startIndex, targetIndex int) *node[E] {
	if startIndex-targetIndex <= targetIndex {
		return backward(start, startIndex-targetIndex)
	}

	return forward(l.head, targetIndex)
}

// returns the chain spanning [from, to) without unlinking it. The range must be valid.
func (l *List[E]) segment(from, to int) chain[E] {
	if from == to {
		return chain[E]{}
	}

	head := l.nodeAt(from)
	tail := l.nodeAfter(head, from, to-1)
	return chain[E]{head: head, tail: tail, length: to - from}
}
