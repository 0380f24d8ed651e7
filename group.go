package wiredlist

// takes all the nodes of the list, and sorts them into one chain per criterion, in a single pass. A node goes
// to the chain of the first criterion that it satisfies. The last chain collects the nodes that satisfy none.
// The list is left empty.
func (l *List[E]) classify(criteria []func(E) bool) []chain[E] {
	chains := make([]chain[E], len(criteria)+1)
	all := l.detach()
	for n, i := all.head, 0; i < all.length; i++ {
		next := n.next
		ci := len(criteria)
		for j, c := range criteria {
			if c(n.value) {
				ci = j
				break
			}
		}

		chains[ci].push(n)
		n = next
	}

	return chains
}

// Defragment reorders the list, such that the elements satisfying the first criterion come first, then the
// ones satisfying the second criterion, and so on. The elements that satisfy none of the criteria come last.
// An element is only placed by the first criterion that it satisfies. The order of the elements within each
// group is preserved.
func (l *List[E]) Defragment(criteria ...func(E) bool) {
	if len(criteria) == 0 || l.size < 2 {
		return
	}

	var c chain[E]
	for _, ci := range l.classify(criteria) {
		c = c.concat(ci)
	}

	l.link(nil, nil, c)
}

// Group moves the elements of the list into a new list for each criterion. An element goes to the list of
// the first criterion that it satisfies. The returned slice has one more list than the number of criteria,
// containing the elements that satisfy none of them. The list is left empty.
func (l *List[E]) Group(criteria ...func(E) bool) []*List[E] {
	chains := l.classify(criteria)
	groups := make([]*List[E], len(chains))
	for i, c := range chains {
		groups[i] = fromChain(c)
	}

	return groups
}

// cuts the first n nodes of the list into a new list
func (l *List[E]) cutHead(n int) *List[E] {
	c := chain[E]{head: l.head, tail: forward(l.head, n-1), length: n}
	l.unlinkChain(c)
	return fromChain(c)
}

// Partition moves the elements of the list into new lists of the given size. The last list may be shorter.
// The list is left empty.
func (l *List[E]) Partition(size int) ([]*List[E], error) {
	if err := checkPositive("partition size", size); err != nil {
		return nil, err
	}

	parts := make([]*List[E], 0, l.size/size+min(l.size%size, 1))
	for l.size > size {
		parts = append(parts, l.cutHead(size))
	}

	if l.size > 0 {
		parts = append(parts, fromChain(l.detach()))
	}

	return parts, nil
}

// Split moves the elements of the list into n new lists of nearly equal size. The sizes differ at most by one,
// and the longer lists come first. When the list has fewer elements than n, it is split into single element
// lists. The list is left empty.
func (l *List[E]) Split(n int) ([]*List[E], error) {
	if err := checkPositive("partition count", n); err != nil {
		return nil, err
	}

	count := min(n, l.size)
	if count == 0 {
		return nil, nil
	}

	size, extra := l.size/count, l.size%count
	parts := make([]*List[E], 0, count)
	for i := 0; i < count-1; i++ {
		partSize := size
		if i < extra {
			partSize++
		}

		parts = append(parts, l.cutHead(partSize))
	}

	parts = append(parts, fromChain(l.detach()))
	return parts, nil
}

// LChop removes the longest prefix of the list whose every element satisfies the predicate, and returns it
// as a new list. When all the elements satisfy the predicate, the list is not changed and LChop returns the
// list itself. When the first element doesn't satisfy it, LChop returns an empty list.
func (l *List[E]) LChop(pred func(E) bool) *List[E] {
	var count int
	last := l.head
	for last != nil && pred(last.value) {
		count++
		last = last.next
	}

	switch {
	case count == l.size:
		return l
	case count == 0:
		return &List[E]{}
	}

	c := chain[E]{head: l.head, tail: last.prev, length: count}
	l.unlinkChain(c)
	return fromChain(c)
}

// RChop removes the longest suffix of the list whose every element satisfies the predicate, and returns it
// as a new list. When all the elements satisfy the predicate, the list is not changed and RChop returns the
// list itself. When the last element doesn't satisfy it, RChop returns an empty list.
func (l *List[E]) RChop(pred func(E) bool) *List[E] {
	var count int
	first := l.tail
	for first != nil && pred(first.value) {
		count++
		first = first.prev
	}

	switch {
	case count == l.size:
		return l
	case count == 0:
		return &List[E]{}
	}

	c := chain[E]{head: first.next, tail: l.tail, length: count}
	l.unlinkChain(c)
	return fromChain(c)
}

// Reverse reverses the order of the elements in place. Only the values are swapped, the nodes stay.
func (l *List[E]) Reverse() {
	for i, h, t := 0, l.head, l.tail; i < l.size/2; i++ {
		h.value, t.value = t.value, h.value
		h, t = h.next, t.prev
	}
}
