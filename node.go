package wiredlist

type node[E comparable] struct {
	value      E
	prev, next *node[E]
}

// a run of linked nodes, passed between unlinking from one place and linking into another. Never stored.
type chain[E comparable] struct {
	head, tail *node[E]
	length     int
}

func newNode[E comparable](v E) *node[E] {
	return &node[E]{value: v}
}

func singleChain[E comparable](n *node[E]) chain[E] {
	return chain[E]{head: n, tail: n, length: 1}
}

// creates fresh nodes for the values
func newChain[E comparable](values []E) chain[E] {
	var c chain[E]
	for _, v := range values {
		c.push(newNode(v))
	}

	return c
}

func (c chain[E]) empty() bool {
	return c.length == 0
}

// appends a node that is not linked anywhere else
func (c *chain[E]) push(n *node[E]) {
	n.prev, n.next = c.tail, nil
	if c.head == nil {
		c.head = n
	} else {
		c.tail.next = n
	}

	c.tail = n
	c.length++
}

// joins two detached chains
func (c chain[E]) concat(d chain[E]) chain[E] {
	if c.empty() {
		return d
	}

	if d.empty() {
		return c
	}

	c.tail.next, d.head.prev = d.head, c.tail
	return chain[E]{head: c.head, tail: d.tail, length: c.length + d.length}
}

// releases the nodes of a chain that leaves the list for good
func (c chain[E]) clear() {
	var zero E
	n := c.head
	for i := 0; i < c.length && n != nil; i++ {
		next := n.next
		n.value, n.prev, n.next = zero, nil, nil
		n = next
	}
}
