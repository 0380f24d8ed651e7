package wiredlist

// Iterator is a one-way iterator over a list, either from head to tail, or from tail to head. Besides
// stepping and reading, it can change the list around its current element, and it can be turned around in the
// middle of an iteration.
//
// The current element is the one returned by the last call to Next(). Value, Set, InsertBefore, InsertAfter
// and Remove require a current element, and fail with ErrNoCurrentElement when Next() was not called since
// the iterator was created or since the last call to Remove().
//
// When the list is changed by other means than the iterator, the iterator returns ErrConcurrentModification
// on a best-effort basis.
type Iterator[E comparable] interface {

	// HasNext tells whether Next() can return another element.
	HasNext() bool

	// Next steps to the next element in the direction of the iterator and returns it.
	Next() (E, error)

	// Peek returns the element that the next call to Next() would return, without stepping.
	Peek() (E, error)

	// Value returns the current element.
	Value() (E, error)

	// Set overwrites the current element.
	Set(E) error

	// InsertBefore inserts a value in front of the current element, in list order, i.e. towards the head,
	// regardless of the direction of the iterator.
	InsertBefore(E) error

	// InsertAfter inserts a value after the current element, in list order, i.e. towards the tail, regardless
	// of the direction of the iterator.
	InsertAfter(E) error

	// Remove removes the current element. The iterator steps back, so the next call to Next() returns the
	// element that followed the removed one in the direction of the iterator.
	Remove() error

	// Index returns the list index of the current element. It is calculated by walking from the end of the
	// list where the iteration starts. Before the first step, it returns -1 for forward iterators, and Len()
	// for reverse ones.
	Index() int

	// Turn returns an iterator going in the opposite direction, with the same current element. After Remove,
	// the turned iterator has no current element, and it continues from the node before the removed one.
	// Turning an iterator that was never stepped is a restart: it returns a new iterator starting from the
	// opposite end, not an exhausted one.
	Turn() Iterator[E]
}

type wiredIterator[E comparable] struct {
	list *List[E]

	// the start position, before the first element in the direction of the iterator, identified by its
	// address
	origin node[E]

	curr       *node[E]
	positioned bool
	mods       int
}

type forwardIterator[E comparable] struct {
	wiredIterator[E]
}

type reverseIterator[E comparable] struct {
	wiredIterator[E]
}

// Iterator returns an iterator going from the head of the list to the tail.
func (l *List[E]) Iterator() Iterator[E] {
	it := &forwardIterator[E]{}
	it.init(l)
	return it
}

// ReverseIterator returns an iterator going from the tail of the list to the head.
func (l *List[E]) ReverseIterator() Iterator[E] {
	it := &reverseIterator[E]{}
	it.init(l)
	return it
}

func (it *wiredIterator[E]) init(l *List[E]) {
	it.list = l
	it.curr = &it.origin
	it.mods = l.mods
}

// positions the iterator on a node of the list, used when turning
func (it *wiredIterator[E]) at(n *node[E], positioned bool) {
	it.curr = n
	it.positioned = positioned
}

func (it *wiredIterator[E]) started() bool {
	return it.curr != &it.origin
}

func (it *wiredIterator[E]) checkMods() error {
	if it.mods != it.list.mods {
		return ErrConcurrentModification
	}

	return nil
}

func (it *wiredIterator[E]) checkCurrent() error {
	if err := it.checkMods(); err != nil {
		return err
	}

	if !it.positioned {
		return ErrNoCurrentElement
	}

	return nil
}

// returns the node following step, or fails when the node doesn't exist
func (it *wiredIterator[E]) step(hasNext bool, next func() *node[E]) (*node[E], error) {
	if err := it.checkMods(); err != nil {
		return nil, err
	}

	if !hasNext {
		return nil, ErrNoSuchElement
	}

	n := next()
	if n == nil {
		return nil, ErrConcurrentModification
	}

	return n, nil
}

func (it *wiredIterator[E]) advance(hasNext bool, next func() *node[E]) (E, error) {
	n, err := it.step(hasNext, next)
	if err != nil {
		var zero E
		return zero, err
	}

	it.curr, it.positioned = n, true
	return n.value, nil
}

func (it *wiredIterator[E]) peek(hasNext bool, next func() *node[E]) (E, error) {
	n, err := it.step(hasNext, next)
	if err != nil {
		var zero E
		return zero, err
	}

	return n.value, nil
}

func (it *wiredIterator[E]) Value() (E, error) {
	if err := it.checkCurrent(); err != nil {
		var zero E
		return zero, err
	}

	return it.curr.value, nil
}

func (it *wiredIterator[E]) Set(v E) error {
	if err := it.checkCurrent(); err != nil {
		return err
	}

	it.curr.value = v
	return nil
}

func (it *wiredIterator[E]) InsertBefore(v E) error {
	if err := it.checkCurrent(); err != nil {
		return err
	}

	it.list.link(it.curr.prev, it.curr, singleChain(newNode(v)))
	it.mods = it.list.mods
	return nil
}

func (it *wiredIterator[E]) InsertAfter(v E) error {
	if err := it.checkCurrent(); err != nil {
		return err
	}

	it.list.link(it.curr, it.curr.next, singleChain(newNode(v)))
	it.mods = it.list.mods
	return nil
}

// unlinks the current node, and steps back to back, or to the origin if back is nil
func (it *wiredIterator[E]) remove(back *node[E]) {
	it.list.unlink(it.curr)
	it.mods = it.list.mods
	it.positioned = false
	if back == nil {
		it.curr = &it.origin
	} else {
		it.curr = back
	}
}

func (it *forwardIterator[E]) HasNext() bool {
	if !it.started() {
		return it.list.size > 0
	}

	return it.curr != it.list.tail
}

func (it *forwardIterator[E]) nextNode() *node[E] {
	if !it.started() {
		return it.list.head
	}

	return it.curr.next
}

func (it *forwardIterator[E]) Next() (E, error) {
	return it.advance(it.HasNext(), it.nextNode)
}

func (it *forwardIterator[E]) Peek() (E, error) {
	return it.peek(it.HasNext(), it.nextNode)
}

func (it *forwardIterator[E]) Remove() error {
	if err := it.checkCurrent(); err != nil {
		return err
	}

	it.remove(it.curr.prev)
	return nil
}

func (it *forwardIterator[E]) Index() int {
	if !it.started() {
		return -1
	}

	var i int
	for n := it.list.head; n != nil && n != it.curr; n = n.next {
		i++
	}

	return i
}

func (it *forwardIterator[E]) Turn() Iterator[E] {
	r := &reverseIterator[E]{}
	r.init(it.list)
	if it.started() {
		r.at(it.curr, it.positioned)
	}

	return r
}

func (it *reverseIterator[E]) HasNext() bool {
	if !it.started() {
		return it.list.size > 0
	}

	return it.curr != it.list.head
}

func (it *reverseIterator[E]) nextNode() *node[E] {
	if !it.started() {
		return it.list.tail
	}

	return it.curr.prev
}

func (it *reverseIterator[E]) Next() (E, error) {
	return it.advance(it.HasNext(), it.nextNode)
}

func (it *reverseIterator[E]) Peek() (E, error) {
	return it.peek(it.HasNext(), it.nextNode)
}

func (it *reverseIterator[E]) Remove() error {
	if err := it.checkCurrent(); err != nil {
		return err
	}

	it.remove(it.curr.next)
	return nil
}

func (it *reverseIterator[E]) Index() int {
	if !it.started() {
		return it.list.size
	}

	i := it.list.size - 1
	for n := it.list.tail; n != nil && n != it.curr; n = n.prev {
		i--
	}

	return i
}

func (it *reverseIterator[E]) Turn() Iterator[E] {
	f := &forwardIterator[E]{}
	f.init(it.list)
	if it.started() {
		f.at(it.curr, it.positioned)
	}

	return f
}
