/*
Package wiredlist provides a doubly linked list that supports structural operations on whole segments of the
list, at the cost of relinking a few pointers, independent of the length of the segments.

# Segments

A segment is a contiguous range of the list identified by the indexes [from, to). Segments can be cut out into
a new list (Cut), embedded from another list (Embed, Attach), replaced by the contents of another list
(Rewire), exchanged with a segment of another list (Exchange), or moved within the same list (Move). These
operations don't copy the elements. The nodes holding them are unlinked from one place and linked into
another, so moving a segment of a million elements costs the same as moving a single one. Locating the
boundaries of a segment still requires walking to them, always from the closest known node.

The operations that take another list transfer its nodes, and leave the other list without them. A list can
never be embedded into itself. This is checked by identity, not by equality, and the check happens before
anything is changed.

# Grouping

Defragment and Group sort the elements by an ordered set of criteria in a single pass, while Partition, Split,
LChop and RChop cut the list into multiple lists. None of these allocate new nodes.

# Iterators

The iterators returned by Iterator and ReverseIterator go in a single direction, but they can be turned around
at any point (Turn), and they can read, overwrite, insert and remove elements around their current position.
ListIterator is a simpler, read-only cursor moving in both directions. When the list is changed by other means
than the iterator, the iterators report it with ErrConcurrentModification, on a best-effort basis.

# Errors

Operations taking indexes validate them before changing the list, and return errors that can be checked with
errors.Is, e.g. ErrIndexOutOfRange, ErrSelfEmbed or ErrNoSuchElement. A failed operation leaves the list
unchanged.

# Concurrency

A list is not safe for concurrent use. Callers sharing a list between goroutines need to synchronize the
access externally.
*/
package wiredlist
