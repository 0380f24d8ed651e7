package wiredlist

import (
	"fmt"
	"hash/maphash"
	"strings"
)

var hashSeed = maphash.MakeSeed()

// Equal tells whether the two lists contain equal elements in the same order.
func (l *List[E]) Equal(other *List[E]) bool {
	if l == other {
		return true
	}

	if l == nil || other == nil || l.size != other.size {
		return false
	}

	for n, m := l.head, other.head; n != nil && m != nil; n, m = n.next, m.next {
		if n.value != m.value {
			return false
		}
	}

	return true
}

// Hash returns a hash of the elements depending on their order. Equal lists have equal hashes within the
// same process.
func (l *List[E]) Hash() uint64 {
	h := uint64(1)
	for n := l.head; n != nil; n = n.next {
		h = 31*h + maphash.Comparable(hashSeed, n.value)
	}

	return h
}

// String formats the list as a bracketed, comma separated sequence of its elements.
func (l *List[E]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteString(", ")
		}

		fmt.Fprint(&b, n.value)
	}

	b.WriteByte(']')
	return b.String()
}
