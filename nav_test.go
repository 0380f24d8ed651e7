package wiredlist

import "testing"

func TestNodeAt(t *testing.T) {
	l := initList(0, 1, 2, 3, 4, 5, 6)
	for i := 0; i < l.Len(); i++ {
		if n := l.nodeAt(i); n.value != i {
			t.Error("invalid node", i, n.value)
		}
	}
}

func TestNodeAfter(t *testing.T) {
	l := initList(0, 1, 2, 3, 4, 5, 6, 7, 8)
	for start := 0; start < l.Len(); start++ {
		for target := start; target < l.Len(); target++ {
			if n := l.nodeAfter(l.nodeAt(start), start, target); n.value != target {
				t.Error("invalid node", start, target, n.value)
			}
		}
	}
}

func TestNodeBefore(t *testing.T) {
	l := initList(0, 1, 2, 3, 4, 5, 6, 7, 8)
	for start := 0; start < l.Len(); start++ {
		for target := 0; target <= start; target++ {
			if n := l.nodeBefore(l.nodeAt(start), start, target); n.value != target {
				t.Error("invalid node", start, target, n.value)
			}
		}
	}
}

func TestSegment(t *testing.T) {
	l := initList(0, 1, 2, 3, 4, 5)
	for from := 0; from <= l.Len(); from++ {
		for to := from; to <= l.Len(); to++ {
			c := l.segment(from, to)
			if c.length != to-from {
				t.Error("invalid segment length", from, to, c.length)
				continue
			}

			if c.empty() {
				if c.head != nil || c.tail != nil {
					t.Error("invalid empty segment", from, to)
				}

				continue
			}

			if c.head.value != from || c.tail.value != to-1 {
				t.Error("invalid segment", from, to, c.head.value, c.tail.value)
			}
		}
	}
}
