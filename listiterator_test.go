package wiredlist

import (
	"errors"
	"testing"
)

func TestListIterator(t *testing.T) {
	l := initList(1, 2, 3)
	it := l.ListIterator()
	if it.HasPrevious() || it.PreviousIndex() != -1 || it.NextIndex() != 0 {
		t.Error("invalid start position")
	}

	if _, err := it.Previous(); !errors.Is(err, ErrNoSuchElement) {
		t.Error("failed to fail", err)
	}

	var forward []int
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			t.Fatal(err)
		}

		forward = append(forward, v)
	}

	if !equalInts(forward, []int{1, 2, 3}) {
		t.Error("invalid forward traversal", forward)
	}

	if _, err := it.Next(); !errors.Is(err, ErrNoSuchElement) {
		t.Error("failed to fail", err)
	}

	var backward []int
	for it.HasPrevious() {
		v, err := it.Previous()
		if err != nil {
			t.Fatal(err)
		}

		backward = append(backward, v)
	}

	if !equalInts(backward, []int{3, 2, 1}) {
		t.Error("invalid backward traversal", backward)
	}
}

func TestListIteratorZigZag(t *testing.T) {
	l := initList(1, 2, 3)
	it := l.ListIterator()
	it.Next()
	it.Next()
	if v, err := it.Previous(); err != nil || v != 2 {
		t.Error("invalid previous", v, err)
	}

	if v, err := it.Next(); err != nil || v != 2 {
		t.Error("invalid next", v, err)
	}

	if it.NextIndex() != 2 || it.PreviousIndex() != 1 {
		t.Error("invalid indexes", it.NextIndex(), it.PreviousIndex())
	}
}

func TestListIteratorAt(t *testing.T) {
	l := initList(1, 2, 3)
	it, err := l.ListIteratorAt(3)
	if err != nil {
		t.Fatal(err)
	}

	if v, err := it.Previous(); err != nil || v != 3 {
		t.Error("invalid previous", v, err)
	}

	it, err = l.ListIteratorAt(1)
	if err != nil {
		t.Fatal(err)
	}

	if v, err := it.Next(); err != nil || v != 2 {
		t.Error("invalid next", v, err)
	}

	if _, err := l.ListIteratorAt(4); !errors.Is(err, ErrIndexOutOfRange) {
		t.Error("failed to fail", err)
	}
}

func TestListIteratorUnsupported(t *testing.T) {
	it := initList(1).ListIterator()
	it.Next()
	if err := it.Remove(); !errors.Is(err, ErrUnsupported) {
		t.Error("failed to fail", err)
	}

	if err := it.Set(2); !errors.Is(err, ErrUnsupported) {
		t.Error("failed to fail", err)
	}

	if err := it.Add(2); !errors.Is(err, ErrUnsupported) {
		t.Error("failed to fail", err)
	}
}

func TestListIteratorConcurrentModification(t *testing.T) {
	l := initList(1, 2, 3)
	it := l.ListIterator()
	it.Next()
	l.Remove(0)
	if _, err := it.Next(); !errors.Is(err, ErrConcurrentModification) {
		t.Error("failed to detect modification", err)
	}
}

func TestRangeOver(t *testing.T) {
	l := initList(1, 2, 3)

	var values []int
	for v := range l.Values() {
		values = append(values, v)
	}

	if !equalInts(values, []int{1, 2, 3}) {
		t.Error("invalid values", values)
	}

	for i, v := range l.All() {
		if v != i+1 {
			t.Error("invalid pair", i, v)
		}
	}

	var indexes []int
	for i, v := range l.Backward() {
		if v != i+1 {
			t.Error("invalid pair", i, v)
		}

		indexes = append(indexes, i)
	}

	if !equalInts(indexes, []int{2, 1, 0}) {
		t.Error("invalid backward indexes", indexes)
	}

	for v := range l.Values() {
		if v == 2 {
			break
		}
	}
}
