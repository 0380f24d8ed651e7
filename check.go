package wiredlist

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when an index or a range falls outside of the list.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument is returned when an argument can never be valid for an operation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNilList is returned when a list argument is nil.
	ErrNilList = fmt.Errorf("%w: nil list", ErrInvalidArgument)

	// ErrSelfEmbed is returned when a structural operation would splice a list into itself.
	ErrSelfEmbed = fmt.Errorf("%w: list cannot be embedded in itself", ErrInvalidArgument)

	// ErrNoSuchElement is returned when an operation needs an element, but there is none, e.g. First() on an
	// empty list, or Next() on an exhausted iterator.
	ErrNoSuchElement = errors.New("no such element")

	// ErrNoCurrentElement is returned by iterator operations that act on the current element, when Next() was
	// not called since the iterator was created or since the last Remove().
	ErrNoCurrentElement = errors.New("iterator has no current element")

	// ErrConcurrentModification is returned by iterators when they detect that the list was changed by other
	// means than the iterator itself. The detection is best-effort only.
	ErrConcurrentModification = errors.New("concurrent modification")

	// ErrUnsupported is returned by operations that the list deliberately does not support.
	ErrUnsupported = errors.ErrUnsupported
)

// an element index: 0 <= index < size
func checkIndex(index, size int) error {
	if index < 0 || index >= size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, size)
	}

	return nil
}

// an insertion point: 0 <= index <= size
func checkPosition(index, size int) error {
	if index < 0 || index > size {
		return fmt.Errorf("%w: position %d, size %d", ErrIndexOutOfRange, index, size)
	}

	return nil
}

// a segment: 0 <= from <= to <= size
func checkRange(from, to, size int) error {
	if from < 0 || to > size || from > to {
		return fmt.Errorf("%w: range [%d, %d), size %d", ErrIndexOutOfRange, from, to, size)
	}

	return nil
}

func checkPositive(name string, n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidArgument, name, n)
	}

	return nil
}

// identity, not equality
func checkOther[E comparable](l, other *List[E]) error {
	if other == nil {
		return ErrNilList
	}

	if l == other {
		return ErrSelfEmbed
	}

	return nil
}
