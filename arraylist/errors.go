package arraylist

import "errors"

var (
	// ErrBadCapacity indicates a non-positive initial-capacity hint.
	ErrBadCapacity = errors.New("arraylist: capacity must be positive")
	// ErrNilElement indicates an attempt to store a nil element.
	ErrNilElement = errors.New("arraylist: nil element not allowed")
	// ErrIndexOutOfRange indicates an index outside the valid range.
	ErrIndexOutOfRange = errors.New("arraylist: index out of range")
	// ErrEmpty indicates a removal or boundary access on an empty list.
	ErrEmpty = errors.New("arraylist: list is empty")
)
