package singlylist

import "errors"

var (
	// ErrNilElement indicates an attempt to store a nil element.
	ErrNilElement = errors.New("singlylist: nil element not allowed")
	// ErrIndexOutOfRange indicates an index outside the valid range.
	ErrIndexOutOfRange = errors.New("singlylist: index out of range")
	// ErrEmpty indicates a removal or boundary access on an empty list.
	ErrEmpty = errors.New("singlylist: list is empty")
)
