package ringbuf

import "errors"

var (
	// ErrBadCapacity indicates a non-positive initial-capacity hint.
	ErrBadCapacity = errors.New("ringbuf: capacity must be positive")
	// ErrNilElement indicates an attempt to store a nil element.
	ErrNilElement = errors.New("ringbuf: nil element not allowed")
	// ErrIndexOutOfRange indicates an index outside the valid range.
	ErrIndexOutOfRange = errors.New("ringbuf: index out of range")
	// ErrEmpty indicates a removal or boundary access on an empty buffer.
	ErrEmpty = errors.New("ringbuf: buffer is empty")
)
