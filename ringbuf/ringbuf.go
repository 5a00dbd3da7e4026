package ringbuf

import (
	"fmt"
	"reflect"
	"strings"
)

// DefaultCapacity is the backing-slice length used by New.
const DefaultCapacity = 8

// MinCapacity is the hard capacity floor: shrink never takes the
// backing slice below this length, and capacity hints beneath it are
// silently raised.
const MinCapacity = 4

// Buffer is a generic circular buffer. The zero value is not usable;
// build instances with New or NewWithCapacity.
//
// Buffer provides no internal synchronization. Concurrent mutation from
// multiple goroutines without external locking is undefined behavior.
type Buffer[E any] struct {
	buf []E // backing storage; len(buf) is the current capacity
	// head is inclusive: the physical slot of the first live element.
	head int
	// tail is exclusive: one past the physical slot of the last live
	// element. head == tail both when empty and when full; size
	// disambiguates.
	tail int
	size int
}

// New returns an empty Buffer with DefaultCapacity.
// Complexity: O(1).
func New[E any]() *Buffer[E] {
	b, _ := NewWithCapacity[E](DefaultCapacity)

	return b
}

// NewWithCapacity returns an empty Buffer whose backing slice holds
// capacity elements. Returns ErrBadCapacity if capacity < 1; hints
// below MinCapacity are silently raised to MinCapacity.
// Complexity: O(capacity).
func NewWithCapacity[E any](capacity int) (*Buffer[E], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	if capacity < MinCapacity {
		capacity = MinCapacity
	}

	return &Buffer[E]{buf: make([]E, capacity)}, nil
}

// AddFirst writes v one slot before the current head, wrapping modulo
// capacity. Grows ×2 first when full. Returns ErrNilElement if v is nil.
// Complexity: amortized O(1).
func (b *Buffer[E]) AddFirst(v E) error {
	if isNilElement(v) {
		return ErrNilElement
	}
	if b.size == len(b.buf) {
		b.resize(len(b.buf) * 2)
	}

	// head is inclusive: step back first, then write.
	b.head = (b.head - 1 + len(b.buf)) % len(b.buf)
	b.buf[b.head] = v
	b.size++

	return nil
}

// AddLast writes v at the current tail, then advances it modulo
// capacity. Grows ×2 first when full. Returns ErrNilElement if v is nil.
// Complexity: amortized O(1).
func (b *Buffer[E]) AddLast(v E) error {
	if isNilElement(v) {
		return ErrNilElement
	}
	if b.size == len(b.buf) {
		b.resize(len(b.buf) * 2)
	}

	// tail is exclusive: write first, then step forward.
	b.buf[b.tail] = v
	b.tail = (b.tail + 1) % len(b.buf)
	b.size++

	return nil
}

// Add inserts v at position index, shifting whichever side is shorter
// toward its end. index is a position index: valid range is [0, Len];
// Add(Len, v) is AddLast. Returns ErrIndexOutOfRange or ErrNilElement.
// Complexity: O(min(index, n−index)).
func (b *Buffer[E]) Add(index int, v E) error {
	if err := b.checkPositionIndex(index); err != nil {
		return err
	}
	if isNilElement(v) {
		return ErrNilElement
	}
	if b.size == len(b.buf) {
		b.resize(len(b.buf) * 2)
	}

	if index < b.size-index {
		// Shift the prefix one slot toward the head.
		b.head = (b.head - 1 + len(b.buf)) % len(b.buf)
		for j := 0; j < index; j++ {
			b.buf[b.slot(j)] = b.buf[b.slot(j+1)]
		}
		b.buf[b.slot(index)] = v
	} else {
		// Shift the suffix one slot toward the tail.
		for j := b.size; j > index; j-- {
			b.buf[b.slot(j)] = b.buf[b.slot(j-1)]
		}
		b.buf[b.slot(index)] = v
		b.tail = (b.tail + 1) % len(b.buf)
	}
	b.size++

	return nil
}

// RemoveFirst removes and returns the element at the head, clearing the
// vacated slot. Returns ErrEmpty on an empty buffer.
// Complexity: amortized O(1).
func (b *Buffer[E]) RemoveFirst() (E, error) {
	var zero E
	if b.size == 0 {
		return zero, ErrEmpty
	}

	v := b.buf[b.head]
	b.buf[b.head] = zero
	b.head = (b.head + 1) % len(b.buf)
	b.size--

	b.maybeShrink()

	return v, nil
}

// RemoveLast steps the tail back modulo capacity and returns the
// element it uncovers, clearing the vacated slot.
// Returns ErrEmpty on an empty buffer.
// Complexity: amortized O(1).
func (b *Buffer[E]) RemoveLast() (E, error) {
	var zero E
	if b.size == 0 {
		return zero, ErrEmpty
	}

	b.tail = (b.tail - 1 + len(b.buf)) % len(b.buf)
	v := b.buf[b.tail]
	b.buf[b.tail] = zero
	b.size--

	b.maybeShrink()

	return v, nil
}

// Remove removes and returns the element at index, shifting whichever
// side is shorter to close the gap. index is an element index: valid
// range is [0, Len). Returns ErrIndexOutOfRange on violation.
// Complexity: O(min(index, n−index)).
func (b *Buffer[E]) Remove(index int) (E, error) {
	var zero E
	if err := b.checkElementIndex(index); err != nil {
		return zero, err
	}
	v := b.buf[b.slot(index)]

	if index < b.size-1-index {
		// Close the gap from the head side.
		for j := index; j > 0; j-- {
			b.buf[b.slot(j)] = b.buf[b.slot(j-1)]
		}
		b.buf[b.head] = zero
		b.head = (b.head + 1) % len(b.buf)
	} else {
		// Close the gap from the tail side.
		for j := index; j < b.size-1; j++ {
			b.buf[b.slot(j)] = b.buf[b.slot(j+1)]
		}
		b.tail = (b.tail - 1 + len(b.buf)) % len(b.buf)
		b.buf[b.tail] = zero
	}
	b.size--

	b.maybeShrink()

	return v, nil
}

// Get returns the element at logical index, read from physical slot
// (head + index) mod capacity. index ∈ [0, Len).
// Complexity: O(1).
func (b *Buffer[E]) Get(index int) (E, error) {
	var zero E
	if err := b.checkElementIndex(index); err != nil {
		return zero, err
	}

	return b.buf[b.slot(index)], nil
}

// Set replaces the element at logical index with v and returns the
// previous value. index ∈ [0, Len). Returns ErrNilElement or
// ErrIndexOutOfRange.
// Complexity: O(1).
func (b *Buffer[E]) Set(index int, v E) (E, error) {
	var zero E
	if err := b.checkElementIndex(index); err != nil {
		return zero, err
	}
	if isNilElement(v) {
		return zero, ErrNilElement
	}

	phys := b.slot(index)
	old := b.buf[phys]
	b.buf[phys] = v

	return old, nil
}

// First returns the element at the head without removing it.
// Returns ErrEmpty on an empty buffer.
// Complexity: O(1).
func (b *Buffer[E]) First() (E, error) {
	var zero E
	if b.size == 0 {
		return zero, ErrEmpty
	}

	return b.buf[b.head], nil
}

// Last returns the element one slot before the tail without removing
// it. Returns ErrEmpty on an empty buffer.
// Complexity: O(1).
func (b *Buffer[E]) Last() (E, error) {
	var zero E
	if b.size == 0 {
		return zero, ErrEmpty
	}

	return b.buf[(b.tail-1+len(b.buf))%len(b.buf)], nil
}

// Len returns the number of elements.
// Complexity: O(1).
func (b *Buffer[E]) Len() int { return b.size }

// Cap returns the current backing-slice length.
// Complexity: O(1).
func (b *Buffer[E]) Cap() int { return len(b.buf) }

// IsEmpty reports whether the buffer holds no elements.
// Complexity: O(1).
func (b *Buffer[E]) IsEmpty() bool { return b.size == 0 }

// IsFull reports whether size equals capacity; the next Add* grows.
// Complexity: O(1).
func (b *Buffer[E]) IsFull() bool { return b.size == len(b.buf) }

// Clear removes every element, releasing all element references and
// resetting both cursors to slot 0. Capacity is retained.
// Complexity: O(n).
func (b *Buffer[E]) Clear() {
	var zero E
	for i := 0; i < b.size; i++ {
		b.buf[b.slot(i)] = zero
	}
	b.head = 0
	b.tail = 0
	b.size = 0
}

// Elements returns a fresh slice holding the elements in logical order.
// The result shares no memory with the buffer.
// Complexity: O(n).
func (b *Buffer[E]) Elements() []E {
	out := make([]E, b.size)
	for i := 0; i < b.size; i++ {
		out[i] = b.buf[b.slot(i)]
	}

	return out
}

// String renders size, capacity, cursors, and elements for diagnostics.
func (b *Buffer[E]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ringbuf(size=%d, cap=%d, head=%d, tail=%d)[", b.size, len(b.buf), b.head, b.tail)
	for i := 0; i < b.size; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v", b.buf[b.slot(i)])
	}
	sb.WriteString("]")

	return sb.String()
}

// slot maps logical index i to its physical slot.
func (b *Buffer[E]) slot(i int) int {
	return (b.head + i) % len(b.buf)
}

// maybeShrink halves capacity at quarter occupancy, clamped to
// MinCapacity. Never fires on a drained buffer; once capacity cannot
// legally halve below the floor, the resize is a no-op by value.
func (b *Buffer[E]) maybeShrink() {
	if b.size > 0 && b.size == len(b.buf)/4 {
		half := len(b.buf) / 2
		if half < MinCapacity {
			half = MinCapacity
		}
		if half != len(b.buf) {
			b.resize(half)
		}
	}
}

// resize reallocates the backing slice to newCapacity, copying the
// live elements in logical order into slots [0, size) and resetting
// head to 0, tail to size. newCapacity must be ≥ b.size.
func (b *Buffer[E]) resize(newCapacity int) {
	if newCapacity < MinCapacity {
		newCapacity = MinCapacity
	}
	next := make([]E, newCapacity)
	for i := 0; i < b.size; i++ {
		next[i] = b.buf[b.slot(i)]
	}
	b.buf = next
	b.head = 0
	b.tail = b.size
}

// checkElementIndex validates index against the element range [0, Len).
func (b *Buffer[E]) checkElementIndex(index int) error {
	if index < 0 || index >= b.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, b.size)
	}

	return nil
}

// checkPositionIndex validates index against the position range
// [0, Len]; Len itself means "append".
func (b *Buffer[E]) checkPositionIndex(index int) error {
	if index < 0 || index > b.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, b.size)
	}

	return nil
}

// isNilElement reports whether v is nil or a nil value of a nillable
// kind. Zero values of non-nillable kinds (0, "", struct{}{}) are legal
// elements and report false.
func isNilElement(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
