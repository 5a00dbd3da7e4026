package arraylist

import (
	"fmt"
	"reflect"
	"strings"
)

// DefaultCapacity is the backing-slice length used by New.
const DefaultCapacity = 10

// MinCapacity is the structural floor: the backing slice never shrinks
// below this length, so a drained list keeps a usable allocation.
const MinCapacity = 1

// List is a generic dynamic array. The zero value is not usable; build
// instances with New or NewWithCapacity.
//
// List provides no internal synchronization. Concurrent mutation from
// multiple goroutines without external locking is undefined behavior.
type List[E any] struct {
	data []E // backing storage; len(data) is the current capacity
	size int // count of live elements, always ≤ len(data)
}

// New returns an empty List with DefaultCapacity.
// Complexity: O(1).
func New[E any]() *List[E] {
	l, _ := NewWithCapacity[E](DefaultCapacity)

	return l
}

// NewWithCapacity returns an empty List whose backing slice holds
// capacity elements. Returns ErrBadCapacity if capacity < 1; hints
// below MinCapacity are silently raised to MinCapacity.
// Complexity: O(capacity).
func NewWithCapacity[E any](capacity int) (*List[E], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	if capacity < MinCapacity {
		capacity = MinCapacity
	}

	return &List[E]{data: make([]E, capacity)}, nil
}

// AddFirst inserts v at index 0, shifting every element one slot toward
// the tail. Returns ErrNilElement if v is nil.
// Complexity: O(n).
func (l *List[E]) AddFirst(v E) error {
	return l.Add(0, v)
}

// AddLast appends v after the current last element.
// Returns ErrNilElement if v is nil.
// Complexity: amortized O(1).
func (l *List[E]) AddLast(v E) error {
	return l.Add(l.size, v)
}

// Add inserts v at position index, shifting elements at or after index
// one slot toward the tail. index is a position index: valid range is
// [0, Len]; Add(Len, v) appends. Returns ErrIndexOutOfRange or
// ErrNilElement; on either failure the list is unchanged.
// Complexity: O(n − index).
func (l *List[E]) Add(index int, v E) error {
	if err := l.checkPositionIndex(index); err != nil {
		return err
	}
	if isNilElement(v) {
		return ErrNilElement
	}
	l.ensureCapacity(l.size + 1)

	// Shift the suffix right, then drop v into the gap.
	copy(l.data[index+1:l.size+1], l.data[index:l.size])
	l.data[index] = v
	l.size++

	return nil
}

// RemoveFirst removes and returns the element at index 0.
// Returns ErrEmpty on an empty list.
// Complexity: O(n).
func (l *List[E]) RemoveFirst() (E, error) {
	if l.size == 0 {
		var zero E

		return zero, ErrEmpty
	}

	return l.Remove(0)
}

// RemoveLast removes and returns the last element.
// Returns ErrEmpty on an empty list.
// Complexity: O(1) amortized.
func (l *List[E]) RemoveLast() (E, error) {
	if l.size == 0 {
		var zero E

		return zero, ErrEmpty
	}

	return l.Remove(l.size - 1)
}

// Remove removes and returns the element at index, shifting the suffix
// one slot toward the head. index is an element index: valid range is
// [0, Len). Returns ErrIndexOutOfRange on violation.
// Complexity: O(n − index).
func (l *List[E]) Remove(index int) (E, error) {
	var zero E
	if err := l.checkElementIndex(index); err != nil {
		return zero, err
	}
	removed := l.data[index]

	// Shift the suffix left and release the vacated tail slot.
	copy(l.data[index:l.size-1], l.data[index+1:l.size])
	l.data[l.size-1] = zero
	l.size--

	// Halve capacity at quarter occupancy; never on a drained list,
	// so capacity cannot collapse toward zero.
	if l.size > 0 && l.size == len(l.data)/4 {
		l.resize(len(l.data) / 2)
	}

	return removed, nil
}

// Get returns the element at index. index ∈ [0, Len).
// Complexity: O(1).
func (l *List[E]) Get(index int) (E, error) {
	var zero E
	if err := l.checkElementIndex(index); err != nil {
		return zero, err
	}

	return l.data[index], nil
}

// Set replaces the element at index with v and returns the previous
// value. index ∈ [0, Len). Returns ErrNilElement or ErrIndexOutOfRange.
// Complexity: O(1).
func (l *List[E]) Set(index int, v E) (E, error) {
	var zero E
	if err := l.checkElementIndex(index); err != nil {
		return zero, err
	}
	if isNilElement(v) {
		return zero, ErrNilElement
	}
	old := l.data[index]
	l.data[index] = v

	return old, nil
}

// First returns the element at index 0 without removing it.
// Returns ErrEmpty on an empty list.
// Complexity: O(1).
func (l *List[E]) First() (E, error) {
	if l.size == 0 {
		var zero E

		return zero, ErrEmpty
	}

	return l.data[0], nil
}

// Last returns the last element without removing it.
// Returns ErrEmpty on an empty list.
// Complexity: O(1).
func (l *List[E]) Last() (E, error) {
	if l.size == 0 {
		var zero E

		return zero, ErrEmpty
	}

	return l.data[l.size-1], nil
}

// Len returns the number of elements.
// Complexity: O(1).
func (l *List[E]) Len() int { return l.size }

// Cap returns the current backing-slice length.
// Complexity: O(1).
func (l *List[E]) Cap() int { return len(l.data) }

// IsEmpty reports whether the list holds no elements.
// Complexity: O(1).
func (l *List[E]) IsEmpty() bool { return l.size == 0 }

// Clear removes every element, releasing all element references.
// Capacity is retained.
// Complexity: O(n).
func (l *List[E]) Clear() {
	var zero E
	for i := 0; i < l.size; i++ {
		l.data[i] = zero
	}
	l.size = 0
}

// Elements returns a fresh slice holding the elements in order. The
// result shares no memory with the list.
// Complexity: O(n).
func (l *List[E]) Elements() []E {
	out := make([]E, l.size)
	copy(out, l.data[:l.size])

	return out
}

// String renders size, capacity, and elements for diagnostics.
func (l *List[E]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "arraylist(size=%d, cap=%d)[", l.size, len(l.data))
	for i := 0; i < l.size; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v", l.data[i])
	}
	sb.WriteString("]")

	return sb.String()
}

// ensureCapacity grows the backing slice when minCapacity exceeds it,
// reallocating to max(2×capacity, minCapacity).
func (l *List[E]) ensureCapacity(minCapacity int) {
	if minCapacity <= len(l.data) {
		return
	}
	newCapacity := len(l.data) * 2
	if newCapacity < minCapacity {
		newCapacity = minCapacity
	}
	l.resize(newCapacity)
}

// resize reallocates the backing slice to newCapacity and copies the
// live elements in order. newCapacity must be ≥ l.size.
func (l *List[E]) resize(newCapacity int) {
	if newCapacity < MinCapacity {
		newCapacity = MinCapacity
	}
	next := make([]E, newCapacity)
	copy(next, l.data[:l.size])
	l.data = next
}

// checkElementIndex validates index against the element range [0, Len).
func (l *List[E]) checkElementIndex(index int) error {
	if index < 0 || index >= l.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, l.size)
	}

	return nil
}

// checkPositionIndex validates index against the position range
// [0, Len]; Len itself means "append".
func (l *List[E]) checkPositionIndex(index int) error {
	if index < 0 || index > l.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, l.size)
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
