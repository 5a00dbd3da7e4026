package singlylist

import (
	"fmt"
	"reflect"
	"strings"
)

// node is one link of the chain: an element plus ownership of its
// successor.
type node[E any] struct {
	val  E
	next *node[E]
}

// List is a generic singly linked list. The zero value is not usable;
// build instances with New.
//
// List provides no internal synchronization. Concurrent mutation from
// multiple goroutines without external locking is undefined behavior.
type List[E any] struct {
	// head is the dummy sentinel. It carries no element, is allocated
	// once at construction, and is never removed.
	head *node[E]
	// tail is a non-owning cache of the last node. It equals head when
	// the list is empty and must be kept consistent with every mutation
	// at either end.
	tail *node[E]
	size int
}

// New returns an empty List.
// Complexity: O(1).
func New[E any]() *List[E] {
	sentinel := &node[E]{}

	return &List[E]{head: sentinel, tail: sentinel}
}

// AddFirst inserts v directly after the head sentinel.
// Returns ErrNilElement if v is nil.
// Complexity: O(1).
func (l *List[E]) AddFirst(v E) error {
	if isNilElement(v) {
		return ErrNilElement
	}
	n := &node[E]{val: v, next: l.head.next}
	l.head.next = n

	// First element: the tail cache must leave the sentinel.
	if l.size == 0 {
		l.tail = n
	}
	l.size++

	return nil
}

// AddLast appends v after the cached tail.
// Returns ErrNilElement if v is nil.
// Complexity: O(1).
func (l *List[E]) AddLast(v E) error {
	if isNilElement(v) {
		return ErrNilElement
	}
	n := &node[E]{val: v}
	l.tail.next = n
	l.tail = n
	l.size++

	return nil
}

// Add inserts v at position index. index is a position index: valid
// range is [0, Len]; Add(Len, v) appends via the cached tail. Locating
// the predecessor walks the chain from the head.
// Returns ErrIndexOutOfRange or ErrNilElement.
// Complexity: O(index).
func (l *List[E]) Add(index int, v E) error {
	if err := l.checkPositionIndex(index); err != nil {
		return err
	}
	if isNilElement(v) {
		return ErrNilElement
	}
	if index == l.size {
		return l.AddLast(v)
	}

	pred := l.predecessor(index)
	n := &node[E]{val: v, next: pred.next}
	pred.next = n
	l.size++

	return nil
}

// RemoveFirst removes and returns the element after the head sentinel.
// Returns ErrEmpty on an empty list.
// Complexity: O(1).
func (l *List[E]) RemoveFirst() (E, error) {
	var zero E
	if l.size == 0 {
		return zero, ErrEmpty
	}

	first := l.head.next
	l.head.next = first.next

	// Last element removed: the tail cache falls back to the sentinel.
	if l.size == 1 {
		l.tail = l.head
	}

	v := first.val
	first.next = nil
	first.val = zero
	l.size--

	return v, nil
}

// RemoveLast removes and returns the last element. The chain is
// forward-only, so the node before the tail is found by walking from
// the head — this cost is structural, not incidental.
// Returns ErrEmpty on an empty list.
// Complexity: O(n).
func (l *List[E]) RemoveLast() (E, error) {
	var zero E
	if l.size == 0 {
		return zero, ErrEmpty
	}

	prev := l.head
	for prev.next != l.tail {
		prev = prev.next
	}

	v := l.tail.val
	l.tail.val = zero
	prev.next = nil
	l.tail = prev
	l.size--

	return v, nil
}

// Remove removes and returns the element at index. index is an element
// index: valid range is [0, Len).
// Returns ErrIndexOutOfRange on violation.
// Complexity: O(index).
func (l *List[E]) Remove(index int) (E, error) {
	var zero E
	if err := l.checkElementIndex(index); err != nil {
		return zero, err
	}

	pred := l.predecessor(index)
	target := pred.next
	pred.next = target.next

	// Removing the last node retargets the tail cache to its
	// predecessor.
	if index == l.size-1 {
		l.tail = pred
	}

	v := target.val
	target.next = nil
	target.val = zero
	l.size--

	return v, nil
}

// Get returns the element at index. index ∈ [0, Len).
// Complexity: O(index).
func (l *List[E]) Get(index int) (E, error) {
	var zero E
	if err := l.checkElementIndex(index); err != nil {
		return zero, err
	}

	return l.predecessor(index).next.val, nil
}

// Set replaces the element at index with v and returns the previous
// value. index ∈ [0, Len). Returns ErrNilElement or ErrIndexOutOfRange.
// Complexity: O(index).
func (l *List[E]) Set(index int, v E) (E, error) {
	var zero E
	if err := l.checkElementIndex(index); err != nil {
		return zero, err
	}
	if isNilElement(v) {
		return zero, ErrNilElement
	}

	n := l.predecessor(index).next
	old := n.val
	n.val = v

	return old, nil
}

// First returns the element after the head sentinel without removing it.
// Returns ErrEmpty on an empty list.
// Complexity: O(1).
func (l *List[E]) First() (E, error) {
	var zero E
	if l.size == 0 {
		return zero, ErrEmpty
	}

	return l.head.next.val, nil
}

// Last returns the cached tail's element without removing it.
// Returns ErrEmpty on an empty list.
// Complexity: O(1).
func (l *List[E]) Last() (E, error) {
	var zero E
	if l.size == 0 {
		return zero, ErrEmpty
	}

	return l.tail.val, nil
}

// Len returns the number of elements.
// Complexity: O(1).
func (l *List[E]) Len() int { return l.size }

// IsEmpty reports whether the list holds no elements.
// Complexity: O(1).
func (l *List[E]) IsEmpty() bool { return l.size == 0 }

// Clear removes every element, unlinking each node and releasing its
// element reference, then resets the tail cache to the sentinel.
// Complexity: O(n).
func (l *List[E]) Clear() {
	var zero E
	x := l.head.next
	for x != nil {
		next := x.next
		x.val = zero
		x.next = nil
		x = next
	}
	l.head.next = nil
	l.tail = l.head
	l.size = 0
}

// Elements returns a fresh slice holding the elements in order. The
// result shares no memory with the chain.
// Complexity: O(n).
func (l *List[E]) Elements() []E {
	out := make([]E, 0, l.size)
	for x := l.head.next; x != nil; x = x.next {
		out = append(out, x.val)
	}

	return out
}

// String renders size and chain for diagnostics.
func (l *List[E]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "singlylist(size=%d) head", l.size)
	for x := l.head.next; x != nil; x = x.next {
		fmt.Fprintf(&sb, " -> %v", x.val)
	}
	sb.WriteString(" -> nil")

	return sb.String()
}

// predecessor returns the node before position index, the sentinel for
// index 0. Index validation is the caller's responsibility.
func (l *List[E]) predecessor(index int) *node[E] {
	pred := l.head
	for i := 0; i < index; i++ {
		pred = pred.next
	}

	return pred
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
