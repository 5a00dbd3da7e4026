package doublylist

import (
	"fmt"
	"reflect"
	"strings"
)

// node is one link of the chain. next owns the successor; prev is a
// non-owning back-reference used only for traversal.
type node[E any] struct {
	val  E
	next *node[E]
	prev *node[E]
}

// List is a generic doubly linked list. The zero value is not usable;
// build instances with New.
//
// List provides no internal synchronization. Concurrent mutation from
// multiple goroutines without external locking is undefined behavior.
type List[E any] struct {
	// head and tail are the dummy sentinels bounding the chain. They
	// carry no elements, are allocated once at construction, and are
	// never removed. Empty list: head.next == tail, tail.prev == head.
	head *node[E]
	tail *node[E]
	size int
}

// New returns an empty List with its two sentinels linked.
// Complexity: O(1).
func New[E any]() *List[E] {
	h := &node[E]{}
	t := &node[E]{}
	h.next = t
	t.prev = h

	return &List[E]{head: h, tail: t}
}

// AddFirst inserts v directly after the head sentinel.
// Returns ErrNilElement if v is nil.
// Complexity: O(1).
func (l *List[E]) AddFirst(v E) error {
	if isNilElement(v) {
		return ErrNilElement
	}
	l.linkBefore(v, l.head.next)

	return nil
}

// AddLast inserts v directly before the tail sentinel.
// Returns ErrNilElement if v is nil.
// Complexity: O(1).
func (l *List[E]) AddLast(v E) error {
	if isNilElement(v) {
		return ErrNilElement
	}
	l.linkBefore(v, l.tail)

	return nil
}

// Add inserts v at position index. index is a position index: valid
// range is [0, Len]; Add(Len, v) links before the tail sentinel, which
// is exactly AddLast. Returns ErrIndexOutOfRange or ErrNilElement.
// Complexity: O(min(index, n−index)).
func (l *List[E]) Add(index int, v E) error {
	if err := l.checkPositionIndex(index); err != nil {
		return err
	}
	if isNilElement(v) {
		return ErrNilElement
	}
	if index == l.size {
		l.linkBefore(v, l.tail)
	} else {
		l.linkBefore(v, l.nodeAt(index))
	}

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

	return l.unlink(l.head.next), nil
}

// RemoveLast removes and returns the element before the tail sentinel.
// Returns ErrEmpty on an empty list.
// Complexity: O(1).
func (l *List[E]) RemoveLast() (E, error) {
	var zero E
	if l.size == 0 {
		return zero, ErrEmpty
	}

	return l.unlink(l.tail.prev), nil
}

// Remove removes and returns the element at index. index is an element
// index: valid range is [0, Len). Once located, the node's neighbors
// are relinked directly, no further traversal.
// Returns ErrIndexOutOfRange on violation.
// Complexity: O(min(index, n−index)).
func (l *List[E]) Remove(index int) (E, error) {
	var zero E
	if err := l.checkElementIndex(index); err != nil {
		return zero, err
	}

	return l.unlink(l.nodeAt(index)), nil
}

// Get returns the element at index. index ∈ [0, Len).
// Complexity: O(min(index, n−index)).
func (l *List[E]) Get(index int) (E, error) {
	var zero E
	if err := l.checkElementIndex(index); err != nil {
		return zero, err
	}

	return l.nodeAt(index).val, nil
}

// Set replaces the element at index with v and returns the previous
// value. index ∈ [0, Len). Returns ErrNilElement or ErrIndexOutOfRange.
// Complexity: O(min(index, n−index)).
func (l *List[E]) Set(index int, v E) (E, error) {
	var zero E
	if err := l.checkElementIndex(index); err != nil {
		return zero, err
	}
	if isNilElement(v) {
		return zero, ErrNilElement
	}

	n := l.nodeAt(index)
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

// Last returns the element before the tail sentinel without removing it.
// Returns ErrEmpty on an empty list.
// Complexity: O(1).
func (l *List[E]) Last() (E, error) {
	var zero E
	if l.size == 0 {
		return zero, ErrEmpty
	}

	return l.tail.prev.val, nil
}

// Len returns the number of elements.
// Complexity: O(1).
func (l *List[E]) Len() int { return l.size }

// IsEmpty reports whether the list holds no elements.
// Complexity: O(1).
func (l *List[E]) IsEmpty() bool { return l.size == 0 }

// Clear removes every element, unlinking each node and releasing its
// element reference, then relinks the two sentinels.
// Complexity: O(n).
func (l *List[E]) Clear() {
	var zero E
	x := l.head.next
	for x != l.tail {
		next := x.next
		x.val = zero
		x.next = nil
		x.prev = nil
		x = next
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	l.size = 0
}

// Elements returns a fresh slice holding the elements in order. The
// result shares no memory with the chain.
// Complexity: O(n).
func (l *List[E]) Elements() []E {
	out := make([]E, 0, l.size)
	for x := l.head.next; x != l.tail; x = x.next {
		out = append(out, x.val)
	}

	return out
}

// String renders size and chain for diagnostics.
func (l *List[E]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "doublylist(size=%d) head", l.size)
	for x := l.head.next; x != l.tail; x = x.next {
		fmt.Fprintf(&sb, " <-> %v", x.val)
	}
	sb.WriteString(" <-> tail")

	return sb.String()
}

// linkBefore inserts a new node carrying v directly before succ,
// relinking four pointers in constant time.
func (l *List[E]) linkBefore(v E, succ *node[E]) {
	pred := succ.prev
	n := &node[E]{val: v, next: succ, prev: pred}
	pred.next = n
	succ.prev = n
	l.size++
}

// unlink removes x from the chain, relinks its neighbors, releases its
// references, and returns its element.
func (l *List[E]) unlink(x *node[E]) E {
	v := x.val

	prev, next := x.prev, x.next
	prev.next = next
	next.prev = prev

	var zero E
	x.val = zero
	x.next = nil
	x.prev = nil
	l.size--

	return v
}

// nodeAt returns the node at element index, walking forward from the
// head when index < size/2 and backward from the tail otherwise. Index
// validation is the caller's responsibility.
func (l *List[E]) nodeAt(index int) *node[E] {
	if index < l.size>>1 {
		x := l.head.next
		for i := 0; i < index; i++ {
			x = x.next
		}

		return x
	}

	x := l.tail.prev
	for i := l.size - 1; i > index; i-- {
		x = x.prev
	}

	return x
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
