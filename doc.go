// Package seqs is a family of generic sequential containers — ordered
// element sequences with head/tail-biased operations, index-based random
// access, and controlled growth and shrink.
//
// 🚀 What is seqs?
//
//	Four peer implementations of one conceptual contract
//	(AddFirst/AddLast/Add, RemoveFirst/RemoveLast/Remove, Get/Set,
//	Len/IsEmpty/Clear), each with its own representation and its own
//	complexity profile:
//		• arraylist/  — contiguous backing slice, amortized-doubling growth
//		• singlylist/ — forward-only node chain, dummy head + cached tail
//		• doublylist/ — node chain between head and tail sentinels
//		• ringbuf/    — fixed slice addressed by modular head/tail cursors
//
// ✨ Why choose seqs?
//
//   - Predictable costs — every operation documents its complexity
//   - Honest structures — the singly linked list keeps its O(n) RemoveLast;
//     no hidden back-pointers pretending to be a doubly linked list
//   - Sentinel errors — ErrEmpty, ErrIndexOutOfRange, ErrNilElement,
//     ErrBadCapacity, all errors.Is-matchable
//   - Pure Go — no cgo, no hidden deps
//
// The four packages are leaves: none depends on another, and none
// provides internal synchronization. Guard instances yourself when
// sharing them across goroutines.
//
// Quick ASCII sketch of the ring buffer, capacity 8, three elements:
//
//	[ _ _ a b c _ _ _ ]
//	      ↑     ↑
//	    head   tail       Get(i) reads slot (head+i) mod capacity
//
// Dive into each package's doc.go for the full contract, complexity
// table, and usage examples.
//
//	go get github.com/katalvlaran/seqs
package seqs
