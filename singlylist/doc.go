// Package singlylist implements a generic singly linked list: a
// forward-only node chain behind a dummy head sentinel, with a cached
// tail reference for O(1) appends.
//
// 🚀 What is singlylist?
//
//	An ordered sequence of nodes where each node knows only its
//	successor. A permanent head sentinel removes empty-list special
//	cases; a cached (non-owning) tail pointer makes AddLast constant
//	time. The cache must track every mutation at either end and falls
//	back to the sentinel when the list drains.
//
// ✨ Key properties:
//   - AddFirst/AddLast/RemoveFirst: O(1)
//   - RemoveLast: O(n) — finding the node before the tail requires a
//     walk from the head. This asymmetry is the structure, not a bug;
//     a back-pointer would turn it into doublylist.
//   - Get/Set/Add(i)/Remove(i): O(i) predecessor walk from the head
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqs/singlylist"
//
//	l := singlylist.New[int]()
//	_ = l.AddFirst(2)
//	_ = l.AddFirst(1) // [1 2]
//	_ = l.AddLast(3)  // [1 2 3]
//	v, _ := l.RemoveFirst() // v == 1
//
// Index contract:
//
//	Get/Set/Remove address an existing element: index ∈ [0, Len).
//	Add addresses an insertion point: index ∈ [0, Len]; Add(Len, v)
//	is AddLast(v). Violations return ErrIndexOutOfRange.
//
// Not safe for concurrent use; callers must synchronize externally.
package singlylist
