// Package doublylist implements a generic doubly linked list: a node
// chain bounded by dummy head and tail sentinels with bidirectional
// links.
//
// 🚀 What is doublylist?
//
//	An ordered sequence of nodes where each node knows both neighbors.
//	Two permanent sentinels close the chain into a non-wrapping loop,
//	so insertion and removal at either boundary relink a fixed number
//	of pointers with no special cases.
//
// ✨ Key properties:
//   - AddFirst/AddLast/RemoveFirst/RemoveLast/First/Last: O(1)
//   - Get/Set/Add(i)/Remove(i): O(min(i, n−i)) — traversal starts from
//     the nearer sentinel, pivoting on i < n/2
//   - Removal of a located node relinks its two neighbors directly
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqs/doublylist"
//
//	l := doublylist.New[int]()
//	_ = l.AddLast(1)
//	_ = l.AddLast(2)
//	_ = l.AddFirst(0)       // [0 1 2]
//	v, _ := l.RemoveLast()  // v == 2, O(1) — no traversal
//
// Index contract:
//
//	Get/Set/Remove address an existing element: index ∈ [0, Len).
//	Add addresses an insertion point: index ∈ [0, Len]; Add(Len, v)
//	links before the tail sentinel, i.e. appends.
//
// Not safe for concurrent use; callers must synchronize externally.
package doublylist
