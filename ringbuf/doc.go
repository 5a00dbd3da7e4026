// Package ringbuf implements a generic circular buffer: a fixed-length
// backing slice addressed by modulo arithmetic between a head and a
// tail cursor, with doubling growth and halving shrink.
//
// 🚀 What is ringbuf?
//
//	An ordered sequence laid out in a ring. head is inclusive (the
//	first live element), tail is exclusive (one past the last), and
//	logical index i maps to physical slot (head+i) mod capacity. Both
//	ends move in O(1) with no per-element node allocation.
//
// ✨ Key properties:
//   - AddFirst/AddLast/RemoveFirst/RemoveLast/Get/Set: O(1) amortized
//   - Add(i)/Remove(i): O(min(i, n−i)) — the shorter side shifts
//   - Growth: ×2 when full, linearizing elements into slots [0, n)
//   - Shrink: to max(capacity/2, MinCapacity) at quarter occupancy
//   - MinCapacity (4) is a hard floor; capacity never drops below it
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqs/ringbuf"
//
//	r, err := ringbuf.NewWithCapacity[int](4)
//	if err != nil {
//	  // ErrBadCapacity on a non-positive hint
//	}
//	_ = r.AddLast(1)
//	_ = r.AddFirst(0) // wraps: physical slot capacity−1
//	v, _ := r.Get(0)  // v == 0
//
// Quick ASCII sketch, capacity 8, after AddFirst(a) + AddLast(b, c):
//
//	[ b c _ _ _ _ _ a ]
//	      ↑         ↑
//	    tail      head     logical order: a b c
//
// Index contract:
//
//	Get/Set/Remove address an existing element: index ∈ [0, Len).
//	Add addresses an insertion point: index ∈ [0, Len]; Add(Len, v)
//	is AddLast(v). Violations return ErrIndexOutOfRange.
//
// Not safe for concurrent use; callers must synchronize externally.
package ringbuf
