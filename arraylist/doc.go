// Package arraylist implements a generic dynamic array: a contiguous
// backing slice with index-addressed access and amortized-doubling
// growth and shrink.
//
// 🚀 What is arraylist?
//
//	An ordered sequence backed by one slice. Reads and writes by index
//	are direct slot accesses; insertion or removal in the middle shifts
//	the suffix; capacity doubles when an insertion would overflow and
//	halves when occupancy drops to a quarter.
//
// ✨ Key properties:
//   - Get/Set: O(1)
//   - AddLast: amortized O(1); Add(i, v): O(n−i) suffix shift
//   - RemoveFirst/Remove(0): O(n) prefix shift
//   - Growth: reallocate to max(2×capacity, required) on overflow
//   - Shrink: halve capacity when size == capacity/4 and size > 0
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqs/arraylist"
//
//	l, err := arraylist.NewWithCapacity[int](3)
//	if err != nil {
//	  // ErrBadCapacity on a non-positive hint
//	}
//	_ = l.AddLast(1)
//	_ = l.AddLast(2)
//	v, _ := l.Get(0) // v == 1
//
// Index contract:
//
//	Get/Set/Remove address an existing element: index ∈ [0, Len).
//	Add addresses an insertion point: index ∈ [0, Len]; Add(Len, v)
//	is AddLast(v). Violations return ErrIndexOutOfRange, never clamp.
//
// Not safe for concurrent use; callers must synchronize externally.
package arraylist
