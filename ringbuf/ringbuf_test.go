package ringbuf_test

import (
	"testing"

	"github.com/katalvlaran/seqs/ringbuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewWithCapacity_Hints verifies the capacity-hint contract:
// non-positive hints fail, hints below MinCapacity are raised silently.
func TestNewWithCapacity_Hints(t *testing.T) {
	_, err := ringbuf.NewWithCapacity[int](0)
	assert.ErrorIs(t, err, ringbuf.ErrBadCapacity, "zero capacity must error")

	_, err = ringbuf.NewWithCapacity[int](-1)
	assert.ErrorIs(t, err, ringbuf.ErrBadCapacity, "negative capacity must error")

	r, err := ringbuf.NewWithCapacity[int](2)
	require.NoError(t, err)
	assert.Equal(t, ringbuf.MinCapacity, r.Cap(), "hint below the floor is raised")
}

// TestGrowth_FullBufferDoubles replays the canonical wraparound
// scenario: capacity 4, AddLast(1,2,3) + AddFirst(0) fills the ring,
// and AddLast(4) doubles capacity while preserving logical order.
func TestGrowth_FullBufferDoubles(t *testing.T) {
	r, err := ringbuf.NewWithCapacity[int](4)
	require.NoError(t, err)

	require.NoError(t, r.AddLast(1))
	require.NoError(t, r.AddLast(2))
	require.NoError(t, r.AddLast(3))
	require.NoError(t, r.AddFirst(0)) // wraps to the last physical slot
	assert.Equal(t, 4, r.Len())
	assert.True(t, r.IsFull())

	require.NoError(t, r.AddLast(4))
	assert.Equal(t, 8, r.Cap(), "adding to a full ring must double capacity")
	assert.Equal(t, []int{0, 1, 2, 3, 4}, r.Elements(), "growth must linearize in logical order")
}

// TestLogicalPhysicalMapping_AcrossResize verifies Get(i) keeps
// returning the logical sequence immediately after growth and shrink,
// with the head far from slot 0 before each resize.
func TestLogicalPhysicalMapping_AcrossResize(t *testing.T) {
	r, err := ringbuf.NewWithCapacity[int](4)
	require.NoError(t, err)

	// Rotate the cursors away from 0 before filling.
	require.NoError(t, r.AddLast(-1))
	require.NoError(t, r.AddLast(-2))
	_, err = r.RemoveFirst()
	require.NoError(t, err)
	_, err = r.RemoveFirst()
	require.NoError(t, err)

	for i := 0; i < 9; i++ { // crosses the 4→8 and 8→16 growth thresholds
		require.NoError(t, r.AddLast(i))
	}
	assert.Equal(t, 16, r.Cap())
	for i := 0; i < 9; i++ {
		v, gerr := r.Get(i)
		require.NoError(t, gerr)
		assert.Equal(t, i, v, "Get(%d) after growth", i)
	}

	for r.Len() > 4 { // drains to 4 == 16/4, triggering the halve
		_, err = r.RemoveFirst()
		require.NoError(t, err)
	}
	assert.Equal(t, 8, r.Cap(), "quarter occupancy must halve capacity")
	assert.Equal(t, []int{5, 6, 7, 8}, r.Elements(), "shrink must preserve logical order")
}

// TestShrink_FloorIsHard verifies capacity never drops below
// MinCapacity no matter how far the buffer drains.
func TestShrink_FloorIsHard(t *testing.T) {
	r, err := ringbuf.NewWithCapacity[int](8)
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		require.NoError(t, r.AddLast(i))
	}

	for !r.IsEmpty() {
		_, err = r.RemoveLast()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r.Cap(), ringbuf.MinCapacity, "capacity floor violated at size %d", r.Len())
	}
	assert.Equal(t, ringbuf.MinCapacity, r.Cap())
}

// TestAddFirst_WrapsBackward verifies head stepping back from slot 0
// wraps to the end of the backing slice.
func TestAddFirst_WrapsBackward(t *testing.T) {
	r, err := ringbuf.NewWithCapacity[string](4)
	require.NoError(t, err)

	require.NoError(t, r.AddFirst("b"))
	require.NoError(t, r.AddFirst("a"))
	assert.Equal(t, []string{"a", "b"}, r.Elements())

	first, err := r.First()
	require.NoError(t, err)
	assert.Equal(t, "a", first)
	last, err := r.Last()
	require.NoError(t, err)
	assert.Equal(t, "b", last)
}

// TestAdd_IndexedInsertShiftsShorterSide verifies mid-ring insertion
// across the wrap boundary, including the Add(Len, v) append case.
func TestAdd_IndexedInsertShiftsShorterSide(t *testing.T) {
	r, err := ringbuf.NewWithCapacity[int](8)
	require.NoError(t, err)

	// Rotate so the live window straddles the physical end.
	for i := 0; i < 6; i++ {
		require.NoError(t, r.AddLast(i))
	}
	for i := 0; i < 5; i++ {
		_, err = r.RemoveFirst()
		require.NoError(t, err)
	}
	for i := 6; i < 10; i++ {
		require.NoError(t, r.AddLast(i))
	}
	require.Equal(t, []int{5, 6, 7, 8, 9}, r.Elements())

	require.NoError(t, r.Add(1, 50)) // near the head: prefix shifts
	assert.Equal(t, []int{5, 50, 6, 7, 8, 9}, r.Elements())

	require.NoError(t, r.Add(5, 85)) // near the tail: suffix shifts
	assert.Equal(t, []int{5, 50, 6, 7, 8, 85, 9}, r.Elements())

	require.NoError(t, r.Add(r.Len(), 99)) // position Len appends
	assert.Equal(t, []int{5, 50, 6, 7, 8, 85, 9, 99}, r.Elements())
}

// TestRemove_IndexedClosesGapBothSides verifies indexed removal picks
// the cheaper side and keeps logical order intact.
func TestRemove_IndexedClosesGapBothSides(t *testing.T) {
	r, err := ringbuf.NewWithCapacity[int](8)
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		require.NoError(t, r.AddLast(i))
	}

	v, err := r.Remove(1) // head side shifts
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{0, 2, 3, 4, 5}, r.Elements())

	v, err = r.Remove(3) // tail side shifts
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	assert.Equal(t, []int{0, 2, 3, 5}, r.Elements())
}

// TestSet_ReturnsPrevious verifies in-place replacement through the
// logical-to-physical mapping.
func TestSet_ReturnsPrevious(t *testing.T) {
	r, err := ringbuf.NewWithCapacity[int](4)
	require.NoError(t, err)
	require.NoError(t, r.AddLast(10))
	require.NoError(t, r.AddLast(20))

	old, err := r.Set(1, 99)
	require.NoError(t, err)
	assert.Equal(t, 20, old)

	v, err := r.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 99, v)
	assert.Equal(t, 2, r.Len(), "Set must not change size")
}

// TestFailureTriplet covers removal on empty, Get(Len), and nil
// rejection, each leaving the buffer unchanged.
func TestFailureTriplet(t *testing.T) {
	r := ringbuf.New[*int]()

	_, err := r.RemoveFirst()
	assert.ErrorIs(t, err, ringbuf.ErrEmpty)
	_, err = r.RemoveLast()
	assert.ErrorIs(t, err, ringbuf.ErrEmpty)
	_, err = r.First()
	assert.ErrorIs(t, err, ringbuf.ErrEmpty)
	_, err = r.Last()
	assert.ErrorIs(t, err, ringbuf.ErrEmpty)

	_, err = r.Get(r.Len())
	assert.ErrorIs(t, err, ringbuf.ErrIndexOutOfRange)

	err = r.AddLast(nil)
	assert.ErrorIs(t, err, ringbuf.ErrNilElement)
	err = r.AddFirst(nil)
	assert.ErrorIs(t, err, ringbuf.ErrNilElement)
	assert.Equal(t, 0, r.Len(), "rejected calls must not mutate")
}

// TestRoundTrip_NetStateUnchanged verifies add/remove pairs at both
// ends cancel out, including cursor positions net of the pair.
func TestRoundTrip_NetStateUnchanged(t *testing.T) {
	r := ringbuf.New[int]()
	require.NoError(t, r.AddLast(1))
	require.NoError(t, r.AddLast(2))
	require.NoError(t, r.AddLast(3))
	sizeBefore, capBefore := r.Len(), r.Cap()

	require.NoError(t, r.AddLast(7))
	v, err := r.RemoveLast()
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	require.NoError(t, r.AddFirst(8))
	v, err = r.RemoveFirst()
	require.NoError(t, err)
	assert.Equal(t, 8, v)

	assert.Equal(t, sizeBefore, r.Len())
	assert.Equal(t, capBefore, r.Cap())
	assert.Equal(t, []int{1, 2, 3}, r.Elements())
}

// TestClear_ResetsCursors verifies Clear releases every element and the
// buffer accepts new values cleanly.
func TestClear_ResetsCursors(t *testing.T) {
	r, err := ringbuf.NewWithCapacity[int](4)
	require.NoError(t, err)
	require.NoError(t, r.AddFirst(1)) // head away from slot 0
	require.NoError(t, r.AddLast(2))

	r.Clear()
	assert.True(t, r.IsEmpty())
	assert.Empty(t, r.Elements())
	assert.Equal(t, 4, r.Cap(), "Clear retains capacity")

	require.NoError(t, r.AddLast(5))
	require.NoError(t, r.AddLast(6))
	assert.Equal(t, []int{5, 6}, r.Elements())
}

// TestSizeInvariant verifies size == adds − removes across a rotating
// workload that wraps the cursors several times.
func TestSizeInvariant(t *testing.T) {
	r, err := ringbuf.NewWithCapacity[int](4)
	require.NoError(t, err)

	adds, removes := 0, 0
	for round := 0; round < 10; round++ {
		for i := 0; i < 3; i++ {
			require.NoError(t, r.AddLast(round*10+i))
			adds++
		}
		for i := 0; i < 2; i++ {
			_, rerr := r.RemoveFirst()
			require.NoError(t, rerr)
			removes++
		}
	}

	assert.Equal(t, adds-removes, r.Len())
	assert.Equal(t, r.Len() == 0, r.IsEmpty())
}
