package doublylist_test

import (
	"testing"

	"github.com/katalvlaran/seqs/doublylist"
)

// benchmarkAppend appends n elements to a fresh list per iteration.
// It resets the timer before entering the loop.
func benchmarkAppend(b *testing.B, n int) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		l := doublylist.New[int]()
		for j := 0; j < n; j++ {
			if err := l.AddLast(j); err != nil {
				b.Fatalf("AddLast failed: %v", err)
			}
		}
	}
}

// BenchmarkAddLast_Small appends 100 elements per iteration.
func BenchmarkAddLast_Small(b *testing.B) {
	benchmarkAppend(b, 100)
}

// BenchmarkAddLast_Large appends 100k elements per iteration.
func BenchmarkAddLast_Large(b *testing.B) {
	benchmarkAppend(b, 100_000)
}

// BenchmarkRemoveLast benchmarks O(1) tail removal; contrast with the
// singlylist benchmark of the same name.
func BenchmarkRemoveLast(b *testing.B) {
	const n = 1_000
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		l := doublylist.New[int]()
		for j := 0; j < n; j++ {
			if err := l.AddLast(j); err != nil {
				b.Fatalf("AddLast failed: %v", err)
			}
		}
		b.StartTimer()
		for j := 0; j < n; j++ {
			if _, err := l.RemoveLast(); err != nil {
				b.Fatalf("RemoveLast failed: %v", err)
			}
		}
	}
}

// BenchmarkGet_BackHalf benchmarks an index in the back half, reached
// backward from the tail sentinel.
func BenchmarkGet_BackHalf(b *testing.B) {
	const n = 10_000
	l := doublylist.New[int]()
	for j := 0; j < n; j++ {
		if err := l.AddLast(j); err != nil {
			b.Fatalf("AddLast failed: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := l.Get(n - 2); err != nil {
			b.Fatalf("Get failed: %v", err)
		}
	}
}
