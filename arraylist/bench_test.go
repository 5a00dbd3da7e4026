package arraylist_test

import (
	"testing"

	"github.com/katalvlaran/seqs/arraylist"
)

// benchmarkAddLast appends n elements to a fresh list per iteration.
// It resets the timer before entering the loop.
func benchmarkAddLast(b *testing.B, n int) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		l := arraylist.New[int]()
		for j := 0; j < n; j++ {
			if err := l.AddLast(j); err != nil {
				b.Fatalf("AddLast failed: %v", err)
			}
		}
	}
}

// BenchmarkAddLast_Small appends 100 elements per iteration.
func BenchmarkAddLast_Small(b *testing.B) {
	benchmarkAddLast(b, 100)
}

// BenchmarkAddLast_Large appends 100k elements per iteration, crossing
// many doubling thresholds.
func BenchmarkAddLast_Large(b *testing.B) {
	benchmarkAddLast(b, 100_000)
}

// BenchmarkAddFirst benchmarks head insertion, which shifts the whole
// prefix on every call.
func BenchmarkAddFirst(b *testing.B) {
	const n = 1_000
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := arraylist.New[int]()
		for j := 0; j < n; j++ {
			if err := l.AddFirst(j); err != nil {
				b.Fatalf("AddFirst failed: %v", err)
			}
		}
	}
}

// BenchmarkGet benchmarks random access on a populated list.
func BenchmarkGet(b *testing.B) {
	const n = 10_000
	l := arraylist.New[int]()
	for j := 0; j < n; j++ {
		if err := l.AddLast(j); err != nil {
			b.Fatalf("AddLast failed: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := l.Get(i % n); err != nil {
			b.Fatalf("Get failed: %v", err)
		}
	}
}
