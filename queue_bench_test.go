package fifoq

import (
	"testing"
)

func BenchmarkEnqueue(b *testing.B) {
	q := New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
	}
}

func BenchmarkEnqueueDequeue(b *testing.B) {
	q := New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
		if i%2 == 1 { // keep size bounded
			q.Dequeue()
		}
	}
}

// Steady-state cycling at fixed size exercises ring reuse without growth.
func BenchmarkSteadyStateRing(b *testing.B) {
	q := NewWithCapacity[int](1024)
	for i := 0; i < 1024; i++ {
		q.Enqueue(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Dequeue()
		q.Enqueue(i)
	}
}
