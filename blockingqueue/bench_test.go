package blockingqueue

import (
	"testing"
	"time"
)

// Benchmark pairs of Push/Get with a single consumer.
func BenchmarkPushGet(b *testing.B) {
	q := New[int]()
	done := make(chan struct{})
	// Consumer
	go func() {
		for i := 0; i < b.N; i++ {
			_, _ = q.Get()
		}
		close(done)
	}()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Push(i)
	}
	<-done
}

// Benchmark TryPop in a polling-like scenario.
func BenchmarkTryPop(b *testing.B) {
	q := New[int]()
	// Pre-fill
	for i := 0; i < b.N; i++ {
		q.Push(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	taken := 0
	for taken < b.N {
		if _, ok := q.TryPop(); ok {
			taken++
		} else {
			time.Sleep(time.Microsecond)
		}
	}
}

// Benchmark the full lifecycle: fill, then Join while a consumer drains.
func BenchmarkJoinDrain(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q := New[int]()
		for j := 0; j < 64; j++ {
			q.Push(j)
		}
		go func() {
			for {
				if _, ok := q.Get(); !ok {
					return
				}
			}
		}()
		q.Join()
	}
}
