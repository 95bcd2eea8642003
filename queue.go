package fifoq

import (
	"sync"
)

// Queue is a generic, concurrency-safe FIFO queue backed by a growable ring
// buffer. It never blocks: Dequeue and Peek report emptiness through their
// second result. The zero value is ready for use; NewWithCapacity avoids
// early growth when the expected size is known.
type Queue[T any] struct {
	mu    sync.Mutex
	items []T // circular storage; len(items) is the current capacity
	front int // index of the head element, meaningful only when size > 0
	size  int
}

// New creates a new empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// NewWithCapacity creates a new queue with preallocated storage for at least
// capacity elements. Behavior is otherwise identical to New.
func NewWithCapacity[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{items: make([]T, capacity)}
}

// Enqueue appends v to the tail. Amortized complexity: O(1).
func (q *Queue[T]) Enqueue(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.push(v)
}

// EnqueueMany appends items to the tail in argument order.
// Amortized complexity: O(k) for k items.
func (q *Queue[T]) EnqueueMany(items ...T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, v := range items {
		q.push(v)
	}
}

// Dequeue removes and returns the head value.
//
// The second result is false when the queue is empty. Amortized complexity: O(1).
func (q *Queue[T]) Dequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var zero T
	if q.size == 0 {
		return zero, false
	}
	v := q.items[q.front]
	q.items[q.front] = zero // release the slot's reference for GC
	q.front = (q.front + 1) % len(q.items)
	q.size--
	return v, true
}

// Peek returns the head value without removing it.
// The second result is false when the queue is empty. Complexity: O(1).
func (q *Queue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var zero T
	if q.size == 0 {
		return zero, false
	}
	return q.items[q.front], true
}

// Len returns the number of elements currently queued.
// Complexity: O(1). Safe for concurrent use.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// IsEmpty reports whether the queue is empty.
// Complexity: O(1). Equivalent to Len() == 0.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Clear removes all elements from the queue. Capacity is retained.
// Complexity: O(n) to release element references.
func (q *Queue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	var zero T
	for i := 0; i < q.size; i++ {
		q.items[(q.front+i)%len(q.items)] = zero
	}
	q.front = 0
	q.size = 0
}

// ToSlice returns a copy of the queue's contents in FIFO order.
// Complexity: O(n). The returned slice is independent of the queue.
func (q *Queue[T]) ToSlice() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]T, q.size)
	for i := 0; i < q.size; i++ {
		out[i] = q.items[(q.front+i)%len(q.items)]
	}
	return out
}

// push appends v, growing the ring when full. Caller holds q.mu.
func (q *Queue[T]) push(v T) {
	if q.size == len(q.items) {
		q.grow()
	}
	q.items[(q.front+q.size)%len(q.items)] = v
	q.size++
}

// grow doubles capacity and unwinds the ring so front starts at index 0.
// Caller holds q.mu.
func (q *Queue[T]) grow() {
	capacity := 2 * len(q.items)
	if capacity == 0 {
		capacity = 8
	}
	next := make([]T, capacity)
	for i := 0; i < q.size; i++ {
		next[i] = q.items[(q.front+i)%len(q.items)]
	}
	q.items = next
	q.front = 0
}
