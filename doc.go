// Package fifoq provides a generic, concurrency-safe FIFO queue.
//
// The queue is unbounded and non-blocking: Dequeue reports emptiness instead
// of waiting. All exported methods use internal locking and may be called
// from multiple goroutines. Storage is a growable ring buffer, so sustained
// enqueue/dequeue cycles reuse slots instead of shifting elements.
//
// For blocking consumer semantics and a producer shutdown protocol, see the
// blockingqueue subpackage, which layers on top of this type.
package fifoq
