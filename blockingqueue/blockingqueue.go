package blockingqueue

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/fifoq/fifoq"
)

// PopPolicy selects how a blocking pop behaves once the queue has been
// retired by Close or Join.
type PopPolicy int

const (
	// AbandonOnRetire makes the pop return immediately with ok=false as soon
	// as the queue is retired, even if elements are still buffered. Use this
	// for consumers that should stop at the first shutdown signal.
	AbandonOnRetire PopPolicy = iota

	// DrainToEmpty makes the pop keep returning buffered elements after
	// retirement and report ok=false only once the queue is retired and
	// empty. Consumers must use this policy for Join to make progress.
	DrainToEmpty
)

// Queue is a blocking, concurrency-safe FIFO for producer/consumer
// goroutine pools. Producers Push work items; consumers block in WaitPop or
// Get until an item arrives or the queue is retired.
//
// The queue is unbounded and retires exactly once, through either of two
// shutdown calls: Close rejects further pushes and wakes every waiter
// immediately, abandoning whatever is still buffered; Join rejects further
// pushes and blocks the caller until consumers have drained the buffer.
//
// All methods are safe for concurrent use by multiple goroutines.
type Queue[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond // consumers wait here for elements or retirement
	drained  *sync.Cond // Join waits here for the buffer to reach empty
	buf      *fifoq.Queue[T]
	retired  *atomic.Bool // monotonic, set exactly once by Close or Join
}

// New creates a new open, empty queue.
func New[T any]() *Queue[T] {
	return newQueue(fifoq.New[T]())
}

// NewWithCapacity creates a new queue with preallocated buffer storage.
func NewWithCapacity[T any](capacity int) *Queue[T] {
	return newQueue(fifoq.NewWithCapacity[T](capacity))
}

func newQueue[T any](buf *fifoq.Queue[T]) *Queue[T] {
	q := &Queue[T]{
		buf:     buf,
		retired: atomic.NewBool(false),
	}
	q.notEmpty = sync.NewCond(&q.mu)
	q.drained = sync.NewCond(&q.mu)
	return q
}

// Push appends v to the tail and wakes one waiting consumer.
//
// Returns false without modifying the queue if it has been retired; the
// caller then owns v again and may drop it or route it elsewhere.
func (q *Queue[T]) Push(v T) bool {
	q.mu.Lock()
	if q.retired.Load() {
		q.mu.Unlock()
		return false
	}
	q.buf.Enqueue(v)
	q.mu.Unlock()
	q.notEmpty.Signal()
	return true
}

// PushMany appends items in argument order and returns the count accepted:
// len(items) when the queue is open, 0 when it has been retired. Wakes all
// waiting consumers when anything was added.
func (q *Queue[T]) PushMany(items ...T) int {
	q.mu.Lock()
	if q.retired.Load() {
		q.mu.Unlock()
		return 0
	}
	q.buf.EnqueueMany(items...)
	q.mu.Unlock()
	if len(items) > 0 {
		q.notEmpty.Broadcast()
	}
	return len(items)
}

// Pop blocks until an element is available or retirement makes further
// waiting pointless under the given policy, whichever comes first.
//
// ok=false means no element will ever be delivered to this call again: the
// queue is retired (AbandonOnRetire), or retired and empty (DrainToEmpty).
// This is the canonical consumer-loop termination condition. Waits re-check
// their predicate in a loop, so callers never observe a spurious wakeup.
func (q *Queue[T]) Pop(policy PopPolicy) (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.buf.IsEmpty() && !q.retired.Load() {
		q.notEmpty.Wait()
	}
	if q.exhausted(policy) {
		var zero T
		return zero, false
	}
	v, _ = q.buf.Dequeue()
	if q.buf.IsEmpty() {
		q.drained.Broadcast()
	}
	return v, true
}

// WaitPop blocks until an element is available or the queue is retired.
// Equivalent to Pop(AbandonOnRetire): once retired it returns ok=false even
// while elements remain buffered.
func (q *Queue[T]) WaitPop() (T, bool) {
	return q.Pop(AbandonOnRetire)
}

// Get blocks until an element is available, and returns ok=false only once
// the queue is retired and empty. Equivalent to Pop(DrainToEmpty): after
// retirement it keeps handing out buffered elements, which is what lets a
// concurrent Join observe the queue reaching empty.
func (q *Queue[T]) Get() (T, bool) {
	return q.Pop(DrainToEmpty)
}

// TryPop removes and returns the head element without blocking.
// ok is false when the queue is empty or has been retired.
func (q *Queue[T]) TryPop() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.retired.Load() {
		var zero T
		return zero, false
	}
	return q.buf.Dequeue()
}

// Len returns the number of buffered elements. The value may be stale the
// moment it is returned when producers or consumers run concurrently.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.Len()
}

// IsEmpty reports whether the buffer is empty. Same staleness caveat as Len.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Retired reports whether the queue has been retired by Close or Join.
// The flag is monotonic, so a true result never reverts.
func (q *Queue[T]) Retired() bool {
	return q.retired.Load()
}

// Complete reports whether the queue is retired and empty at the instant of
// the check, i.e. fully drained and closed.
func (q *Queue[T]) Complete() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.retired.Load() && q.buf.IsEmpty()
}

// Close retires the queue and wakes every waiter without waiting for the
// buffer to empty. Blocked pops return ok=false; buffered elements are
// abandoned to any consumer that does not drain. Idempotent.
//
// The scope that owns the queue must call Close (or Join) before releasing
// it, so no goroutine is left blocked on an unreachable queue.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	q.retired.Store(true)
	q.mu.Unlock()
	q.notEmpty.Broadcast()
	q.drained.Broadcast()
}

// Join retires the queue and blocks until every buffered element has been
// removed by a consumer, then returns with Complete() holding.
//
// Only DrainToEmpty pops remove elements after retirement, so at least one
// consumer must be calling Get (or Pop(DrainToEmpty)) for Join to return on
// a non-empty queue. AbandonOnRetire consumers wake and exit instead.
func (q *Queue[T]) Join() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.retired.Store(true)
	q.notEmpty.Broadcast()
	for !q.buf.IsEmpty() {
		q.drained.Wait()
	}
}

// exhausted reports whether a pop must give up under policy. Caller holds q.mu.
func (q *Queue[T]) exhausted(policy PopPolicy) bool {
	if !q.retired.Load() {
		return false
	}
	return policy == AbandonOnRetire || q.buf.IsEmpty()
}
