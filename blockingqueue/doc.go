// Package blockingqueue provides a blocking FIFO queue with a two-phase
// shutdown protocol, built on fifoq.
//
// The queue is a monitor: one mutex and two condition variables guard the
// buffer and a monotonic retired flag, and none of them is ever exposed.
// Producers call Push, which wakes exactly one waiting consumer. Consumers
// block in WaitPop or Get; both are the same pop operation under different
// PopPolicy values, differing only in what they do once the queue is
// retired.
//
// Shutdown comes in two flavors:
//
//   - Close retires the queue and wakes everything immediately. Buffered
//     elements are abandoned unless a consumer explicitly drains them.
//   - Join retires the queue and blocks until consumers calling Get have
//     removed every buffered element.
//
// Design notes:
//
//   - Waits loop on their predicate, so spurious wakeups never leak to
//     callers.
//   - Join observes drain progress through a dedicated condition that pops
//     broadcast when a removal empties the buffer, rather than through the
//     consumer wakeup path.
//   - There is no timeout or cancellation parameter on the blocking calls;
//     the only ways to unblock a waiter are a Push or a shutdown call. The
//     owning scope must therefore guarantee an eventual Close or Join, and
//     must outlive its consumer goroutines.
//
// A typical consumer is a long-lived worker goroutine:
//
//	go func() {
//		for {
//			job, ok := q.Get()
//			if !ok {
//				return // retired and drained
//			}
//			handle(job)
//		}
//	}()
package blockingqueue
