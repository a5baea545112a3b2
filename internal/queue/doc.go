// Package queue provides an unbounded, thread-safe FIFO work queue.
//
// The queue follows the classic monitor discipline: a mutex guards the
// backing list and a condition variable parks consumers while the queue
// is empty. Push never blocks and wakes at most one waiting consumer;
// Pop blocks the calling goroutine until an item is available.
//
// There is no close or cancellation mechanism on the queue itself.
// Producers that need to release consumers inject sentinel items (see
// the pipeline package's shutdown tasks).
//
// Example Usage:
//
//	q := queue.New[int]()
//	go func() { q.Push(42) }()
//	v := q.Pop() // blocks until the push above lands
package queue
