package queue

import "sync"

// Queue is an unbounded multi-producer/multi-consumer FIFO queue.
//
// Thread-safety: all methods are safe for concurrent use.
type Queue[T any] struct {
	mu    sync.Mutex
	cond  *sync.Cond
	items []T
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	q := &Queue[T]{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends item to the tail of the queue and wakes at most one
// goroutine blocked in Pop. It never blocks.
func (q *Queue[T]) Push(item T) {
	q.mu.Lock()
	q.items = append(q.items, item)
	q.mu.Unlock()
	q.cond.Signal()
}

// Pop removes and returns the head of the queue, blocking until an
// item is available. Which of several blocked callers wakes for a
// given push is unspecified.
func (q *Queue[T]) Pop() T {
	q.mu.Lock()
	defer q.mu.Unlock()

	// Re-check after every wake: a signal may race with a third
	// goroutine that drains the item first.
	for len(q.items) == 0 {
		q.cond.Wait()
	}

	item := q.items[0]
	q.items = q.items[1:]
	return item
}

// Len reports the number of queued items at the instant of the call.
// It is advisory only; the value may be stale by the time it is read.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
