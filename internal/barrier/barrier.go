package barrier

import (
	"fmt"
	"sync"
)

// Barrier tracks completion of a fixed number of indexed work units.
//
// Thread-safety: all methods are safe for concurrent use; any number
// of goroutines may mark units or wait.
type Barrier struct {
	mu   sync.Mutex
	cond *sync.Cond
	done []bool
}

// New creates a barrier expecting total units, indexed [0, total).
func New(total int) *Barrier {
	if total < 0 {
		panic(fmt.Sprintf("barrier: negative unit count %d", total))
	}
	b := &Barrier{done: make([]bool, total)}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// MarkDone records unit index as complete and wakes all waiters so
// they can re-evaluate the all-done predicate. Each index is expected
// to be marked exactly once; the caller owns that invariant.
func (b *Barrier) MarkDone(index int) {
	b.mu.Lock()
	b.done[index] = true
	b.mu.Unlock()
	b.cond.Broadcast()
}

// WaitAll blocks until every unit has been marked done. It returns
// immediately if the barrier is already satisfied. Safe for multiple
// concurrent waiters.
func (b *Barrier) WaitAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for !b.allDoneLocked() {
		b.cond.Wait()
	}
}

// Total returns the number of units the barrier was created for.
func (b *Barrier) Total() int {
	return len(b.done)
}

// allDoneLocked scans the done-set. Caller must hold b.mu.
func (b *Barrier) allDoneLocked() bool {
	for _, d := range b.done {
		if !d {
			return false
		}
	}
	return true
}
