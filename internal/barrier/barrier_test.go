package barrier

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitAllReturnsImmediatelyWhenEmpty(t *testing.T) {
	b := New(0)

	done := make(chan struct{})
	go func() {
		b.WaitAll()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitAll blocked on a zero-unit barrier")
	}
}

func TestWaitAllBlocksUntilLastMark(t *testing.T) {
	const total = 8
	b := New(total)

	done := make(chan struct{})
	go func() {
		b.WaitAll()
		close(done)
	}()

	for i := 0; i < total-1; i++ {
		b.MarkDone(i)
	}

	select {
	case <-done:
		t.Fatal("WaitAll returned before the final unit was marked")
	case <-time.After(50 * time.Millisecond):
	}

	b.MarkDone(total - 1)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitAll did not wake after the final mark")
	}
}

func TestConcurrentMarksOutOfOrder(t *testing.T) {
	const total = 64
	b := New(total)

	var wg sync.WaitGroup
	for i := total - 1; i >= 0; i-- {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b.MarkDone(i)
		}(i)
	}

	b.WaitAll()
	wg.Wait()
	assert.Equal(t, total, b.Total())
}

func TestMultipleWaiters(t *testing.T) {
	const total = 4
	b := New(total)

	const waiters = 3
	var wg sync.WaitGroup
	for w := 0; w < waiters; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.WaitAll()
		}()
	}

	for i := 0; i < total; i++ {
		b.MarkDone(i)
	}

	released := make(chan struct{})
	go func() {
		wg.Wait()
		close(released)
	}()

	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("not every waiter was released")
	}
}

func TestWaitAllMonotonic(t *testing.T) {
	b := New(2)
	b.MarkDone(0)
	b.MarkDone(1)

	// Once satisfied, every subsequent wait returns without blocking.
	for i := 0; i < 3; i++ {
		b.WaitAll()
	}
}
