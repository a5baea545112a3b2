package queue

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	q := New[int]()

	for i := 0; i < 10; i++ {
		q.Push(i)
	}

	require.Equal(t, 10, q.Len())
	for i := 0; i < 10; i++ {
		assert.Equal(t, i, q.Pop())
	}
	assert.Equal(t, 0, q.Len())
}

func TestQueuePopBlocksUntilPush(t *testing.T) {
	q := New[string]()

	got := make(chan string, 1)
	go func() {
		got <- q.Pop()
	}()

	select {
	case v := <-got:
		t.Fatalf("Pop returned %q before any push", v)
	case <-time.After(50 * time.Millisecond):
	}

	q.Push("work")

	select {
	case v := <-got:
		assert.Equal(t, "work", v)
	case <-time.After(time.Second):
		t.Fatal("Pop did not wake after push")
	}
}

func TestQueueConcurrentProducersConsumers(t *testing.T) {
	const (
		producers        = 4
		consumers        = 4
		itemsPerProducer = 250
	)

	q := New[int]()

	var prodWg sync.WaitGroup
	for p := 0; p < producers; p++ {
		prodWg.Add(1)
		go func(p int) {
			defer prodWg.Done()
			for i := 0; i < itemsPerProducer; i++ {
				q.Push(p*itemsPerProducer + i)
			}
		}(p)
	}

	var mu sync.Mutex
	seen := make(map[int]bool)

	var consWg sync.WaitGroup
	for c := 0; c < consumers; c++ {
		consWg.Add(1)
		go func() {
			defer consWg.Done()
			for i := 0; i < itemsPerProducer; i++ {
				v := q.Pop()
				mu.Lock()
				seen[v] = true
				mu.Unlock()
			}
		}()
	}

	prodWg.Wait()
	consWg.Wait()

	require.Len(t, seen, producers*itemsPerProducer, "every pushed item should be popped exactly once")
	assert.Equal(t, 0, q.Len())
}

func TestQueueSingleConsumerSeesArrivalOrder(t *testing.T) {
	q := New[int]()

	done := make(chan []int, 1)
	go func() {
		out := make([]int, 0, 100)
		for i := 0; i < 100; i++ {
			out = append(out, q.Pop())
		}
		done <- out
	}()

	for i := 0; i < 100; i++ {
		q.Push(i)
	}

	out := <-done
	for i, v := range out {
		require.Equal(t, i, v, "item %d popped out of order", i)
	}
}
