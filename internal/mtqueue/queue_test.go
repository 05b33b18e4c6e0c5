package mtqueue

import (
	"sync"
	"testing"
)

func TestEnqueueDequeueOrder(t *testing.T) {
	q := New[int]()
	for i := 0; i < 10; i++ {
		q.Enqueue(i)
	}
	for i := 0; i < 10; i++ {
		v, ok := q.Dequeue()
		if !ok {
			t.Fatalf("Dequeue reported empty before all values were drained")
		}
		if v != i {
			t.Fatalf("Dequeue() = %d, want %d (FIFO order violated)", v, i)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatalf("Dequeue on empty queue returned ok=true")
	}
}

func TestConcurrentProducersConsumersConserveCount(t *testing.T) {
	q := New[int]()
	const producers = 8
	const perProducer = 2000
	const total = producers * perProducer

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Enqueue(i)
			}
		}()
	}
	wg.Wait()

	if got := q.Len(); got != total {
		t.Fatalf("Len() = %d, want %d", got, total)
	}

	got := 0
	var mu sync.Mutex
	var cwg sync.WaitGroup
	cwg.Add(producers)
	for c := 0; c < producers; c++ {
		go func() {
			defer cwg.Done()
			for {
				_, ok := q.Dequeue()
				if !ok {
					return
				}
				mu.Lock()
				got++
				mu.Unlock()
			}
		}()
	}
	cwg.Wait()

	if got != total {
		t.Fatalf("drained %d values, want %d", got, total)
	}
	if !q.Empty() {
		t.Fatalf("queue not empty after full drain")
	}
}
