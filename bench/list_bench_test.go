package bench

import (
	"sync/atomic"
	"testing"

	"github.com/wtarreau/mt-list/internal/mtqueue"
	"github.com/wtarreau/mt-list/internal/mtstack"
	"github.com/wtarreau/mt-list/mtlist"
)

// benchNode is a throwaway list element allocated per Append; benchmarks
// measure steady-state Append/Pop cost, not allocation strategy.
type benchNode struct {
	mtlist.Element
	val int
}

func BenchmarkListAppendPop(b *testing.B) {
	h := &benchNode{}
	h.Element.Init()

	var i int64
	b.RunParallel(func(pb *testing.PB) {
		id := atomic.AddInt64(&i, 1)
		for pb.Next() {
			n := &benchNode{val: int(id)}
			mtlist.Append(&h.Element, &n.Element)
			mtlist.Pop(&h.Element)
		}
	})
}

func BenchmarkListMostlyAppend(b *testing.B) {
	h := &benchNode{}
	h.Element.Init()
	const mark = 1<<4 - 1

	var i int64
	b.RunParallel(func(pb *testing.PB) {
		id := atomic.AddInt64(&i, 1)
		j := 0
		for pb.Next() {
			j++
			if j&mark == 0 {
				mtlist.Pop(&h.Element)
			} else {
				n := &benchNode{val: int(id)}
				mtlist.Append(&h.Element, &n.Element)
			}
		}
	})
}

func BenchmarkMutexListAppendPop(b *testing.B) {
	var baseline mutexList[int]

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			baseline.Append(1)
			baseline.Pop()
		}
	})
}

func BenchmarkStackPushPop(b *testing.B) {
	var s mtstack.Stack[int]

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s.Push(1)
			s.Pop()
		}
	})
}

func BenchmarkMutexStackPushPop(b *testing.B) {
	var baseline mutexStack[int]

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			baseline.Push(1)
			baseline.Pop()
		}
	})
}

func BenchmarkQueueEnqueueDequeue(b *testing.B) {
	q := mtqueue.New[int]()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			q.Enqueue(1)
			q.Dequeue()
		}
	})
}

func BenchmarkMutexQueueEnqueueDequeue(b *testing.B) {
	var baseline mutexQueue[int]

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			baseline.Enqueue(1)
			baseline.Dequeue()
		}
	})
}
