package mtlist

// Iterator is handed to the body of EachRemovable alongside the yielded
// element. Calling Remove marks that element for removal; the element is
// unlinked once the body returns. Calling Remove more than once, or after
// the body has returned, has no effect.
type Iterator struct {
	remove bool
}

// Remove marks the currently yielded element for removal from the list.
func (it *Iterator) Remove() {
	it.remove = true
}

// Each walks head's list exactly once per element, front to back, without
// ever allowing the element being visited to be removed. At every step the
// yielded element is isolated (both its links held busy) and its two
// neighbors are locked on the side facing it; the rest of the list remains
// fully operable by other goroutines. f returns false to stop early.
//
// Panics raised from f unwind through Each normally, but the current step's
// locks are released first so the list is left consistent.
func (head *Element) Each(f func(e *Element) bool) {
	head.EachRemovable(func(e *Element, _ *Iterator) bool {
		return f(e)
	})
}

// EachRemovable is Each's removal-capable variant: f may call it.Remove()
// to delete the yielded element before returning. The caller must not
// attempt to lock this same list via any other path from within f — that
// would deadlock against the iterator's own held locks. Operations on
// other lists are fine.
func (head *Element) EachRemovable(f func(e *Element, it *Iterator) bool) {
	var bo backoff
	prevPos := head

	for {
		n, ok := swapBusy(&prevPos.next)
		if !ok {
			bo.wait()
			continue
		}
		if n == head {
			unlock(&prevPos.next, head)
			return
		}

		back, ok := swapBusy(&n.prev)
		if !ok {
			unlock(&prevPos.next, n)
			bo.wait()
			continue
		}

		s, ok := swapBusy(&n.next)
		if !ok {
			unlock(&n.prev, back)
			unlock(&prevPos.next, n)
			bo.wait()
			continue
		}

		_, ok = swapBusy(&s.prev)
		if !ok {
			unlock(&n.next, s)
			unlock(&n.prev, back)
			unlock(&prevPos.next, n)
			bo.wait()
			continue
		}
		bo.reset()

		it := &Iterator{}
		cont := runStep(f, n, it, prevPos, back, s)

		if it.remove {
			unlock(&prevPos.next, s)
			unlock(&s.prev, prevPos)
			storeElem(&n.next, n)
			storeElem(&n.prev, n)
			// prevPos is unchanged: its successor is now s.
		} else {
			unlock(&prevPos.next, n)
			unlock(&n.prev, back)
			unlock(&n.next, s)
			unlock(&s.prev, n)
			prevPos = n
		}

		if !cont {
			return
		}
	}
}

// runStep calls f with the step's locks already acquired, reinstalling n
// in its original position before letting a panic from f propagate so the
// list is never left with a dangling busy link.
func runStep(f func(e *Element, it *Iterator) bool, n *Element, it *Iterator, prevPos, back, s *Element) (cont bool) {
	defer func() {
		if r := recover(); r != nil {
			unlock(&prevPos.next, n)
			unlock(&n.prev, back)
			unlock(&n.next, s)
			unlock(&s.prev, n)
			panic(r)
		}
	}()
	return f(n, it)
}
