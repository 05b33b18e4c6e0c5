package mtlist

// Append adds newNode immediately before anchor (so if anchor is a list
// head, newNode becomes the last element). newNode is assumed to be
// exclusively owned by the caller already; any prior links it held are
// overwritten.
func Append(anchor, newNode *Element) {
	var bo backoff
	for {
		tail, ok := swapBusy(&anchor.prev)
		if !ok {
			bo.wait()
			continue
		}
		prior, ok := swapBusy(&tail.next)
		if !ok {
			unlock(&anchor.prev, tail)
			bo.wait()
			continue
		}
		_ = prior // always anchor under the invariants; nothing further to check

		storeElem(&newNode.prev, tail)
		storeElem(&newNode.next, anchor)
		unlock(&tail.next, newNode)
		unlock(&anchor.prev, newNode)
		bo.reset()
		return
	}
}

// TryAppend behaves like Append but only succeeds if newNode is currently
// detached. It returns false without mutating anything if newNode was
// already part of a list.
func TryAppend(anchor, newNode *Element) bool {
	var bo backoff
	for {
		tail, ok := swapBusy(&anchor.prev)
		if !ok {
			bo.wait()
			continue
		}
		tailNext, ok := swapBusy(&tail.next)
		if !ok {
			unlock(&anchor.prev, tail)
			bo.wait()
			continue
		}

		selfPrev, ok := swapBusy(&newNode.prev)
		if !ok {
			unlock(&tail.next, tailNext)
			unlock(&anchor.prev, tail)
			bo.wait()
			continue
		}
		if selfPrev != newNode {
			unlock(&newNode.prev, selfPrev)
			unlock(&tail.next, tailNext)
			unlock(&anchor.prev, tail)
			return false
		}

		selfNext, ok := swapBusy(&newNode.next)
		if !ok {
			unlock(&newNode.prev, selfPrev)
			unlock(&tail.next, tailNext)
			unlock(&anchor.prev, tail)
			bo.wait()
			continue
		}
		if selfNext != newNode {
			unlock(&newNode.next, selfNext)
			unlock(&newNode.prev, selfPrev)
			unlock(&tail.next, tailNext)
			unlock(&anchor.prev, tail)
			return false
		}

		storeElem(&newNode.prev, tail)
		storeElem(&newNode.next, anchor)
		unlock(&tail.next, newNode)
		unlock(&anchor.prev, newNode)
		bo.reset()
		return true
	}
}

// Insert adds newNode immediately after anchor. newNode is assumed to be
// exclusively owned by the caller already.
func Insert(anchor, newNode *Element) {
	var bo backoff
	for {
		next, ok := swapBusy(&anchor.next)
		if !ok {
			bo.wait()
			continue
		}
		_, ok = swapBusy(&next.prev)
		if !ok {
			unlock(&anchor.next, next)
			bo.wait()
			continue
		}

		storeElem(&newNode.next, next)
		storeElem(&newNode.prev, anchor)
		unlock(&next.prev, newNode)
		unlock(&anchor.next, newNode)
		bo.reset()
		return
	}
}

// TryInsert behaves like Insert but only succeeds if newNode is currently
// detached.
func TryInsert(anchor, newNode *Element) bool {
	var bo backoff
	for {
		next, ok := swapBusy(&anchor.next)
		if !ok {
			bo.wait()
			continue
		}
		nextPrev, ok := swapBusy(&next.prev)
		if !ok {
			unlock(&anchor.next, next)
			bo.wait()
			continue
		}

		selfNext, ok := swapBusy(&newNode.next)
		if !ok {
			unlock(&next.prev, nextPrev)
			unlock(&anchor.next, next)
			bo.wait()
			continue
		}
		if selfNext != newNode {
			unlock(&newNode.next, selfNext)
			unlock(&next.prev, nextPrev)
			unlock(&anchor.next, next)
			return false
		}

		selfPrev, ok := swapBusy(&newNode.prev)
		if !ok {
			unlock(&newNode.next, selfNext)
			unlock(&next.prev, nextPrev)
			unlock(&anchor.next, next)
			bo.wait()
			continue
		}
		if selfPrev != newNode {
			unlock(&newNode.prev, selfPrev)
			unlock(&newNode.next, selfNext)
			unlock(&next.prev, nextPrev)
			unlock(&anchor.next, next)
			return false
		}

		storeElem(&newNode.next, next)
		storeElem(&newNode.prev, anchor)
		unlock(&next.prev, newNode)
		unlock(&anchor.next, newNode)
		bo.reset()
		return true
	}
}

// Delete removes node from whatever list it is in and leaves it detached.
// It returns false without touching anything if node was already detached.
func Delete(node *Element) bool {
	var bo backoff
	for {
		p, ok := swapBusy(&node.prev)
		if !ok {
			bo.wait()
			continue
		}
		if p == node {
			// already detached: nothing to do.
			unlock(&node.prev, node)
			return false
		}

		_, ok = swapBusy(&p.next)
		if !ok {
			unlock(&node.prev, p)
			bo.wait()
			continue
		}

		n, ok := swapBusy(&node.next)
		if !ok {
			unlock(&p.next, node)
			unlock(&node.prev, p)
			bo.wait()
			continue
		}

		_, ok = swapBusy(&n.prev)
		if !ok {
			unlock(&node.next, n)
			unlock(&p.next, node)
			unlock(&node.prev, p)
			bo.wait()
			continue
		}

		unlock(&p.next, n)
		unlock(&n.prev, p)
		storeElem(&node.next, node)
		storeElem(&node.prev, node)
		bo.reset()
		return true
	}
}

// Pop unlinks and returns the first element of the list rooted at head,
// i.e. head.Next() if it isn't head itself. It returns nil without
// mutating head if the list is empty.
func Pop(head *Element) *Element {
	var bo backoff
	for {
		f, ok := swapBusy(&head.next)
		if !ok {
			bo.wait()
			continue
		}
		if f == head {
			unlock(&head.next, head)
			return nil
		}

		fPrev, ok := swapBusy(&f.prev)
		if !ok {
			unlock(&head.next, f)
			bo.wait()
			continue
		}

		s, ok := swapBusy(&f.next)
		if !ok {
			unlock(&f.prev, fPrev)
			unlock(&head.next, f)
			bo.wait()
			continue
		}

		_, ok = swapBusy(&s.prev)
		if !ok {
			unlock(&f.next, s)
			unlock(&f.prev, fPrev)
			unlock(&head.next, f)
			bo.wait()
			continue
		}

		unlock(&head.next, s)
		unlock(&s.prev, fPrev)
		storeElem(&f.next, f)
		storeElem(&f.prev, f)
		bo.reset()
		return f
	}
}

// Behead detaches the whole chain rooted at head in O(1), leaving head
// empty. The returned value is NOT a valid list: it is a linear open chain,
// the first element of a singly-forward walk via Next that ends at a nil
// Next(); its first element's Prev still points at the chain's last
// element. It returns nil if the list was empty.
//
// Behead is safe to run concurrently with Append/Insert at this same head,
// because they only ever touch head.next and head.prev. It is NOT safe to
// run concurrently with Delete or Pop elsewhere in the list: those
// operations can leave a participant linked via busy in a way Behead does
// not scan through, and the corrected chain may omit or duplicate work in
// flight. This restriction is inherited unchanged from the source design
// and is not strengthened here.
func Behead(head *Element) *Element {
	var bo backoff
	for {
		f, ok := swapBusy(&head.next)
		if !ok {
			bo.wait()
			continue
		}
		if f == head {
			unlock(&head.next, head)
			return nil
		}

		l, ok := swapBusy(&head.prev)
		if !ok {
			unlock(&head.next, f)
			bo.wait()
			continue
		}

		storeElem(&head.next, head)
		storeElem(&head.prev, head)
		storeElem(&f.prev, l)
		storeElem(&l.next, nil)
		bo.reset()
		return f
	}
}

// Ends is an opaque token returned by CutAfter, CutBefore and CutAround,
// capturing the two endpoints of a link that has been broken but not yet
// reconnected. Its zero value is not a valid token; the only way to obtain
// one is through one of the Cut* functions, and the only valid uses of one
// are ConnectEnds and ConnectElem.
type Ends struct {
	a, b     *Element
	isolated *Element // non-nil only for tokens produced by CutAround
}

// CutAfter breaks the link between node and its successor, leaving both
// ends locked, and returns a token capturing them. It does not commit
// anything; the caller must eventually call ConnectEnds or ConnectElem (the
// latter splicing a different node into the gap) to release the locks.
func CutAfter(node *Element) Ends {
	var bo backoff
	for {
		s, ok := swapBusy(&node.next)
		if !ok {
			bo.wait()
			continue
		}
		_, ok = swapBusy(&s.prev)
		if !ok {
			unlock(&node.next, s)
			bo.wait()
			continue
		}
		bo.reset()
		return Ends{a: node, b: s}
	}
}

// CutBefore is the mirror of CutAfter: it breaks the link between node's
// predecessor and node.
func CutBefore(node *Element) Ends {
	var bo backoff
	for {
		p, ok := swapBusy(&node.prev)
		if !ok {
			bo.wait()
			continue
		}
		_, ok = swapBusy(&p.next)
		if !ok {
			unlock(&node.prev, p)
			bo.wait()
			continue
		}
		bo.reset()
		return Ends{a: p, b: node}
	}
}

// CutAround breaks both links surrounding node: on return node.next and
// node.prev are also busy, and node is fully isolated but not yet
// detached. The returned token captures node's two neighbors; ConnectEnds
// on it is equivalent to Delete(node), and ConnectElem on it re-isolates
// the gap with a (possibly different) node.
func CutAround(node *Element) Ends {
	var bo backoff
	for {
		p, ok := swapBusy(&node.prev)
		if !ok {
			bo.wait()
			continue
		}
		_, ok = swapBusy(&p.next)
		if !ok {
			unlock(&node.prev, p)
			bo.wait()
			continue
		}

		n, ok := swapBusy(&node.next)
		if !ok {
			unlock(&p.next, node)
			unlock(&node.prev, p)
			bo.wait()
			continue
		}

		_, ok = swapBusy(&n.prev)
		if !ok {
			unlock(&node.next, n)
			unlock(&p.next, node)
			unlock(&node.prev, p)
			bo.wait()
			continue
		}

		bo.reset()
		return Ends{a: p, b: n, isolated: node}
	}
}

// ConnectEnds commits a token produced by CutAfter, CutBefore or
// CutAround, bridging its two endpoints directly and releasing the locks.
// If the token came from CutAround, the element it isolated is also
// self-looped (detached), making the overall effect identical to Delete.
func ConnectEnds(ends Ends) {
	unlock(&ends.a.next, ends.b)
	unlock(&ends.b.prev, ends.a)
	if ends.isolated != nil {
		storeElem(&ends.isolated.next, ends.isolated)
		storeElem(&ends.isolated.prev, ends.isolated)
	}
}

// ConnectElem commits a token together with a fully-isolated node (both of
// node's own links already busy, typically from a prior CutAround on node
// itself or on some other element), splicing node into the gap the token
// represents. Passing the same node that CutAround isolated restores the
// pre-cut state exactly; passing a different isolated node moves that node
// into this gap instead.
func ConnectElem(node *Element, ends Ends) {
	storeElem(&node.prev, ends.a)
	storeElem(&node.next, ends.b)
	unlock(&ends.a.next, node)
	unlock(&ends.b.prev, node)
}
