package mtlist

import (
	"sync/atomic"
	"unsafe"
)

// Element is a single node of a multi-thread-aware doubly-linked circular
// list. Its zero value is not usable; use New or Init before linking it to
// anything.
//
// A detached Element has both fields pointing to itself. Any Element may be
// used as a list head: Len is not tracked here because the protocol never
// needs it, and walking the chain via Next/Prev is always O(n).
type Element struct {
	next unsafe.Pointer
	prev unsafe.Pointer
}

// busy is the distinguished value stored in a link field while it is
// exclusively owned by some goroutine. It is never a valid *Element: Go
// never places a live allocation at address 1.
var busy = unsafe.Pointer(uintptr(1))

// New returns a detached Element, ready to serve as a list head or as a
// standalone single-element list.
func New() *Element {
	e := &Element{}
	return e.Init()
}

// Init resets e to the detached state. It must not be called on an element
// that is reachable from another goroutine.
func (e *Element) Init() *Element {
	atomic.StorePointer(&e.next, unsafe.Pointer(e))
	atomic.StorePointer(&e.prev, unsafe.Pointer(e))
	return e
}

// Next returns e's successor. It must only be called when the caller knows
// no operation is concurrently mutating e's links (e.g. single-threaded use,
// or from within an Each/EachRemovable body on the yielded element's
// neighbors is not safe either — use the iterator for concurrent walks).
func (e *Element) Next() *Element {
	return loadElem(&e.next)
}

// Prev returns e's predecessor, under the same caller discipline as Next.
func (e *Element) Prev() *Element {
	return loadElem(&e.prev)
}

func loadElem(addr *unsafe.Pointer) *Element {
	return (*Element)(atomic.LoadPointer(addr))
}

func storeElem(addr *unsafe.Pointer, e *Element) {
	atomic.StorePointer(addr, unsafe.Pointer(e))
}

// swapBusy is the sole primitive of the protocol: it exchanges busy into
// *addr and reports the prior value along with whether the exchange
// acquired the link (prior != busy). On failure no restoration is needed:
// busy was already there, and busy was just written again.
func swapBusy(addr *unsafe.Pointer) (prior *Element, ok bool) {
	p := atomic.SwapPointer(addr, busy)
	return (*Element)(p), p != busy
}

// unlock releases a link previously acquired with swapBusy, restoring it to
// val. Used both for rollback (val is the pre-acquire value) and for commit
// (val is the final value).
func unlock(addr *unsafe.Pointer, val *Element) {
	storeElem(addr, val)
}
