// Package mtlist implements a multi-thread-aware doubly-linked circular
// list.
//
// Unlike container/list, there is no separate head type: any Element can
// play the role of a list head, and an empty list is just a detached
// (self-looped) Element. Concurrency is per-link rather than per-list: two
// operations that touch disjoint pairs of neighboring elements never block
// each other, even on the same list.
//
// The locking discipline is an atomic exchange on a single next or prev
// field with a busy sentinel, not a mutex: an operation that needs to
// change a link swaps busy into it and inspects what was there. If another
// operation already owns that link, the swap still succeeds (busy-for-busy
// is a no-op) but is recognized as a conflict, and the caller rolls back
// whatever it already acquired and retries after a backoff. There is no
// blocking primitive anywhere in this package.
package mtlist
