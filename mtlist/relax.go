package mtlist

import "runtime"

// pauseSpins is the width of a single cheap spin: the iteration count of
// pause's empty loop. It approximates the cost of a handful of PAUSE instructions,
// not a scheduler round-trip.
const pauseSpins = 30

// pause is the per-spin relax used backoffBase..backoffCap times inside a
// single wait() call. It carries no memory-ordering guarantee of its own;
// it exists purely to burn a little time cheaply before the next retry.
func pause() {
	for i := 0; i < pauseSpins; i++ {
	}
}

// relax actually yields the processor to the scheduler. It is called once
// per wait(), not once per spin: runtime.Gosched is a full scheduler
// round-trip, cheap in isolation but far too slow to multiply by an
// exponentially growing spin count, so the growth is applied to pause
// instead and relax is paid for only once per rollback.
func relax() {
	runtime.Gosched()
}
