// Package bench drives mtlist, mtstack and mtqueue through workloads
// identical to a mutex-guarded baseline of the same shape, checking that
// the lock-free/backoff-based structures never lose or duplicate an
// element, and benchmarking the two disciplines against each other.
package bench
