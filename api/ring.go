// File: api/ring.go
// License: Apache-2.0
//
// Bounded SPSC ring buffer contract shared by every synchronization policy.

package api

// Ring is a bounded single-producer/single-consumer ring buffer.
//
// TryPush may be called from at most one goroutine at a time (the producer)
// and TryPop/Front from at most one goroutine at a time (the consumer).
// Violating that split is undefined behavior for the atomic and lock-free
// policies; only the mutex policy tolerates it.
//
// TryPush and TryPop never block and never allocate. Full-on-push and
// empty-on-pop are expected conditions reported through the return value;
// retry, backoff and deadlines are the caller's concern.
//
// Empty, Full and Len are exact only on the thread that last mutated the
// relevant index; under concurrent use they report a recently-true value.
// Concurrent callers must act on TryPush/TryPop return values, never on
// these queries.
type Ring[T any] interface {
	// TryPush appends v; returns false without modifying state if full.
	TryPush(v T) bool
	// TryPop removes and returns the oldest element; ok is false if empty.
	TryPop() (T, bool)
	// Front returns a pointer to the oldest element without removing it,
	// or nil if empty. The pointer is valid only until the next TryPop.
	// Consumer side only.
	Front() *T
	// Empty reports whether the buffer holds no elements (approximate).
	Empty() bool
	// Full reports whether the buffer holds Cap elements (approximate).
	Full() bool
	// Len returns the current number of elements (approximate).
	Len() int
	// Cap returns the fixed buffer capacity (exact, constant).
	Cap() int
}
