// File: spsc/atomic.go
// License: Apache-2.0

package spsc

import (
	"sync/atomic"

	"github.com/hotring/ringkit/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*AtomicRing[any])(nil)

// AtomicRing is the seq-cst policy: both indices are atomics and every
// access goes through the stdlib atomics, which are sequentially consistent.
// Correct by construction (one global total order over all atomic
// operations) and lock-free, but every access pays full-fence cost on most
// architectures. Deliberate midpoint between MutexRing and LockFreeRing,
// useful as a benchmarking baseline.
//
// Exactly one goroutine may push and exactly one may pop; anything else is
// undefined behavior.
type AtomicRing[T any] struct {
	slots    slots[T]
	readIdx  atomic.Uint32 // consumer-owned, producer-read
	writeIdx atomic.Uint32 // producer-owned, consumer-read
}

// NewAtomicRing allocates a seq-cst-policy ring holding capacity elements.
// Panics if capacity < 1.
func NewAtomicRing[T any](capacity int) *AtomicRing[T] {
	return &AtomicRing[T]{slots: newSlots[T](capacity)}
}

// TryPush appends v; returns false if full. Producer side only.
func (r *AtomicRing[T]) TryPush(v T) bool {
	w := r.writeIdx.Load()
	next := r.slots.next(w)
	if next == r.readIdx.Load() {
		return false // full
	}
	// The element must be in place before the index store that makes the
	// slot visible to the consumer.
	r.slots.put(w, v)
	r.writeIdx.Store(next)
	return true
}

// TryPop removes and returns the oldest element; ok is false if empty.
// Consumer side only.
func (r *AtomicRing[T]) TryPop() (T, bool) {
	rd := r.readIdx.Load()
	if rd == r.writeIdx.Load() {
		var zero T
		return zero, false // empty
	}
	v := r.slots.take(rd)
	r.readIdx.Store(r.slots.next(rd))
	return v, true
}

// Front returns a pointer to the oldest element, nil if empty.
// Consumer side only.
func (r *AtomicRing[T]) Front() *T {
	rd := r.readIdx.Load()
	if rd == r.writeIdx.Load() {
		return nil
	}
	return &r.slots.cells[rd]
}

// Empty reports whether the buffer holds no elements (approximate).
func (r *AtomicRing[T]) Empty() bool {
	return r.readIdx.Load() == r.writeIdx.Load()
}

// Full reports whether the buffer holds Cap elements (approximate).
func (r *AtomicRing[T]) Full() bool {
	return r.slots.next(r.writeIdx.Load()) == r.readIdx.Load()
}

// Len returns the current number of elements (approximate).
func (r *AtomicRing[T]) Len() int {
	return r.slots.length(r.readIdx.Load(), r.writeIdx.Load())
}

// Cap returns the fixed buffer capacity.
func (r *AtomicRing[T]) Cap() int { return r.slots.capacity() }
