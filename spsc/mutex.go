// File: spsc/mutex.go
// License: Apache-2.0

package spsc

import (
	"sync"

	"github.com/hotring/ringkit/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*MutexRing[any])(nil)

// MutexRing is the mutex policy: a single lock serializes every operation
// against the indices and the storage. Total-order correctness at the cost
// of one lock acquisition per call; the only policy that also tolerates
// multiple producers or consumers (without per-producer ordering).
type MutexRing[T any] struct {
	mu       sync.Mutex
	slots    slots[T]
	readIdx  uint32
	writeIdx uint32
}

// NewMutexRing allocates a mutex-policy ring holding capacity elements.
// Panics if capacity < 1.
func NewMutexRing[T any](capacity int) *MutexRing[T] {
	return &MutexRing[T]{slots: newSlots[T](capacity)}
}

// TryPush appends v; returns false if full.
func (r *MutexRing[T]) TryPush(v T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.slots.next(r.writeIdx)
	if next == r.readIdx {
		return false // full
	}
	r.slots.put(r.writeIdx, v)
	r.writeIdx = next
	return true
}

// TryPop removes and returns the oldest element; ok is false if empty.
func (r *MutexRing[T]) TryPop() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.readIdx == r.writeIdx {
		var zero T
		return zero, false // empty
	}
	v := r.slots.take(r.readIdx)
	r.readIdx = r.slots.next(r.readIdx)
	return v, true
}

// Front returns a pointer to the oldest element, nil if empty.
func (r *MutexRing[T]) Front() *T {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.readIdx == r.writeIdx {
		return nil
	}
	return &r.slots.cells[r.readIdx]
}

// Empty reports whether the buffer holds no elements.
func (r *MutexRing[T]) Empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readIdx == r.writeIdx
}

// Full reports whether the buffer holds Cap elements.
func (r *MutexRing[T]) Full() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.slots.next(r.writeIdx) == r.readIdx
}

// Len returns the current number of elements.
func (r *MutexRing[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.slots.length(r.readIdx, r.writeIdx)
}

// Cap returns the fixed buffer capacity.
func (r *MutexRing[T]) Cap() int { return r.slots.capacity() }
