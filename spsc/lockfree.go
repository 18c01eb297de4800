// File: spsc/lockfree.go
// License: Apache-2.0
//
// Lock-free policy. The correctness argument is the publish/observe pairing
// on the two indices:
//
//   - writeIdx is written only by the producer and read by the consumer;
//     readIdx is written only by the consumer and read by the producer.
//   - The producer stores the element into its slot strictly before the
//     writeIdx store that makes the slot visible; a consumer that observes
//     the new writeIdx therefore observes the element.
//   - The consumer takes the element out strictly before the readIdx store
//     that hands the slot back; a producer that observes the new readIdx may
//     reuse the slot.
//
// In the C++ memory model this is a release store paired with an acquire
// load per index. Go exposes a single atomic ordering (sequentially
// consistent), which is strictly stronger, so the pairing holds a fortiori;
// what this implementation keeps from the weaker design is everything else
// that makes it fast: single-writer index discipline, no CAS, cache-line
// isolation of the two hot indices, and a cached copy of the opposite index
// so the common case touches no shared cache line at all.

package spsc

import (
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/hotring/ringkit/api"
)

// CacheLineSize is the padding stride separating the producer's and the
// consumer's hot fields. It comes from x/sys/cpu rather than a hardcoded
// literal because the value is platform-sensitive (64 bytes on most
// architectures, 128 where adjacent-line prefetching makes pairs behave as
// one line).
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*LockFreeRing[any])(nil)

// LockFreeRing is the lock-free policy. Exactly one producer goroutine may
// call TryPush and exactly one consumer goroutine may call TryPop/Front;
// anything else is undefined behavior, not detected at runtime.
//
// Field layout groups each index with the cached view owned by the same
// side, and pads between the groups: producer writes to its line never
// invalidate the line the consumer spins on, and vice versa. The padding is
// a performance property (false-sharing avoidance), not a correctness one.
type LockFreeRing[T any] struct {
	_ cpu.CacheLinePad

	// Consumer-owned line.
	readIdx     atomic.Uint32
	cachedWrite uint32 // consumer's stale view of writeIdx
	_           cpu.CacheLinePad

	// Producer-owned line.
	writeIdx   atomic.Uint32
	cachedRead uint32 // producer's stale view of readIdx
	_          cpu.CacheLinePad

	slots slots[T]
}

// NewLockFreeRing allocates a lock-free ring holding capacity elements.
// Panics if capacity < 1.
func NewLockFreeRing[T any](capacity int) *LockFreeRing[T] {
	return &LockFreeRing[T]{slots: newSlots[T](capacity)}
}

// TryPush appends v; returns false if full. Producer side only.
func (r *LockFreeRing[T]) TryPush(v T) bool {
	w := r.writeIdx.Load() // sole writer of writeIdx; always current
	next := r.slots.next(w)

	// The cached read index only ever lags the real one, and a lagging
	// view can only under-report free slots, so a "not full" verdict
	// against the cache is safe. Refresh only on apparent fullness.
	if next == r.cachedRead {
		r.cachedRead = r.readIdx.Load()
		if next == r.cachedRead {
			return false // full
		}
	}

	r.slots.put(w, v)
	r.writeIdx.Store(next) // publishes the element to the consumer
	return true
}

// TryPop removes and returns the oldest element; ok is false if empty.
// Consumer side only.
func (r *LockFreeRing[T]) TryPop() (T, bool) {
	rd := r.readIdx.Load() // sole writer of readIdx; always current

	// Symmetric to TryPush: a stale cachedWrite can only under-report
	// available elements. Refresh only on apparent emptiness.
	if rd == r.cachedWrite {
		r.cachedWrite = r.writeIdx.Load()
		if rd == r.cachedWrite {
			var zero T
			return zero, false // empty
		}
	}

	v := r.slots.take(rd)
	r.readIdx.Store(r.slots.next(rd)) // hands the slot back to the producer
	return v, true
}

// Front returns a pointer to the oldest element, nil if empty.
// Consumer side only.
func (r *LockFreeRing[T]) Front() *T {
	rd := r.readIdx.Load()
	if rd == r.cachedWrite {
		r.cachedWrite = r.writeIdx.Load()
		if rd == r.cachedWrite {
			return nil
		}
	}
	return &r.slots.cells[rd]
}

// Empty reports whether the buffer holds no elements (approximate).
func (r *LockFreeRing[T]) Empty() bool {
	return r.readIdx.Load() == r.writeIdx.Load()
}

// Full reports whether the buffer holds Cap elements (approximate).
func (r *LockFreeRing[T]) Full() bool {
	return r.slots.next(r.writeIdx.Load()) == r.readIdx.Load()
}

// Len returns the current number of elements (approximate).
func (r *LockFreeRing[T]) Len() int {
	return r.slots.length(r.readIdx.Load(), r.writeIdx.Load())
}

// Cap returns the fixed buffer capacity.
func (r *LockFreeRing[T]) Cap() int { return r.slots.capacity() }
