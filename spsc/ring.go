// File: spsc/ring.go
// License: Apache-2.0
//
// Package spsc implements a family of bounded single-producer/single-consumer
// ring buffers sharing one contract (api.Ring) under three synchronization
// policies: mutex-protected, sequentially-consistent atomic, and lock-free
// with cache-line isolation. The policies are drop-in substitutable, which is
// the point: they make the cost of progressively weaker synchronization
// directly comparable.

package spsc

import (
	"errors"
	"fmt"

	"github.com/hotring/ringkit/api"
)

// Policy selects a synchronization discipline for New.
type Policy string

const (
	// PolicyMutex serializes every operation behind one lock.
	PolicyMutex Policy = "mutex"
	// PolicyAtomic uses sequentially-consistent atomic indices.
	PolicyAtomic Policy = "atomic"
	// PolicyLockFree uses single-writer atomic indices with cache-line
	// padding and cached opposite-index checks.
	PolicyLockFree Policy = "lockfree"
)

// ErrUnknownPolicy is returned by New for an unrecognized policy name.
var ErrUnknownPolicy = errors.New("spsc: unknown policy")

// New constructs a ring buffer of the given policy and capacity.
func New[T any](policy Policy, capacity int) (api.Ring[T], error) {
	switch policy {
	case PolicyMutex:
		return NewMutexRing[T](capacity), nil
	case PolicyAtomic:
		return NewAtomicRing[T](capacity), nil
	case PolicyLockFree:
		return NewLockFreeRing[T](capacity), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}
}

// slots is the storage core shared by all policies: capacity+1 cells with
// one permanently empty, so read==write means empty and next(write)==read
// means full without a separate counter. The live cells are exactly the
// half-open range [readIndex, writeIndex) modulo size.
type slots[T any] struct {
	cells []T
	size  uint32 // len(cells) == capacity+1
}

func newSlots[T any](capacity int) slots[T] {
	if capacity < 1 {
		panic("spsc: capacity must be at least 1")
	}
	return slots[T]{
		cells: make([]T, capacity+1),
		size:  uint32(capacity + 1),
	}
}

// next advances an index with wraparound.
func (s *slots[T]) next(i uint32) uint32 {
	if i++; i == s.size {
		return 0
	}
	return i
}

func (s *slots[T]) capacity() int { return int(s.size) - 1 }

// put makes cell i live.
func (s *slots[T]) put(i uint32, v T) { s.cells[i] = v }

// take moves the value out of cell i and clears the cell so the buffer no
// longer references it. The zero-store is the GC-visible analog of
// destroying the element in place.
func (s *slots[T]) take(i uint32) T {
	v := s.cells[i]
	var zero T
	s.cells[i] = zero
	return v
}

// length computes write-read with wraparound correction. Bounded by
// [0, capacity] when read and write come from a consistent snapshot.
func (s *slots[T]) length(read, write uint32) int {
	if write >= read {
		return int(write - read)
	}
	return int(s.size - read + write)
}
