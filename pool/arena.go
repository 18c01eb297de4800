// File: pool/arena.go
// License: Apache-2.0
//
// Package pool provides allocation utilities: a fixed-backing arena with an
// explicit free list, and a generic object pool. The arena is the Go
// rendition of a malloc-style allocator: one backing region obtained up
// front, first-fit block reuse, split on allocation, coalesce on free. It
// never asks the runtime for more memory after construction.

package pool

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/hotring/ringkit/api"
)

// Ensure compile-time interface compliance.
var _ api.Arena = (*Arena)(nil)

// block describes one contiguous region of the backing slice. The block
// list is ordered by offset and always covers the whole backing slice.
type block struct {
	off  int
	size int
	free bool
}

// Arena is a first-fit free-list allocator over a single backing slice.
// Safe for concurrent use; one lock guards the block list, matching the
// exact-counter end of the tradeoff (allocation is not this module's hot
// path).
type Arena struct {
	mu     sync.Mutex
	buf    []byte
	blocks []block

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

// NewArena creates an arena backed by size bytes. Panics if size < 1.
func NewArena(size int) *Arena {
	if size < 1 {
		panic("pool: arena size must be at least 1")
	}
	return &Arena{
		buf:    make([]byte, size),
		blocks: []block{{off: 0, size: size, free: true}},
	}
}

// Alloc returns a block of exactly size bytes, or nil if no free block can
// satisfy the request. Reused blocks keep their previous contents.
func (a *Arena) Alloc(size int) []byte {
	if size < 1 {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.alloc(size)
}

// Calloc returns a zeroed block of n*size bytes, or nil if exhausted.
func (a *Arena) Calloc(n, size int) []byte {
	if n < 1 || size < 1 {
		return nil
	}
	b := a.Alloc(n * size)
	if b != nil {
		clear(b)
	}
	return b
}

// Realloc resizes b preserving the common prefix. A nil b behaves like
// Alloc. Shrinking reuses the block in place. Returns nil, leaving b live,
// if the arena cannot satisfy a grow.
func (a *Arena) Realloc(b []byte, size int) []byte {
	if b == nil {
		return a.Alloc(size)
	}
	if size < 1 {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	off, ok := a.offsetOf(b)
	if !ok {
		return nil
	}
	i := a.find(off)
	if i < 0 || a.blocks[i].free {
		return nil
	}
	if a.blocks[i].size >= size {
		return a.buf[off : off+size : off+size]
	}

	grown := a.alloc(size)
	if grown == nil {
		return nil
	}
	copy(grown, b)
	a.totalFree.Add(1)
	// The block list may have shifted during alloc; re-locate.
	a.release(a.find(off))
	return grown
}

// Free returns b's block to the arena and coalesces it with free
// neighbors. Freeing nil or a non-arena slice is a no-op.
func (a *Arena) Free(b []byte) {
	if b == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	off, ok := a.offsetOf(b)
	if !ok {
		return
	}
	i := a.find(off)
	if i < 0 || a.blocks[i].free {
		return
	}
	a.totalFree.Add(1)
	a.release(i)
}

// Reset frees every live block at once.
func (a *Arena) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.blocks {
		if !a.blocks[i].free {
			a.totalFree.Add(1)
		}
	}
	a.blocks = a.blocks[:1]
	a.blocks[0] = block{off: 0, size: len(a.buf), free: true}
}

// Stats returns cumulative allocation counters.
func (a *Arena) Stats() api.ArenaStats {
	alloc := a.totalAlloc.Load()
	free := a.totalFree.Load()
	return api.ArenaStats{
		TotalAlloc: alloc,
		TotalFree:  free,
		InUse:      alloc - free,
	}
}

// alloc is the first-fit scan; caller holds the lock.
func (a *Arena) alloc(size int) []byte {
	for i := 0; i < len(a.blocks); i++ {
		if !a.blocks[i].free || a.blocks[i].size < size {
			continue
		}
		off := a.blocks[i].off
		if rem := a.blocks[i].size - size; rem > 0 {
			// Split: keep size bytes here, insert the remainder as a
			// new free block right after.
			a.blocks = append(a.blocks, block{})
			copy(a.blocks[i+2:], a.blocks[i+1:])
			a.blocks[i+1] = block{off: off + size, size: rem, free: true}
			a.blocks[i].size = size
		}
		a.blocks[i].free = false
		a.totalAlloc.Add(1)
		return a.buf[off : off+size : off+size]
	}
	return nil
}

// release marks block i free and merges it with adjacent free blocks;
// caller holds the lock.
func (a *Arena) release(i int) {
	a.blocks[i].free = true
	if i+1 < len(a.blocks) && a.blocks[i+1].free {
		a.blocks[i].size += a.blocks[i+1].size
		a.blocks = append(a.blocks[:i+1], a.blocks[i+2:]...)
	}
	if i > 0 && a.blocks[i-1].free {
		a.blocks[i-1].size += a.blocks[i].size
		a.blocks = append(a.blocks[:i], a.blocks[i+1:]...)
	}
}

// find returns the index of the block starting at off, or -1.
func (a *Arena) find(off int) int {
	for i := range a.blocks {
		if a.blocks[i].off == off {
			return i
		}
	}
	return -1
}

// offsetOf recovers a slice's offset inside the backing region.
func (a *Arena) offsetOf(b []byte) (int, bool) {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
	p := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	if p < base || p >= base+uintptr(len(a.buf)) {
		return 0, false
	}
	return int(p - base), true
}
