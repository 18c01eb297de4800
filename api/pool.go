// File: api/pool.go
// License: Apache-2.0
//
// Allocation contracts: fixed-backing arena and object pool.

package api

// ArenaStats reports cumulative allocation activity of an arena.
type ArenaStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
}

// Arena is a byte allocator over a single backing region obtained once at
// construction. Alloc returns nil when no free block can satisfy the
// request; it never grows the backing region.
type Arena interface {
	// Alloc returns a block of exactly size bytes, or nil if exhausted.
	// Contents of a reused block are unspecified.
	Alloc(size int) []byte
	// Calloc returns a zeroed block of n*size bytes, or nil if exhausted.
	Calloc(n, size int) []byte
	// Realloc resizes b, preserving the common prefix. A nil b behaves
	// like Alloc. Returns nil (leaving b live) if the arena is exhausted.
	Realloc(b []byte, size int) []byte
	// Free returns b's block to the arena. b must be a block previously
	// returned by Alloc, Calloc or Realloc.
	Free(b []byte)
	// Reset frees every block at once.
	Reset()
	// Stats returns cumulative allocation counters.
	Stats() ArenaStats
}
