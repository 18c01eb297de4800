// File: pool/arena_test.go
// License: Apache-2.0

package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaAllocAndFree(t *testing.T) {
	a := NewArena(128)

	b1 := a.Alloc(32)
	require.NotNil(t, b1)
	assert.Len(t, b1, 32)

	b2 := a.Alloc(64)
	require.NotNil(t, b2)
	assert.Len(t, b2, 64)

	st := a.Stats()
	assert.Equal(t, int64(2), st.TotalAlloc)
	assert.Equal(t, int64(2), st.InUse)

	a.Free(b1)
	a.Free(b2)
	st = a.Stats()
	assert.Equal(t, int64(2), st.TotalFree)
	assert.Equal(t, int64(0), st.InUse)

	// Coalesced blocks must satisfy a full-size request again.
	b3 := a.Alloc(128)
	require.NotNil(t, b3)
}

func TestArenaExhaustion(t *testing.T) {
	a := NewArena(64)

	b := a.Alloc(64)
	require.NotNil(t, b)
	assert.Nil(t, a.Alloc(1))

	a.Free(b)
	assert.NotNil(t, a.Alloc(1))
}

func TestArenaFirstFitReuse(t *testing.T) {
	a := NewArena(96)

	b1 := a.Alloc(32)
	b2 := a.Alloc(32)
	b3 := a.Alloc(32)
	require.NotNil(t, b3)

	a.Free(b2)

	// The freed middle block is the first fit for a same-size request.
	b4 := a.Alloc(32)
	require.NotNil(t, b4)
	assert.Equal(t, &b2[0], &b4[0])

	a.Free(b1)
	a.Free(b3)
	a.Free(b4)
}

func TestArenaCallocZeroes(t *testing.T) {
	a := NewArena(64)

	b := a.Alloc(64)
	for i := range b {
		b[i] = 0xFF
	}
	a.Free(b)

	z := a.Calloc(8, 8)
	require.NotNil(t, z)
	require.Len(t, z, 64)
	for i, v := range z {
		require.Zerof(t, v, "byte %d not zeroed", i)
	}
}

func TestArenaReallocGrowPreservesPrefix(t *testing.T) {
	a := NewArena(256)

	b := a.Alloc(16)
	require.NotNil(t, b)
	for i := range b {
		b[i] = byte(i)
	}

	grown := a.Realloc(b, 64)
	require.NotNil(t, grown)
	require.Len(t, grown, 64)
	for i := 0; i < 16; i++ {
		assert.Equal(t, byte(i), grown[i])
	}

	st := a.Stats()
	assert.Equal(t, int64(1), st.InUse)
}

func TestArenaReallocShrinkInPlace(t *testing.T) {
	a := NewArena(64)

	b := a.Alloc(32)
	require.NotNil(t, b)
	shrunk := a.Realloc(b, 8)
	require.NotNil(t, shrunk)
	assert.Len(t, shrunk, 8)
	assert.Equal(t, &b[0], &shrunk[0])
}

func TestArenaReallocNilIsAlloc(t *testing.T) {
	a := NewArena(32)
	b := a.Realloc(nil, 16)
	require.NotNil(t, b)
	assert.Len(t, b, 16)
}

func TestArenaReset(t *testing.T) {
	a := NewArena(64)

	a.Alloc(16)
	a.Alloc(16)
	a.Reset()

	st := a.Stats()
	assert.Equal(t, int64(0), st.InUse)
	assert.NotNil(t, a.Alloc(64))
}

func TestArenaForeignSliceIgnored(t *testing.T) {
	a := NewArena(32)
	foreign := make([]byte, 8)
	a.Free(foreign) // must be a no-op
	assert.Equal(t, int64(0), a.Stats().TotalFree)
}

func TestArenaValidation(t *testing.T) {
	assert.Panics(t, func() { NewArena(0) })
	a := NewArena(16)
	assert.Nil(t, a.Alloc(0))
	assert.Nil(t, a.Calloc(0, 8))
}

func TestSyncPool(t *testing.T) {
	p := NewSyncPool(func() *[]byte {
		b := make([]byte, 32)
		return &b
	})
	b := p.Get()
	require.NotNil(t, b)
	assert.Len(t, *b, 32)
	p.Put(b)
}
