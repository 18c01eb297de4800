// File: pool/syncpool.go
// License: Apache-2.0

package pool

import "sync"

// ObjectPool is a generic object pool.
type ObjectPool[T any] interface {
	Get() T
	Put(T)
}

// SyncPool wraps sync.Pool for generic usage.
type SyncPool[T any] struct {
	pool sync.Pool
}

// Ensure compile-time interface compliance.
var _ ObjectPool[int] = (*SyncPool[int])(nil)

// NewSyncPool creates a pool producing fresh values with newFn.
func NewSyncPool[T any](newFn func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: sync.Pool{
			New: func() any { return newFn() },
		},
	}
}

// Get returns a pooled or freshly created value.
func (p *SyncPool[T]) Get() T {
	return p.pool.Get().(T)
}

// Put returns a value to the pool.
func (p *SyncPool[T]) Put(v T) {
	p.pool.Put(v)
}
