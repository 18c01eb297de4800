// File: api/counter.go
// License: Apache-2.0

package api

// Counter is a thread-safe event counter.
type Counter interface {
	// Update adds delta and returns the resulting global value. For
	// sharded implementations the returned value may lag behind pending
	// per-shard contributions.
	Update(delta int64) int64
	// Get returns the global value without flushing shards.
	Get() int64
	// Collect flushes all pending per-shard state and returns the exact
	// value.
	Collect() int64
}
