// File: concurrency/counter.go
// License: Apache-2.0
//
// Exact and approximate concurrent counters. The approximate counter trades
// read freshness for update scalability: updates land on per-shard locals
// and migrate to the global value only every threshold updates, so Get may
// lag by up to threshold in-flight increments.

package concurrency

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/hotring/ringkit/api"
)

var (
	_ api.Counter = (*ExactCounter)(nil)
	_ api.Counter = (*ApproxCounter)(nil)
)

// ExactCounter is a mutex-guarded counter. Every Update takes the one lock,
// which is the scalability bottleneck ApproxCounter exists to avoid.
type ExactCounter struct {
	mu sync.Mutex
	n  int64
}

// Update adds delta and returns the new value.
func (c *ExactCounter) Update(delta int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n += delta
	return c.n
}

// Get returns the current value.
func (c *ExactCounter) Get() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

// Collect is Get; an exact counter has nothing to flush.
func (c *ExactCounter) Collect() int64 { return c.Get() }

// shard keeps each local counter on its own cache line.
type shard struct {
	mu sync.Mutex
	n  int64
	_  cpu.CacheLinePad
}

// ApproxCounter spreads updates over shards chosen round-robin and flushes
// the locals into the atomic global every threshold updates.
type ApproxCounter struct {
	threshold uint64
	global    atomic.Int64
	updates   atomic.Uint64
	shards    []shard
}

// NewApproxCounter creates a counter with the given flush threshold and
// shard count. Panics if threshold or shards is not positive.
func NewApproxCounter(threshold uint64, shards int) *ApproxCounter {
	if threshold < 1 {
		panic("concurrency: threshold must be at least 1")
	}
	if shards < 1 {
		panic("concurrency: shard count must be at least 1")
	}
	return &ApproxCounter{
		threshold: threshold,
		shards:    make([]shard, shards),
	}
}

// Update adds delta to a round-robin shard and returns the global value,
// which may lag pending shard contributions.
func (c *ApproxCounter) Update(delta int64) int64 {
	u := c.updates.Add(1)

	s := &c.shards[u%uint64(len(c.shards))]
	s.mu.Lock()
	s.n += delta
	s.mu.Unlock()

	if u >= c.threshold {
		c.updates.Store(0)
		c.flush()
	}

	return c.global.Load()
}

// Get returns the global value without flushing shards (approximate).
func (c *ApproxCounter) Get() int64 {
	return c.global.Load()
}

// Collect flushes every shard and returns the exact value.
func (c *ApproxCounter) Collect() int64 {
	c.flush()
	return c.global.Load()
}

func (c *ApproxCounter) flush() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		c.global.Add(s.n)
		s.n = 0
		s.mu.Unlock()
	}
}
