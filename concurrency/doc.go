// File: concurrency/doc.go
// License: Apache-2.0

// Package concurrency holds the utilities that live alongside the ring
// buffer family: exact and approximate counters, a futex-backed mutex with
// a portable fallback, CPU pinning, and a worker-pool executor whose
// per-worker inboxes are the package's own SPSC rings.
package concurrency
