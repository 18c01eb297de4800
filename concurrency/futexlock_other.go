//go:build !linux

// File: concurrency/futexlock_other.go
// License: Apache-2.0
//
// Portable FutexLock fallback where the futex syscall is unavailable.

package concurrency

import "sync"

var _ sync.Locker = (*FutexLock)(nil)

// FutexLock degrades to a sync.Mutex off Linux; same surface, same
// semantics, the runtime's own parking replaces the explicit futex.
type FutexLock struct {
	mu sync.Mutex
}

// Lock acquires the lock.
func (l *FutexLock) Lock() { l.mu.Lock() }

// Unlock releases the lock.
func (l *FutexLock) Unlock() { l.mu.Unlock() }

// TryLock acquires the lock without blocking; reports whether it succeeded.
func (l *FutexLock) TryLock() bool { return l.mu.TryLock() }
