//go:build linux

// File: concurrency/futexlock_linux.go
// License: Apache-2.0
//
// Three-state futex mutex, version 3 from Drepper's "Futexes are Tricky".
// The fast path is one CAS with no syscall; the kernel is entered only when
// a waiter actually has to sleep or be woken.

package concurrency

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Futex operation constants from the Linux ABI (<linux/futex.h>);
// x/sys/unix exports SYS_FUTEX but not these op values.
const (
	_FUTEX_WAIT         = 0
	_FUTEX_WAKE         = 1
	_FUTEX_PRIVATE_FLAG = 0x80
)

const (
	futexUnlocked  uint32 = iota // nobody holds the lock
	futexLocked                  // held, no waiters
	futexContended               // held, at least one waiter in Lock
)

var _ sync.Locker = (*FutexLock)(nil)

// FutexLock is a mutual-exclusion lock backed directly by the futex
// syscall. The zero value is unlocked and ready to use. It must not be
// copied after first use.
type FutexLock struct {
	state atomic.Uint32
}

// cmpxchg emulates compare_exchange returning the previous value.
func (l *FutexLock) cmpxchg(old, new uint32) uint32 {
	for {
		if l.state.CompareAndSwap(old, new) {
			return old
		}
		if cur := l.state.Load(); cur != old {
			return cur
		}
	}
}

// Lock acquires the lock, sleeping in the kernel under contention.
func (l *FutexLock) Lock() {
	s := l.cmpxchg(futexUnlocked, futexLocked)
	if s == futexUnlocked {
		return
	}
	// Advertise that someone is waiting. Swapping to contended even when
	// the lock turns out to be free is the safe side: it costs at most
	// one spurious wake at the next Unlock.
	if s != futexContended {
		s = l.state.Swap(futexContended)
	}
	for s != futexUnlocked {
		futexWait(&l.state, futexContended)
		s = l.state.Swap(futexContended)
	}
}

// Unlock releases the lock and wakes one waiter if any were advertised.
func (l *FutexLock) Unlock() {
	// Add(-1) maps locked->unlocked and contended->locked; only the
	// contended case needs the store-and-wake.
	if l.state.Add(^uint32(0)) != futexUnlocked {
		l.state.Store(futexUnlocked)
		futexWake(&l.state, 1)
	}
}

// TryLock acquires the lock without blocking; reports whether it succeeded.
func (l *FutexLock) TryLock() bool {
	return l.state.CompareAndSwap(futexUnlocked, futexLocked)
}

func futexWait(state *atomic.Uint32, val uint32) {
	// Returns on wake, EAGAIN (value changed first) or EINTR; the caller
	// rechecks the state in all cases.
	unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(state)),
		uintptr(_FUTEX_WAIT|_FUTEX_PRIVATE_FLAG),
		uintptr(val), 0, 0, 0)
}

func futexWake(state *atomic.Uint32, n int) {
	unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(state)),
		uintptr(_FUTEX_WAKE|_FUTEX_PRIVATE_FLAG),
		uintptr(n), 0, 0, 0)
}
