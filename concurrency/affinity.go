// File: concurrency/affinity.go
// License: Apache-2.0
//
// CPU pinning for benchmark-grade producer/consumer placement. Pinning the
// two sides of an SPSC ring to distinct cores keeps cache-line traffic
// measurements honest; it is never required for correctness.

package concurrency

import "runtime"

// Pin binds the calling goroutine to its OS thread and that thread to the
// given CPU. Callers must pair it with Unpin on the same goroutine.
func Pin(cpuID int) error {
	if cpuID < 0 || cpuID >= runtime.NumCPU() {
		return ErrAffinityNotSupported
	}
	runtime.LockOSThread()
	if err := platformPin(cpuID); err != nil {
		runtime.UnlockOSThread()
		return err
	}
	return nil
}

// Unpin clears the thread's CPU mask and releases the goroutine from its
// OS thread.
func Unpin() error {
	err := platformUnpin()
	runtime.UnlockOSThread()
	return err
}
