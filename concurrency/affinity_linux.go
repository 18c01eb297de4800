//go:build linux

// File: concurrency/affinity_linux.go
// License: Apache-2.0

package concurrency

import (
	"runtime"

	"golang.org/x/sys/unix"
)

func platformPin(cpuID int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	return unix.SchedSetaffinity(0, &set)
}

func platformUnpin() error {
	var set unix.CPUSet
	set.Zero()
	for i := 0; i < runtime.NumCPU(); i++ {
		set.Set(i)
	}
	return unix.SchedSetaffinity(0, &set)
}
