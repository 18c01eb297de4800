//go:build !linux

// File: concurrency/affinity_other.go
// License: Apache-2.0
//
// Stub for platforms without sched_setaffinity.

package concurrency

func platformPin(cpuID int) error { return ErrAffinityNotSupported }

func platformUnpin() error { return nil }
