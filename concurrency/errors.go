// File: concurrency/errors.go
// License: Apache-2.0
//
// Error definitions for the concurrency package.

package concurrency

import "errors"

var (
	// ErrExecutorClosed indicates the executor has been shut down.
	ErrExecutorClosed = errors.New("concurrency: executor is closed")

	// ErrAffinityNotSupported indicates CPU pinning is unavailable on
	// this platform.
	ErrAffinityNotSupported = errors.New("concurrency: CPU affinity not supported")
)
