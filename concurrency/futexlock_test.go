// File: concurrency/futexlock_test.go
// License: Apache-2.0

package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFutexLockMutualExclusion(t *testing.T) {
	var l FutexLock
	const goroutines = 8
	const perGoroutine = 20_000

	counter := 0
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				l.Lock()
				counter++
				l.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines*perGoroutine, counter)
}

func TestFutexLockTryLock(t *testing.T) {
	var l FutexLock

	assert.True(t, l.TryLock())
	assert.False(t, l.TryLock())
	l.Unlock()
	assert.True(t, l.TryLock())
	l.Unlock()
}

func TestFutexLockHandoff(t *testing.T) {
	var l FutexLock
	l.Lock()

	acquired := make(chan struct{})
	go func() {
		l.Lock() // must sleep until the holder releases
		close(acquired)
		l.Unlock()
	}()

	select {
	case <-acquired:
		t.Fatal("lock acquired while held")
	default:
	}

	l.Unlock()
	<-acquired
}
