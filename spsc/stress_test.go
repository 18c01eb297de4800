// File: spsc/stress_test.go
// License: Apache-2.0
//
// Concurrent producer/consumer stress: one goroutine pushes 0..N-1, another
// drains with spin-retry; every value must arrive exactly once, in order.

package spsc

import (
	"fmt"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hotring/ringkit/api"
)

const stressItems = 200_000

func runStress(t *testing.T, r api.Ring[int]) {
	t.Helper()

	errc := make(chan error, 1)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for expect := 0; expect < stressItems; expect++ {
			for {
				v, ok := r.TryPop()
				if ok {
					if v != expect {
						errc <- fmt.Errorf("out-of-order delivery: want %d, got %d", expect, v)
						return
					}
					break
				}
				runtime.Gosched()
			}
		}
	}()

	// The done check keeps the producer from spinning on a full ring
	// forever if the consumer bails out early.
push:
	for i := 0; i < stressItems; i++ {
		for !r.TryPush(i) {
			select {
			case <-done:
				break push
			default:
				runtime.Gosched()
			}
		}
	}

	select {
	case <-done:
		select {
		case err := <-errc:
			t.Fatal(err)
		default:
		}
	case <-time.After(30 * time.Second):
		t.Fatal("timeout draining buffer")
	}

	require.True(t, r.Empty())
	require.Equal(t, 0, r.Len())
}

func TestStressMutex(t *testing.T) {
	runStress(t, NewMutexRing[int](128))
}

func TestStressAtomic(t *testing.T) {
	runStress(t, NewAtomicRing[int](128))
}

func TestStressLockFree(t *testing.T) {
	runStress(t, NewLockFreeRing[int](128))
}

// Capacity 1 under concurrency forces a wraparound on every element.
func TestStressLockFreeCapacityOne(t *testing.T) {
	runStress(t, NewLockFreeRing[int](1))
}

func TestStressAtomicCapacityOne(t *testing.T) {
	runStress(t, NewAtomicRing[int](1))
}
