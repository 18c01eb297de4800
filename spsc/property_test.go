// File: spsc/property_test.go
// License: Apache-2.0
//
// Randomized single-threaded operations checked against a slice model.

package spsc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hotring/ringkit/api"
)

func runModelCheck(t *testing.T, mk func(int) api.Ring[int], seed int64) {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	capacity := 1 + rng.Intn(16)
	ring := mk(capacity)
	var model []int

	for op := 0; op < 5000; op++ {
		switch rng.Intn(3) {
		case 0: // push
			v := rng.Intn(1 << 20)
			ok := ring.TryPush(v)
			require.Equal(t, len(model) < capacity, ok, "push acceptance at op %d", op)
			if ok {
				model = append(model, v)
			}
		case 1: // pop
			v, ok := ring.TryPop()
			require.Equal(t, len(model) > 0, ok, "pop acceptance at op %d", op)
			if ok {
				require.Equal(t, model[0], v, "pop value at op %d", op)
				model = model[1:]
			}
		case 2: // peek
			front := ring.Front()
			if len(model) == 0 {
				require.Nil(t, front)
			} else {
				require.NotNil(t, front)
				require.Equal(t, model[0], *front)
			}
		}

		require.Equal(t, len(model), ring.Len())
		require.Equal(t, len(model) == 0, ring.Empty())
		require.Equal(t, len(model) == capacity, ring.Full())
		require.Equal(t, capacity, ring.Cap())
	}
}

func TestModelMutex(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		runModelCheck(t, func(c int) api.Ring[int] { return NewMutexRing[int](c) }, seed)
	}
}

func TestModelAtomic(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		runModelCheck(t, func(c int) api.Ring[int] { return NewAtomicRing[int](c) }, seed)
	}
}

func TestModelLockFree(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		runModelCheck(t, func(c int) api.Ring[int] { return NewLockFreeRing[int](c) }, seed)
	}
}
