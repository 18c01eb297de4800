// File: algo/rotate_test.go
// License: Apache-2.0

package algo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rotated builds the expected result without touching the input.
func rotated(s []int, k int) []int {
	n := len(s)
	if n == 0 {
		return nil
	}
	k = ((k % n) + n) % n
	out := make([]int, 0, n)
	out = append(out, s[k:]...)
	out = append(out, s[:k]...)
	return out
}

var rotateVariants = map[string]func([]int, int){
	"reversal":  RotateReversal[int],
	"juggling":  RotateJuggling[int],
	"blockswap": RotateBlockSwap[int],
	"default":   Rotate[int],
}

func TestRotateBasic(t *testing.T) {
	for name, rotate := range rotateVariants {
		t.Run(name, func(t *testing.T) {
			s := []int{1, 2, 3, 4, 5}
			rotate(s, 2)
			assert.Equal(t, []int{3, 4, 5, 1, 2}, s)
		})
	}
}

func TestRotateEdgeCases(t *testing.T) {
	for name, rotate := range rotateVariants {
		t.Run(name, func(t *testing.T) {
			empty := []int{}
			rotate(empty, 3) // must not panic

			one := []int{7}
			rotate(one, 5)
			assert.Equal(t, []int{7}, one)

			full := []int{1, 2, 3}
			rotate(full, 3) // k == n is identity
			assert.Equal(t, []int{1, 2, 3}, full)

			neg := []int{1, 2, 3, 4}
			rotate(neg, -1) // negative k rotates right
			assert.Equal(t, []int{4, 1, 2, 3}, neg)

			over := []int{1, 2, 3, 4}
			rotate(over, 6) // k > n wraps
			assert.Equal(t, []int{3, 4, 1, 2}, over)
		})
	}
}

func TestRotateRandomizedAgainstModel(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for name, rotate := range rotateVariants {
		t.Run(name, func(t *testing.T) {
			for trial := 0; trial < 200; trial++ {
				n := 1 + rng.Intn(50)
				k := rng.Intn(3*n) - n
				s := make([]int, n)
				for i := range s {
					s[i] = rng.Intn(1000)
				}
				want := rotated(s, k)
				rotate(s, k)
				require.Equal(t, want, s, "n=%d k=%d", n, k)
			}
		})
	}
}

func BenchmarkRotateReversal(b *testing.B)  { benchRotate(b, RotateReversal[int]) }
func BenchmarkRotateJuggling(b *testing.B)  { benchRotate(b, RotateJuggling[int]) }
func BenchmarkRotateBlockSwap(b *testing.B) { benchRotate(b, RotateBlockSwap[int]) }

func benchRotate(b *testing.B, rotate func([]int, int)) {
	s := make([]int, 1<<14)
	for i := range s {
		s[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rotate(s, 4999)
	}
}
