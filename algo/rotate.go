// File: algo/rotate.go
// License: Apache-2.0
//
// Package algo collects the small generic algorithms that ship alongside the
// ring buffer family: slice rotation, classic induction exercises, and
// sequence utilities. Everything here is single-threaded and allocation-
// conscious; the rotation variants exist to be compared, like the ring
// policies do.

package algo

// Rotate rotates s left by k positions in place using the reversal
// algorithm, the best general-purpose variant. k may exceed len(s).
func Rotate[T any](s []T, k int) {
	RotateReversal(s, k)
}

// RotateReversal rotates via three reversals: reverse the prefix, reverse
// the suffix, reverse the whole. Always 2n swaps, perfectly predictable
// memory access.
func RotateReversal[T any](s []T, k int) {
	n := len(s)
	if n < 2 {
		return
	}
	k = normalize(k, n)
	if k == 0 {
		return
	}
	reverse(s[:k])
	reverse(s[k:])
	reverse(s)
}

// RotateJuggling rotates via gcd(n, k) cycles, moving every element
// directly to its final position. Exactly n element moves, but a cache-
// hostile stride.
func RotateJuggling[T any](s []T, k int) {
	n := len(s)
	if n < 2 {
		return
	}
	k = normalize(k, n)
	if k == 0 {
		return
	}

	for start := 0; start < gcd(n, k); start++ {
		tmp := s[start]
		i := start
		for {
			j := i + k
			if j >= n {
				j -= n
			}
			if j == start {
				break
			}
			s[i] = s[j]
			i = j
		}
		s[i] = tmp
	}
}

// RotateBlockSwap rotates by repeatedly swapping the smaller side into
// place, the forward-iterator algorithm expressed on slices: swap the
// leading k elements with the k elements after them, shrinking the problem
// until the two sides meet.
func RotateBlockSwap[T any](s []T, k int) {
	n := len(s)
	if n < 2 {
		return
	}
	k = normalize(k, n)
	if k == 0 {
		return
	}

	first, middle := 0, k
	m := middle
	for {
		s[first], s[m] = s[m], s[first]
		first++
		m++
		if first == middle {
			if m == n {
				return
			}
			middle = m
		} else if m == n {
			m = middle
		}
	}
}

// normalize reduces k to [0, n) handling negatives (rotate right).
func normalize(k, n int) int {
	k %= n
	if k < 0 {
		k += n
	}
	return k
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
