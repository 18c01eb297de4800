// File: algo/induction.go
// License: Apache-2.0
//
// Recursive-induction generators: each builds the size-n answer from the
// size-(n-1) answer.

package algo

// BinaryStrings returns every binary string of exactly n digits, in
// ascending numeric order. n == 0 yields the single empty string.
func BinaryStrings(n int) []string {
	if n == 0 {
		return []string{""}
	}

	shorter := BinaryStrings(n - 1)
	out := make([]string, 0, 2*len(shorter))
	for _, s := range shorter {
		out = append(out, s+"0", s+"1")
	}
	return out
}

// Permutations returns every permutation of s. The last element is removed,
// the shorter slice is permuted, and the removed element is interpolated at
// every position of every shorter permutation.
func Permutations[T any](s []T) [][]T {
	if len(s) == 0 {
		return [][]T{{}}
	}

	last := s[len(s)-1]
	shorter := Permutations(s[:len(s)-1])

	out := make([][]T, 0, len(shorter)*len(s))
	for _, p := range shorter {
		for i := 0; i <= len(p); i++ {
			perm := make([]T, 0, len(p)+1)
			perm = append(perm, p[:i]...)
			perm = append(perm, last)
			perm = append(perm, p[i:]...)
			out = append(out, perm)
		}
	}
	return out
}
