// File: algo/sequence.go
// License: Apache-2.0

package algo

import "cmp"

// MaxConsecutiveSum returns the maximum sum over all runs of consecutive
// elements, with the empty run (sum 0) always a candidate. Single pass:
// alongside the global maximum it maintains the best suffix ending at the
// current element, resetting the suffix whenever it goes negative.
func MaxConsecutiveSum(xs []int) int {
	globalMax, suffixMax := 0, 0
	for _, x := range xs {
		switch {
		case suffixMax+x > globalMax:
			globalMax = suffixMax + x
			suffixMax += x
		case suffixMax+x > 0:
			suffixMax += x
		default:
			suffixMax = 0
		}
	}
	return globalMax
}

// LongestIncreasingSubsequence returns the length of the longest strictly
// increasing subsequence. Quadratic dynamic program over "LIS ending at i".
func LongestIncreasingSubsequence[T cmp.Ordered](xs []T) int {
	if len(xs) == 0 {
		return 0
	}

	dp := make([]int, len(xs)) // dp[i] = LIS length ending exactly at i
	best := 1
	for i := range xs {
		dp[i] = 1
		for j := 0; j < i; j++ {
			if xs[j] < xs[i] && dp[j]+1 > dp[i] {
				dp[i] = dp[j] + 1
			}
		}
		if dp[i] > best {
			best = dp[i]
		}
	}
	return best
}

// EvalPolynomial evaluates a_n*x^n + ... + a_1*x + a_0 by Horner's rule.
// Coefficients run from the highest degree down; an empty slice is the zero
// polynomial.
func EvalPolynomial(coefficients []float64, x float64) float64 {
	p := 0.0
	for _, a := range coefficients {
		p = x*p + a
	}
	return p
}

// TreeNode is a binary tree node for BalanceFactors.
type TreeNode struct {
	Val         int
	Left, Right *TreeNode
}

// BalanceFactors returns the balance factor (left height minus right
// height) of every node, in post-order. One traversal computes heights and
// factors together.
func BalanceFactors(root *TreeNode) []int {
	var factors []int
	var height func(n *TreeNode) int
	height = func(n *TreeNode) int {
		if n == nil {
			return 0
		}
		lh := height(n.Left)
		rh := height(n.Right)
		factors = append(factors, lh-rh)
		return 1 + max(lh, rh)
	}
	height(root)
	return factors
}
