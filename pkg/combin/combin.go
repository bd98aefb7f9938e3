// Package combin provides the small combinatorics helpers patternlock uses
// for dot-choice statistics and for brute-force cross-checks of the pattern
// tree: index sequences, factorials, binomial coefficients, k-subsets and
// permutations.
package combin

import "slices"

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	if n <= 0 {
		return []int{}
	}
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// Factorial returns n! (n factorial), the product 1 × 2 × ... × n.
// For n <= 1, Factorial returns 1.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// Choose returns the binomial coefficient C(n, k): the number of ways to pick
// k of n elements regardless of order. It returns 0 when k < 0 or k > n.
func Choose(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	result := 1
	for i := 1; i <= k; i++ {
		// Exact at every step: result holds C(n-k+i-1, i-1).
		result = result * (n - k + i) / i
	}
	return result
}

// Combinations returns every k-element subset of elems, each in the order the
// elements appear in elems. Subsets are produced in lexicographic order of
// their positions.
//
// For k == 0 Combinations returns one empty subset; for k < 0 or k > len(elems)
// it returns nil. Each returned slice is a separate allocation.
func Combinations[T any](elems []T, k int) [][]T {
	if k < 0 || k > len(elems) {
		return nil
	}
	result := make([][]T, 0, Choose(len(elems), k))
	idx := Seq(k)
	for {
		subset := make([]T, k)
		for i, j := range idx {
			subset[i] = elems[j]
		}
		result = append(result, subset)

		// Advance the rightmost index that still has room.
		i := k - 1
		for i >= 0 && idx[i] == len(elems)-k+i {
			i--
		}
		if i < 0 {
			return result
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Generate returns permutations of [0, 1, ..., n-1] using Heap's algorithm.
//
// If limit > 0, Generate returns at most limit permutations.
// If limit <= 0, Generate returns all n! permutations.
//
// Each returned slice is a separate allocation, safe to modify without affecting others.
//
// Generate handles edge cases gracefully:
//   - n = 0: returns [[]] (one empty permutation)
//   - n = 1: returns [[0]] (one single-element permutation)
//
// Heap's algorithm generates permutations in a non-lexicographic order, but
// efficiently produces each permutation exactly once.
func Generate(n, limit int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	if n == 1 {
		return [][]int{{0}}
	}

	perm := Seq(n)
	state := make([]int, n)

	capacity := limit
	if capacity <= 0 || n <= 12 {
		capacity = Factorial(min(n, 12))
	}
	result := make([][]int, 0, capacity)
	result = append(result, slices.Clone(perm))

	for i := 0; i < n && (limit <= 0 || len(result) < limit); {
		if state[i] < i {
			if i&1 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[state[i]], perm[i] = perm[i], perm[state[i]]
			}
			result = append(result, slices.Clone(perm))
			state[i]++
			i = 0
		} else {
			state[i] = 0
			i++
		}
	}
	return result
}

// Arrangements returns the number of ordered selections of k out of n
// elements, n!/(n-k)!.
func Arrangements(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	result := 1
	for i := n - k + 1; i <= n; i++ {
		result *= i
	}
	return result
}
