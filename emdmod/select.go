// SPDX-License-Identifier: MIT

package emdmod

// selectDesc rearranges idx so that the element at rank k, when idx is
// ordered by key[idx[·]] in descending order, ends up at idx[k], and returns
// it. Elements before k are ≥ and elements after are ≤ the selected key.
//
// Quickselect with a median-of-three pivot and a three-way partition, so runs
// of equal keys (frequent in cumulative differences of sparse histograms) are
// settled in a single pass.
//
// Contract: 0 ≤ k < len(idx); keys must not be NaN.
//
// Complexity: O(n) expected, O(n²) worst case.
func selectDesc(idx []int, key []float64, k int) int {
	lo, hi := 0, len(idx)-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		pivot := median3(key[idx[lo]], key[idx[mid]], key[idx[hi]])

		// [lo,lt) > pivot, [lt,gt] == pivot, (gt,hi] < pivot
		lt, i, gt := lo, lo, hi
		for i <= gt {
			v := key[idx[i]]
			switch {
			case v > pivot:
				idx[lt], idx[i] = idx[i], idx[lt]
				lt++
				i++
			case v < pivot:
				idx[i], idx[gt] = idx[gt], idx[i]
				gt--
			default:
				i++
			}
		}

		switch {
		case k < lt:
			hi = lt - 1
		case k > gt:
			lo = gt + 1
		default:
			return idx[k]
		}
	}

	return idx[k]
}

// median3 returns the median of three values.
func median3(a, b, c float64) float64 {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		return a
	}

	return b
}
