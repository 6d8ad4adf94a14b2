// SPDX-License-Identifier: MIT

// Package cyclic holds the index arithmetic shared by the cyclic histogram
// distances: ground distance on a ring of n bins, positive modulo and the
// rotated processing order used to cut a ring into a line.
package cyclic

import "golang.org/x/exp/constraints"

// Distance returns the ground distance between bins i and j on a ring of n
// bins, i.e. the shorter of the two arcs: min(|i-j|, n-|i-j|).
//
// Contract: 0 ≤ i, j < n. The result is symmetric in i and j.
//
// Complexity: O(1).
func Distance[I constraints.Integer](i, j, n I) I {
	d := i - j
	if i < j {
		d = j - i
	}

	return min(d, n-d)
}

// Mod returns the non-negative remainder of x modulo n (n > 0), so that
// Mod(-1, n) == n-1.
func Mod[I constraints.Signed](x, n I) I {
	r := x % n
	if r < 0 {
		r += n
	}

	return r
}

// Order fills dst with the n ring positions starting at start and walking
// forward: dst[t] = (start + t) mod n. A nil or short dst is reallocated.
//
// Complexity: O(n).
func Order(dst []int, start, n int) []int {
	if cap(dst) < n {
		dst = make([]int, n)
	}
	dst = dst[:n]

	i := Mod(start, n)
	for t := 0; t < n; t++ {
		dst[t] = i
		i++
		if i == n {
			i = 0
		}
	}

	return dst
}
