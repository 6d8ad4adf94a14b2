// SPDX-License-Identifier: MIT

// Package siftdist computes a linear-time Earth Mover's Distance between
// multi-cell orientation descriptors (SIFT-like feature vectors).
//
// 🚀 What is SiftDist?
//
//	A descriptor is C spatial cells × N orientation bins, stored cell-major
//	(the bin index runs fastest):
//	  x_1_1, x_1_2, … x_1_N, x_2_1, …
//	Every cell is compared with its counterpart as an independent
//	transportation problem on a ring of N bins whose ground distance is
//	thresholded at 2:
//	  • matching mass in the same bin is free
//	  • moving mass to a neighbouring bin costs 1
//	  • everything else (far moves, unmatched mass) costs 2
//	The descriptor distance is the sum over cells.
//
// ✨ Key features:
//   - O(N) per cell: one anchor search plus one walk around the ring
//   - exact augmenting-path resolver for the rare cell whose one-cost edges
//     alternate all the way around the ring
//   - early termination: with Thresholds the scan stops as soon as the
//     running sum reaches the threshold of the current cell and returns the
//     last threshold, which makes nearest-neighbour search cheap
//   - generic over signed integers and floats (Number)
//   - all-pairs distance matrices with bounded parallelism (Pairwise)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cyclemd/siftdist"
//
//	m, err := siftdist.New[float64](16, 16) // 16 bins × 4×4 cells
//	d, err := m.Distance(a, b, nil)          // exact distance
//
//	stop, err := siftdist.ScaledThresholds(2*best, 0.7, 16)
//	d, err = m.Distance(a, b, stop)          // d == stop[15] when pruned
//
// Performance:
//
//   - Time:   O(C·N) per descriptor pair, less when pruned
//   - Memory: O(1) on the fast path, O(N) on the cyclic-edge path
//
// Reference: O. Pele, M. Werman, "A Linear Time Histogram Metric for Improved
// SIFT Matching", ECCV 2008.
package siftdist
