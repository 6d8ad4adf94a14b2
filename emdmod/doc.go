// SPDX-License-Identifier: MIT

// Package emdmod computes the Earth Mover's Distance between two equal-mass
// histograms whose bins lie on a ring, with the modular L1 ground distance
// d(i,j) = min(|i-j|, N-|i-j|). Optionally it also returns the optimal
// transport plan.
//
// 🚀 What is EMD-MOD?
//
//	EMD is the minimal total work (mass × ground distance) needed to turn one
//	histogram into another. When the bins are cyclic (orientations, hues,
//	hours of the day, compass directions) the general O(N³) transportation
//	solve collapses to a linear-time procedure:
//	  • cumulative differences F[i] = ΣP[0..i] − ΣQ[0..i]
//	  • any median of F marks a safe place to cut the ring into a line
//	  • on the line a two-cursor greedy plan is optimal
//
// ✨ Key features:
//   - expected O(N) time via in-place quickselect of the median
//   - optional flow plan (RecordFlow=true), grouped by destination bin
//   - flow plan export as a gonum *mat.Dense (row = source, column = destination)
//   - strict input validation with sentinel errors (no debug-only checks)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cyclemd/emdmod"
//
//	opts := emdmod.DefaultOptions()
//	opts.RecordFlow = true
//
//	cost, flow, err := emdmod.Distance(p, q, opts)
//	if err != nil {
//	  // ErrEmptyHistogram, ErrLengthMismatch, ErrNegativeMass, ErrMassMismatch …
//	}
//	m := flow.Dense() // N×N transport matrix
//
// Performance:
//
//   - Time:   O(N) expected (quickselect), O(N²) worst case for adversarial ties
//   - Memory: O(N) scratch + O(N) flow entries when RecordFlow is set
//
// Reference: O. Pele, M. Werman, "A Linear Time Histogram Metric for Improved
// SIFT Matching", ECCV 2008, Appendix A.
package emdmod
