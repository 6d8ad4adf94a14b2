// SPDX-License-Identifier: MIT

package emdmod

import "github.com/katalvlaran/cyclemd/cyclic"

// Distance computes the EMD between equal-mass histograms p and q on a ring
// of n = len(p) bins, with ground distance cyclic.Distance(i, j, n).
// Returns (cost, flow, error); flow is nil unless opts.RecordFlow is set.
//
// Algorithm Outline:
//  1. F[i] = ΣP[0..i] − ΣQ[0..i] for i = 0..n−1.
//  2. cut = index holding rank n/2 of F in descending order (a median of F),
//     found by quickselect.
//  3. I[t] = (cut + 1 + t) mod n: the ring opened right after the cut.
//  4. Walk two cursors over I: tP skips bins where the remaining p is zero,
//     tQ skips bins where the remaining q is zero. Move f = min(p[iP], q[iQ])
//     from iP to iQ, add f·d(iP, iQ) to the cost, record (iP, f) under iQ.
//  5. Stop as soon as either cursor has passed all n positions.
//
// Opening the ring at a median of F makes the greedy line plan optimal for
// the ring; measuring each move with the ring distance can only shorten it.
//
// Errors:
//   - ErrBadTolerance    — negative MassTolerance.
//   - ErrEmptyHistogram  — len(p) == 0 or len(q) == 0.
//   - ErrLengthMismatch  — len(p) != len(q).
//   - ErrNegativeMass    — negative, NaN or ±Inf bin.
//   - ErrMassMismatch    — totals differ beyond the tolerance.
//
// Complexity:
//
//	Time   = O(n) expected
//	Memory = O(n), plus O(n) transfers when RecordFlow is set
func Distance(p, q []float64, opts Options) (cost float64, flow Flow, err error) {
	if err = validate(p, q, opts); err != nil {
		return 0, nil, err
	}
	n := len(p)

	// Working copies: the walk consumes remaining mass in place.
	a := make([]float64, n)
	b := make([]float64, n)
	copy(a, p)
	copy(b, q)

	// 1) cumulative differences
	f := make([]float64, n)
	var ca, cb float64
	for i := 0; i < n; i++ {
		ca += p[i]
		cb += q[i]
		f[i] = ca - cb
	}

	// 2) median cut
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	cut := selectDesc(idx, f, n/2)

	// 3) processing order; idx is free scratch now
	order := cyclic.Order(idx, cut+1, n)

	if opts.RecordFlow {
		flow = make(Flow, n)
	}

	// 4) greedy two-cursor transport
	tA, tB := 0, 0
	iA, iB := order[0], order[0]
	for {
		for a[iA] == 0 {
			if tA++; tA == n {
				return cost, flow, nil
			}
			iA = order[tA]
		}
		for b[iB] == 0 {
			if tB++; tB == n {
				return cost, flow, nil
			}
			iB = order[tB]
		}

		m := min(a[iA], b[iB])
		a[iA] -= m
		b[iB] -= m
		cost += m * float64(cyclic.Distance(iA, iB, n))

		if flow != nil {
			flow[iB] = append(flow[iB], Transfer{From: iA, Amount: m})
		}
	}
}
