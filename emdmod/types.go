// SPDX-License-Identifier: MIT

package emdmod

import "errors"

var (
	// ErrEmptyHistogram indicates that one or both histograms have no bins.
	ErrEmptyHistogram = errors.New("emdmod: histograms must be non-empty")

	// ErrLengthMismatch indicates len(p) != len(q).
	ErrLengthMismatch = errors.New("emdmod: histograms must have the same length")

	// ErrNegativeMass indicates a negative, NaN or infinite bin value.
	ErrNegativeMass = errors.New("emdmod: bin values must be finite and non-negative")

	// ErrMassMismatch indicates that the histogram totals differ by more than
	// Options.MassTolerance (relative to the larger total).
	ErrMassMismatch = errors.New("emdmod: histograms must have equal total mass")

	// ErrBadTolerance indicates a negative or NaN Options.MassTolerance.
	ErrBadTolerance = errors.New("emdmod: mass tolerance must be non-negative")
)

// DefaultMassTolerance is the relative slack accepted between sum(p) and sum(q).
const DefaultMassTolerance = 1e-9

// Options configures Distance.
//
// Fields:
//   - RecordFlow    — if true, Distance also returns the optimal Flow plan.
//   - MassTolerance — accepted |sum(p)-sum(q)|, relative to max(1, sum(p), sum(q)).
//     Zero demands exact equality.
type Options struct {
	RecordFlow    bool
	MassTolerance float64
}

// DefaultOptions returns cost-only options with DefaultMassTolerance.
func DefaultOptions() Options {
	return Options{
		RecordFlow:    false,
		MassTolerance: DefaultMassTolerance,
	}
}

// Transfer is one entry of a transport plan: Amount units leave source bin
// From. The destination is the Flow index the entry is stored under.
type Transfer struct {
	From   int
	Amount float64
}

// Flow is an optimal transport plan grouped by destination bin:
// flow[to] lists, in recording order, the transfers arriving at bin `to`.
//
// For a plan produced by Distance(p, q, …):
//   - Σ flow[to][*].Amount            == q[to]
//   - Σ over entries with From == i   == p[i]
type Flow [][]Transfer
