// SPDX-License-Identifier: MIT

package emdmod

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// validate runs the staged input checks and returns exactly one sentinel:
// options → shape → values → mass balance.
//
// Complexity: O(n).
func validate(p, q []float64, opts Options) error {
	// Stage 1: options.
	if opts.MassTolerance < 0 || math.IsNaN(opts.MassTolerance) {
		return ErrBadTolerance
	}

	// Stage 2: shape.
	if len(p) == 0 || len(q) == 0 {
		return ErrEmptyHistogram
	}
	if len(p) != len(q) {
		return ErrLengthMismatch
	}

	// Stage 3: every bin finite and non-negative.
	if err := checkBins(p); err != nil {
		return err
	}
	if err := checkBins(q); err != nil {
		return err
	}

	// Stage 4: equal total mass within a relative tolerance.
	sp, sq := floats.Sum(p), floats.Sum(q)
	scale := math.Max(1, math.Max(sp, sq))
	if !scalar.EqualWithinAbs(sp, sq, opts.MassTolerance*scale) {
		return ErrMassMismatch
	}

	return nil
}

func checkBins(h []float64) error {
	for _, v := range h {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNegativeMass
		}
	}

	return nil
}
