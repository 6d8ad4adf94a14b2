// SPDX-License-Identifier: MIT

package siftdist

import "math"

// Profile is the per-cell fraction of a stop value: Profile[i] =
// ((i+1)/C)^gamma. It is non-decreasing and ends at exactly 1, so scaling it
// by a limit yields valid Thresholds whose last entry is the limit itself.
type Profile []float64

// NewProfile builds the threshold profile for the given number of cells.
// A gamma below 1 front-loads the budget so that early cells already prune.
//
// Errors: ErrBadCells, ErrBadGamma.
//
// Complexity: O(cells).
func NewProfile(cells int, gamma float64) (Profile, error) {
	if cells < 1 {
		return nil, ErrBadCells
	}
	if gamma < 0 || math.IsNaN(gamma) {
		return nil, ErrBadGamma
	}
	p := make(Profile, cells)
	c := float64(cells)
	for i := range p {
		p[i] = math.Pow(float64(i+1)/c, gamma)
	}

	return p, nil
}

// ScaleProfile writes prof[i]·limit into dst (reallocated when too short) and
// returns it. No validation is done here: it sits on the search hot path,
// where the caller refreshes thresholds every time a better candidate shows
// up. limit must be non-negative.
func ScaleProfile[T Number](dst Thresholds[T], prof Profile, limit T) Thresholds[T] {
	if cap(dst) < len(prof) {
		dst = make(Thresholds[T], len(prof))
	}
	dst = dst[:len(prof)]
	l := float64(limit)
	for i, f := range prof {
		dst[i] = T(f * l)
	}
	// Pin the last entry so Last() is the limit without rounding noise.
	dst[len(dst)-1] = limit

	return dst
}

// ScaledThresholds returns ((i+1)/cells)^gamma · limit for i = 0..cells-1.
//
// Errors: ErrBadCells, ErrBadGamma, ErrNegativeThreshold.
func ScaledThresholds[T Number](limit T, gamma float64, cells int) (Thresholds[T], error) {
	prof, err := NewProfile(cells, gamma)
	if err != nil {
		return nil, err
	}
	if !(limit >= 0) {
		return nil, ErrNegativeThreshold
	}

	return ScaleProfile(nil, prof, limit), nil
}

// NewThresholds validates values as a threshold sequence for the given
// number of cells and returns a private copy.
//
// Errors: ErrBadCells, ErrThresholdLength, ErrNegativeThreshold, ErrThresholdOrder.
//
// Complexity: O(cells).
func NewThresholds[T Number](values []T, cells int) (Thresholds[T], error) {
	if cells < 1 {
		return nil, ErrBadCells
	}
	if len(values) != cells {
		return nil, ErrThresholdLength
	}
	for i, v := range values {
		// !(v >= 0) also rejects NaN for float element types.
		if !(v >= 0) {
			return nil, ErrNegativeThreshold
		}
		if i > 0 && v < values[i-1] {
			return nil, ErrThresholdOrder
		}
	}
	out := make(Thresholds[T], cells)
	copy(out, values)

	return out, nil
}
