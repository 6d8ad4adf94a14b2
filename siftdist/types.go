// SPDX-License-Identifier: MIT

package siftdist

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Number is the element type of descriptors and distances. It must be signed
// so that bin differences can be formed without wrap-around.
type Number interface {
	constraints.Signed | constraints.Float
}

var (
	// ErrBadBins indicates fewer than two orientation bins per cell.
	ErrBadBins = errors.New("siftdist: bins per cell must be greater than 1")

	// ErrBadCells indicates fewer than one cell per descriptor.
	ErrBadCells = errors.New("siftdist: cells per descriptor must be greater than 0")

	// ErrDescriptorLength indicates a descriptor whose length is not cells·bins.
	ErrDescriptorLength = errors.New("siftdist: descriptor length must equal cells*bins")

	// ErrCellLength indicates two cell histograms of different or too short length.
	ErrCellLength = errors.New("siftdist: cell histograms must have the same length > 1")

	// ErrThresholdLength indicates a threshold sequence whose length is not cells.
	ErrThresholdLength = errors.New("siftdist: thresholds must have one entry per cell")

	// ErrNegativeThreshold indicates a negative (or NaN) threshold.
	ErrNegativeThreshold = errors.New("siftdist: thresholds must be non-negative")

	// ErrThresholdOrder indicates a decreasing threshold sequence.
	ErrThresholdOrder = errors.New("siftdist: thresholds must be non-decreasing")

	// ErrBadGamma indicates a negative or NaN threshold profile exponent.
	ErrBadGamma = errors.New("siftdist: threshold gamma must be non-negative")

	// ErrEmptySet indicates an empty descriptor set passed to Pairwise.
	ErrEmptySet = errors.New("siftdist: descriptor sets must be non-empty")
)

// Thresholds holds one stop value per cell, non-negative and non-decreasing.
// Entry i bounds the running distance after cell i; a nil Thresholds
// disables pruning. Build it with NewThresholds or ScaledThresholds.
type Thresholds[T Number] []T

// Last returns the value returned by a pruned distance computation.
func (t Thresholds[T]) Last() T { return t[len(t)-1] }
