// SPDX-License-Identifier: MIT

package ratiomatch

import (
	"errors"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
)

// NoRatio as Options.DistRatio disables the ratio test and threshold pruning.
const NoRatio = -1.0

const (
	// DefaultDistRatio is the minimal accepted second/first distance ratio.
	DefaultDistRatio = 1.25
	// DefaultStopGamma shapes the per-cell stop thresholds.
	DefaultStopGamma = 0.7
	// DefaultBins is the number of orientation bins per cell.
	DefaultBins = 16
	// DefaultSpatialBins is the cell grid side; cells = SpatialBins².
	DefaultSpatialBins = 4
	// DefaultMagnif is the descriptor window magnification factor.
	DefaultMagnif = 3.0
	// DefaultMaxOverlap is the largest overlap a second neighbour may have.
	DefaultMaxOverlap = 0.5
)

var (
	// ErrBadRatio indicates a DistRatio below 1 that is not NoRatio.
	ErrBadRatio = errors.New("ratiomatch: dist ratio must be >= 1 or NoRatio")

	// ErrBadGamma indicates a negative or NaN StopGamma.
	ErrBadGamma = errors.New("ratiomatch: stop gamma must be non-negative")

	// ErrBadOverlap indicates a MaxOverlap outside [0, 1].
	ErrBadOverlap = errors.New("ratiomatch: max overlap must be in [0, 1]")

	// ErrBadMagnif indicates a Magnif below 1.
	ErrBadMagnif = errors.New("ratiomatch: magnif must be >= 1")

	// ErrBadBins indicates fewer than two orientation bins.
	ErrBadBins = errors.New("ratiomatch: orientation bins must be greater than 1")

	// ErrBadSpatialBins indicates a spatial grid side below 1.
	ErrBadSpatialBins = errors.New("ratiomatch: spatial bins must be greater than 0")

	// ErrFrameCount indicates a frame slice not aligned with its descriptors.
	ErrFrameCount = errors.New("ratiomatch: need exactly one frame per descriptor")

	// ErrEmptySet indicates an empty descriptor set.
	ErrEmptySet = errors.New("ratiomatch: descriptor sets must be non-empty")
)

// Frame is the keypoint a descriptor was computed at.
type Frame struct {
	X, Y        float64
	Scale       float64
	Orientation float64
}

// Match is the outcome for one descriptor of set 1.
type Match struct {
	// Index into set 2, or -1 when there is no match.
	Index int
	// Ratio is the second-to-first distance ratio of an accepted match, 0 otherwise.
	Ratio float64
}

// Matched reports whether the match was accepted.
func (m Match) Matched() bool { return m.Index >= 0 }

// Options configures a Matcher.
type Options struct {
	DistRatio   float64 // ≥ 1, or NoRatio
	StopGamma   float64 // threshold profile exponent, ≥ 0
	Bins        int     // orientation bins per cell, > 1
	SpatialBins int     // cell grid side, ≥ 1
	Magnif      float64 // ≥ 1
	MaxOverlap  float64 // in [0, 1]

	// Workers bounds the number of concurrent batches; ≤ 0 means GOMAXPROCS.
	Workers int

	// Logger receives debug progress entries. nil discards them.
	Logger logrus.FieldLogger
}

// DefaultOptions returns 16 orientation bins on a 4×4 cell grid (256-value
// descriptors), ratio 1.25, gamma 0.7, magnif 3 and max overlap 0.5.
func DefaultOptions() Options {
	return Options{
		DistRatio:   DefaultDistRatio,
		StopGamma:   DefaultStopGamma,
		Bins:        DefaultBins,
		SpatialBins: DefaultSpatialBins,
		Magnif:      DefaultMagnif,
		MaxOverlap:  DefaultMaxOverlap,
		Workers:     runtime.GOMAXPROCS(0),
	}
}

func (o Options) validate() error {
	if o.DistRatio != NoRatio && !(o.DistRatio >= 1) {
		return ErrBadRatio
	}
	if !(o.StopGamma >= 0) {
		return ErrBadGamma
	}
	if o.Bins < 2 {
		return ErrBadBins
	}
	if o.SpatialBins < 1 {
		return ErrBadSpatialBins
	}
	if !(o.Magnif >= 1) {
		return ErrBadMagnif
	}
	if !(o.MaxOverlap >= 0 && o.MaxOverlap <= 1) {
		return ErrBadOverlap
	}

	return nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
