// SPDX-License-Identifier: MIT

package ratiomatch

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cyclemd/siftdist"
)

// Matcher runs ratio matching with fixed Options. It is safe for concurrent use.
type Matcher struct {
	opts    Options
	metric  *siftdist.Metric[float64]
	profile siftdist.Profile // nil with NoRatio
	log     logrus.FieldLogger
}

// New validates opts and returns a Matcher.
//
// Errors: ErrBadRatio, ErrBadGamma, ErrBadBins, ErrBadSpatialBins,
// ErrBadMagnif, ErrBadOverlap.
func New(opts Options) (*Matcher, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	cells := opts.SpatialBins * opts.SpatialBins
	metric, err := siftdist.New[float64](opts.Bins, cells)
	if err != nil {
		return nil, fmt.Errorf("ratiomatch: %w", err)
	}

	m := &Matcher{opts: opts, metric: metric, log: opts.Logger}
	if opts.DistRatio != NoRatio {
		if m.profile, err = siftdist.NewProfile(cells, opts.StopGamma); err != nil {
			return nil, fmt.Errorf("ratiomatch: %w", err)
		}
	}
	if m.log == nil {
		m.log = discardLogger()
	}
	if m.opts.Workers <= 0 {
		m.opts.Workers = DefaultOptions().Workers
	}

	return m, nil
}

// Dim returns the expected descriptor length, Bins · SpatialBins².
func (m *Matcher) Dim() int { return m.metric.Dim() }

// Match returns one Match per descriptor of d1. f1 and f2 hold the keypoint
// frames of d1 and d2.
//
// Errors: ErrEmptySet, ErrFrameCount, wrapped siftdist.ErrDescriptorLength,
// ctx.Err().
//
// Complexity: O(|d1|·|d2|·Dim) time in the worst case, O(Workers·(|d1|+|d2|))
// scratch memory.
func (m *Matcher) Match(ctx context.Context, d1 [][]float64, f1 []Frame, d2 [][]float64, f2 []Frame) ([]Match, error) {
	if len(d1) == 0 || len(d2) == 0 {
		return nil, ErrEmptySet
	}
	if len(f1) != len(d1) || len(f2) != len(d2) {
		return nil, ErrFrameCount
	}
	if err := m.checkSet(1, d1); err != nil {
		return nil, err
	}
	if err := m.checkSet(2, d2); err != nil {
		return nil, err
	}

	s1 := side{desc: d1, frames: f1, radii: m.radii(f1)}
	s2 := side{desc: d2, frames: f2, radii: m.radii(f2)}
	out := make([]Match, len(d1))

	start := time.Now()
	batch := (len(d1) + m.opts.Workers - 1) / m.opts.Workers
	g, ctx := errgroup.WithContext(ctx)
	for b, lo := 0, 0; lo < len(d1); b, lo = b+1, lo+batch {
		b, lo := b, lo
		hi := min(lo+batch, len(d1))
		g.Go(func() error {
			w := m.newWorker(len(d1), len(d2))
			matched := 0
			for c := lo; c < hi; c++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				res, err := w.match(c, s1, s2)
				if err != nil {
					return err
				}
				out[c] = res
				if res.Matched() {
					matched++
				}
			}
			m.log.WithFields(logrus.Fields{
				"action":  "ratio_match_batch",
				"batch":   b,
				"rows":    hi - lo,
				"matched": matched,
			}).Debug("batch done")

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matched := 0
	for _, r := range out {
		if r.Matched() {
			matched++
		}
	}
	m.log.WithFields(logrus.Fields{
		"action":  "ratio_match",
		"set1":    len(d1),
		"set2":    len(d2),
		"matched": matched,
		"took":    time.Since(start),
	}).Debug("ratio matching done")

	return out, nil
}

func (m *Matcher) checkSet(set int, d [][]float64) error {
	dim := m.metric.Dim()
	for i, v := range d {
		if len(v) != dim {
			return fmt.Errorf("ratiomatch: set %d descriptor %d has %d values, want %d: %w",
				set, i, len(v), dim, siftdist.ErrDescriptorLength)
		}
	}

	return nil
}

func (m *Matcher) radii(frames []Frame) []float64 {
	k := m.opts.Magnif * float64(m.opts.SpatialBins) / 2
	r := make([]float64, len(frames))
	for i, f := range frames {
		r[i] = f.Scale * k
	}

	return r
}

// side is one descriptor set together with its keypoint geometry.
type side struct {
	desc   [][]float64
	frames []Frame
	radii  []float64
}

// worker owns the scratch state of one batch.
type worker struct {
	m    *Matcher
	to2  []float64 // distances from the current query to set 2
	to1  []float64 // distances from its nearest neighbour back to set 1
	stop siftdist.Thresholds[float64]
}

func (m *Matcher) newWorker(n1, n2 int) *worker {
	w := &worker{m: m, to2: make([]float64, n2), to1: make([]float64, n1)}
	if m.profile != nil {
		w.stop = make(siftdist.Thresholds[float64], len(m.profile))
	}

	return w
}

// match handles query c of set 1.
func (w *worker) match(c int, s1, s2 side) (Match, error) {
	nn2, err := w.nearest(s1.desc[c], s2.desc, w.to2)
	if err != nil {
		return Match{}, err
	}
	nn1, err := w.nearest(s2.desc[nn2], s1.desc, w.to1)
	if err != nil {
		return Match{}, err
	}
	if nn1 != c {
		return Match{Index: -1}, nil
	}

	second1 := secondNearest(w.to1, c, s1, w.m.opts.MaxOverlap)
	second2 := secondNearest(w.to2, nn2, s2, w.m.opts.MaxOverlap)

	ratio := 1.0
	if second := min(second1, second2); second != 0 {
		ratio = second / w.to1[c]
	}
	if w.m.opts.DistRatio != NoRatio && ratio < w.m.opts.DistRatio {
		return Match{Index: -1}, nil
	}

	return Match{Index: nn2, Ratio: ratio}, nil
}

// nearest fills dists[i] with the distance from fixed to set[i] and returns
// the index of the smallest. The first distance is exact; every later one is
// pruned against profile·best·DistRatio, refreshed each time best improves.
// Pruned entries are ≥ best·DistRatio, so they never become the minimum.
func (w *worker) nearest(fixed []float64, set [][]float64, dists []float64) (int, error) {
	var stop siftdist.Thresholds[float64]
	best := 0
	for i, d := range set {
		v, err := w.m.metric.Distance(d, fixed, stop)
		if err != nil {
			return 0, err
		}
		dists[i] = v
		if i == 0 || v < dists[best] {
			best = i
			if w.stop != nil {
				stop = siftdist.ScaleProfile(w.stop, w.m.profile, v*w.m.opts.DistRatio)
			}
		}
	}

	return best, nil
}

// secondNearest returns the smallest dists[i], i ≠ nn, among keypoints that
// overlap keypoint nn by at most maxOverlap; +Inf when there is none.
func secondNearest(dists []float64, nn int, s side, maxOverlap float64) float64 {
	ref := s.frames[nn]
	second := math.Inf(1)
	for i, d := range dists {
		if i == nn || d >= second {
			continue
		}
		f := s.frames[i]
		if CircleOverlap(f.X, f.Y, s.radii[i], ref.X, ref.Y, s.radii[nn]) <= maxOverlap {
			second = d
		}
	}

	return second
}
