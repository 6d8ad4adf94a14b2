// SPDX-License-Identifier: MIT

package siftdist

// Metric computes distances between descriptors of a fixed shape.
// A Metric is immutable and safe for concurrent use.
type Metric[T Number] struct {
	bins  int
	cells int
}

// New returns a Metric for descriptors of cells × bins values.
//
// Errors: ErrBadBins, ErrBadCells.
func New[T Number](bins, cells int) (*Metric[T], error) {
	if bins < 2 {
		return nil, ErrBadBins
	}
	if cells < 1 {
		return nil, ErrBadCells
	}

	return &Metric[T]{bins: bins, cells: cells}, nil
}

// Bins returns the number of orientation bins per cell.
func (m *Metric[T]) Bins() int { return m.bins }

// Cells returns the number of cells per descriptor.
func (m *Metric[T]) Cells() int { return m.cells }

// Dim returns the descriptor length, Cells()·Bins().
func (m *Metric[T]) Dim() int { return m.bins * m.cells }

// Distance returns the sum of per-cell distances between a and b.
//
// With non-nil stop, the running sum is compared against stop[i] after cell
// i; once it reaches that value the scan ends and stop.Last() is returned.
// Any returned value v is therefore either the exact distance, or
// stop.Last() with the exact distance known to be ≥ stop[i] for some i.
//
// Errors: ErrDescriptorLength, ErrThresholdLength.
//
// Complexity: O(Cells·Bins).
func (m *Metric[T]) Distance(a, b []T, stop Thresholds[T]) (T, error) {
	if err := m.check(a, b, stop); err != nil {
		return 0, err
	}

	return m.distance(a, b, stop), nil
}

func (m *Metric[T]) check(a, b []T, stop Thresholds[T]) error {
	dim := m.Dim()
	if len(a) != dim || len(b) != dim {
		return ErrDescriptorLength
	}
	if stop != nil && len(stop) != m.cells {
		return ErrThresholdLength
	}

	return nil
}

// distance is Distance without argument checks.
func (m *Metric[T]) distance(a, b []T, stop Thresholds[T]) T {
	var dist T
	n := m.bins
	for c, off := 0, 0; c < m.cells; c, off = c+1, off+n {
		dist += cellDistance(a[off:off+n], b[off:off+n])
		if stop != nil && dist >= stop[c] {
			return stop[m.cells-1]
		}
	}

	return dist
}

// Distance is a one-shot form of New(bins, cells) followed by Metric.Distance.
//
// Errors: ErrBadBins, ErrBadCells, ErrDescriptorLength, ErrThresholdLength.
func Distance[T Number](a, b []T, cells, bins int, stop Thresholds[T]) (T, error) {
	m, err := New[T](bins, cells)
	if err != nil {
		return 0, err
	}

	return m.Distance(a, b, stop)
}
