// SPDX-License-Identifier: MIT

package siftdist

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Pairwise returns the len(set1) × len(set2) matrix D with
// D[i][j] = m.Distance(set1[i], set2[j], stop).
//
// Rows are computed concurrently by at most workers goroutines
// (workers ≤ 0 means runtime.GOMAXPROCS(0)). Cancelling ctx stops the
// remaining rows and returns ctx.Err().
//
// Errors: ErrEmptySet, ErrDescriptorLength, ErrThresholdLength, ctx.Err().
//
// Complexity: O(|set1|·|set2|·Cells·Bins) time, O(|set1|·|set2|) memory.
func Pairwise[T Number](
	ctx context.Context,
	m *Metric[T],
	set1, set2 [][]T,
	stop Thresholds[T],
	workers int,
) (*mat.Dense, error) {
	if len(set1) == 0 || len(set2) == 0 {
		return nil, ErrEmptySet
	}
	if stop != nil && len(stop) != m.cells {
		return nil, ErrThresholdLength
	}
	dim := m.Dim()
	for _, set := range [2][][]T{set1, set2} {
		for _, d := range set {
			if len(d) != dim {
				return nil, ErrDescriptorLength
			}
		}
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	rows, cols := len(set1), len(set2)
	data := make([]float64, rows*cols)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range set1 {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := data[i*cols : (i+1)*cols]
			for j, b := range set2 {
				row[j] = float64(m.distance(set1[i], b, stop))
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mat.NewDense(rows, cols, data), nil
}
