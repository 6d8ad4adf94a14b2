package siftdist_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cyclemd/siftdist"
)

// benchmarkDistance measures 16-cell × 8-bin (SIFT-128) distances.
func benchmarkDistance(b *testing.B, pruned bool) {
	rng := rand.New(rand.NewSource(1))
	m, err := siftdist.New[float32](8, 16)
	if err != nil {
		b.Fatal(err)
	}
	x := make([]float32, m.Dim())
	y := make([]float32, m.Dim())
	for i := range x {
		x[i] = float32(rng.Intn(256))
		y[i] = float32(rng.Intn(256))
	}
	var stop siftdist.Thresholds[float32]
	if pruned {
		exact, _ := m.Distance(x, y, nil)
		stop, err = siftdist.ScaledThresholds(exact/2, 0.7, m.Cells())
		if err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Distance(x, y, stop); err != nil {
			b.Fatalf("Distance failed: %v", err)
		}
	}
}

func BenchmarkDistance_SIFT128(b *testing.B)       { benchmarkDistance(b, false) }
func BenchmarkDistance_SIFT128Pruned(b *testing.B) { benchmarkDistance(b, true) }

func BenchmarkCellDistance_Alternating(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	q, p := alternatingCell(rng, 4, 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := siftdist.CellDistance(q, p); err != nil {
			b.Fatal(err)
		}
	}
}
