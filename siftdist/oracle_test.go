package siftdist_test

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/cyclemd/cyclic"
	"github.com/katalvlaran/cyclemd/internal/maxflow"
)

// oracleCell computes 2·max(A, B) − M for one cell by building the one-cost
// matching network explicitly and solving it with Edmonds–Karp.
func oracleCell(q, p []int64) int64 {
	n := len(q)
	s, t := n, n+1
	capacity := make([][]int64, n+2)
	for i := range capacity {
		capacity[i] = make([]int64, n+2)
	}

	const inf = int64(1 << 40)
	var a, b int64
	for i := 0; i < n; i++ {
		r := q[i] - p[i]
		switch {
		case r > 0:
			a += r
			capacity[s][i] = r
			for _, j := range []int{cyclic.Mod(i-1, n), cyclic.Mod(i+1, n)} {
				if q[j] < p[j] {
					capacity[i][j] = inf
				}
			}
		case r < 0:
			b -= r
			capacity[i][t] = -r
		}
	}

	m, _, err := maxflow.EdmondsKarp(context.Background(), capacity, s, t)
	if err != nil {
		panic(err)
	}

	return 2*max(a, b) - m
}

// randomCell draws a cell of n bins with small values, so ties and
// alternating runs are common.
func randomCell(rng *rand.Rand, n, maxv int) (q, p []int64) {
	q = make([]int64, n)
	p = make([]int64, n)
	for i := 0; i < n; i++ {
		q[i] = int64(rng.Intn(maxv + 1))
		p[i] = int64(rng.Intn(maxv + 1))
	}

	return q, p
}

// alternatingCell draws an even-length cell whose excess strictly alternates
// around the whole ring, with the sides picked at random.
func alternatingCell(rng *rand.Rand, half, maxv int) (q, p []int64) {
	n := 2 * half
	q = make([]int64, n)
	p = make([]int64, n)
	qOdd := rng.Intn(2) == 0
	for i := 0; i < n; i++ {
		base := int64(rng.Intn(maxv + 1))
		excess := int64(1 + rng.Intn(maxv))
		q[i], p[i] = base, base
		if (i%2 == 1) == qOdd {
			q[i] += excess
		} else {
			p[i] += excess
		}
	}

	return q, p
}

// randomDescriptor draws a descriptor of the given length with values in [0, maxv].
func randomDescriptor(rng *rand.Rand, dim, maxv int) []float64 {
	d := make([]float64, dim)
	for i := range d {
		d[i] = float64(rng.Intn(maxv + 1))
	}

	return d
}
