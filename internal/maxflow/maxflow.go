// SPDX-License-Identifier: MIT

// Package maxflow is a small dense-matrix Edmonds–Karp solver. It serves as
// the reference for the one-cost matching that siftdist computes in linear
// time, so it favours plainness over speed.
package maxflow

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound is returned when the source index is out of range.
	ErrSourceNotFound = errors.New("maxflow: source vertex not found")

	// ErrSinkNotFound is returned when the sink index is out of range.
	ErrSinkNotFound = errors.New("maxflow: sink vertex not found")

	// ErrNotSquare is returned when the capacity matrix is not n×n.
	ErrNotSquare = errors.New("maxflow: capacity matrix must be square")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To int
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("maxflow: negative capacity on edge %d→%d: %d", e.From, e.To, e.Cap)
}

// EdmondsKarp computes the maximum flow from source to sink over the
// capacity matrix (capacity[u][v] is the capacity of u→v). The input is not
// modified; the residual capacities after the flow are returned.
//
// Complexity: O(V · E²) augmentations bound, O(V²) per BFS on the dense matrix.
func EdmondsKarp(ctx context.Context, capacity [][]int64, source, sink int) (int64, [][]int64, error) {
	n := len(capacity)
	if source < 0 || source >= n {
		return 0, nil, ErrSourceNotFound
	}
	if sink < 0 || sink >= n {
		return 0, nil, ErrSinkNotFound
	}

	residual := make([][]int64, n)
	for u, row := range capacity {
		if len(row) != n {
			return 0, nil, ErrNotSquare
		}
		for v, c := range row {
			if c < 0 {
				return 0, nil, EdgeError{From: u, To: v, Cap: c}
			}
		}
		residual[u] = append([]int64(nil), row...)
	}

	var flow int64
	parent := make([]int, n)
	for {
		if err := ctx.Err(); err != nil {
			return flow, residual, err
		}
		bottle := augmentingPath(residual, source, sink, parent)
		if bottle == 0 {
			return flow, residual, nil
		}
		for v := sink; v != source; v = parent[v] {
			u := parent[v]
			residual[u][v] -= bottle
			residual[v][u] += bottle
		}
		flow += bottle
	}
}

// augmentingPath runs a BFS over positive residual edges, records the
// predecessors in parent and returns the bottleneck, or 0 when sink is
// unreachable.
func augmentingPath(residual [][]int64, source, sink int, parent []int) int64 {
	if source == sink {
		return 0
	}
	for i := range parent {
		parent[i] = -1
	}
	parent[source] = source
	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v, c := range residual[u] {
			if c <= 0 || parent[v] >= 0 {
				continue
			}
			parent[v] = u
			if v == sink {
				bottle := c
				for w := sink; w != source; w = parent[w] {
					bottle = min(bottle, residual[parent[w]][w])
				}

				return bottle
			}
			queue = append(queue, v)
		}
	}

	return 0
}
