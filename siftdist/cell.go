// SPDX-License-Identifier: MIT

package siftdist

// wrapKind tells how the anchor search ended.
type wrapKind uint8

const (
	// noWrap: a walk from the returned anchor is exact.
	noWrap wrapKind = iota
	// wrapQP: excess strictly alternates, q is in excess on odd bins.
	wrapQP
	// wrapPQ: excess strictly alternates, p is in excess on odd bins.
	wrapPQ
)

// CellDistance returns the thresholded-ground-distance EMD between two
// single-cell histograms on a ring: 2·max(A, B) − M, where A and B are the
// excess masses of q and p after free same-bin matching and M is the largest
// amount of excess that can be paired across adjacent bins.
//
// Inputs are read, never modified. Total masses may differ.
//
// Errors: ErrCellLength.
//
// Complexity: O(N) time, O(1) memory unless the cyclic-edge path is taken.
func CellDistance[T Number](q, p []T) (T, error) {
	if len(q) != len(p) || len(q) < 2 {
		return 0, ErrCellLength
	}

	return cellDistance(q, p), nil
}

func cellDistance[T Number](q, p []T) T {
	anchor, wrap := findAnchor(q, p)
	switch wrap {
	case wrapQP:
		return cyclicEdge(q, p)
	case wrapPQ:
		return cyclicEdge(p, q)
	}

	return walk(q, p, anchor)
}

// findAnchor looks for a bin i such that bins i-1 and i carry no q excess,
// or no p excess. Starting the walk right there means no one-cost pairing
// can cross the starting point, so a single pass is exact.
//
// When no such bin exists and the excess also alternates across the
// N-1 → 0 seam, every bin is a one-cost edge around the whole ring and the
// caller must use the augmenting-path resolver. Otherwise bin 0 is fine.
func findAnchor[T Number](q, p []T) (int, wrapKind) {
	n := len(q)
	qz := q[0] <= p[0]
	pz := p[0] <= q[0]
	for i := 1; i < n; i++ {
		if q[i] <= p[i] {
			if qz {
				return i, noWrap
			}
			qz = true
		} else {
			qz = false
		}
		if p[i] <= q[i] {
			if pz {
				return i, noWrap
			}
			pz = true
		} else {
			pz = false
		}
	}

	switch {
	case p[n-1] > q[n-1] && q[0] > p[0]:
		return 0, wrapPQ
	case q[n-1] > p[n-1] && p[0] > q[0]:
		return 0, wrapQP
	}

	return 0, noWrap
}

// scan is the state of one walk around the ring. Side 0 is q, side 1 is p.
type scan[T Number] struct {
	h    [2][]T
	old  [2]T // unmatched mass carried from the previous bin
	left [2]T // excess that can no longer be matched at cost 1
	dist T
}

// walk visits every bin once, starting after the anchor and ending on it.
// The side holding more carried mass is the source; its excess is matched
// against the opposite side's deficit at the next bin.
func walk[T Number](q, p []T, anchor int) T {
	n := len(q)
	s := scan[T]{
		h:   [2][]T{q, p},
		old: [2]T{q[anchor], p[anchor]},
	}
	j := anchor
	for k := 0; k < n; k++ {
		j++
		if j == n {
			j = 0
		}
		if s.old[0] >= s.old[1] {
			s.step(0, 1, j)
		} else {
			s.step(1, 0, j)
		}
	}

	return s.dist + 2*max(s.left[0], s.left[1])
}

// step moves one bin forward with side src holding the carried excess.
func (s *scan[T]) step(src, dst, j int) {
	hs, hd := s.h[src][j], s.h[dst][j]
	excess := s.old[src] - s.old[dst]
	if hs >= hd {
		// No deficit at j: the carried excess is stranded.
		s.left[src] += excess
		s.old[src], s.old[dst] = hs, hd

		return
	}

	need := hd - hs
	s.old[src] = 0
	if excess >= need {
		s.dist += need
		s.left[src] += excess - need
		s.old[dst] = 0
	} else {
		s.dist += excess
		s.old[dst] = need - excess
	}
}
