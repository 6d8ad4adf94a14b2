// SPDX-License-Identifier: MIT

package siftdist

// cyclicEdge resolves a cell whose excess strictly alternates all the way
// around the ring: odd holds the excess on odd bins, even the excess on even
// bins. The one-cost edges then form a single even cycle
//
//	E0 — O0 — E1 — O1 — … — E(h-1) — O(h-1) — E0
//
// where Ek is the even-bin excess at bin 2k and Ok the odd-bin excess at bin
// 2k+1. A greedy pass pushes flow along every edge except E0—O0, which
// stays open. The residual excess of O nodes is then drained into E
// nodes by augmenting paths that pass through that open edge: sources are
// tried in order O0, O1, … (extending the path rightwards), targets in order
// E0, E(h-1), E(h-2), … (extending leftwards).
//
// Panics if len(odd) is odd; findAnchor never reports a wrap then.
//
// Complexity: O(N) time and memory.
func cyclicEdge[T Number](odd, even []T) T {
	n := len(odd)
	if n%2 != 0 {
		panic("siftdist: cyclic edge on an odd number of bins")
	}
	h := n / 2

	r := resolver[T]{
		ePos: make([]T, h),
		oPos: make([]T, h),
		// edge k's residual capacity; edge 0 is E0—O0, then the ring order.
		res: make([]T, n),
	}
	e := make([]T, h)
	o := make([]T, h)
	for i := 0; i < h; i++ {
		e[i] = even[2*i] - odd[2*i]
		o[i] = odd[2*i+1] - even[2*i+1]
	}
	copy(r.ePos, e)
	copy(r.oPos, o)

	// Greedy pass. Pushed edges keep their flow as reverse capacity,
	// skipped ones their unused forward capacity.
	r.res[0] = min(e[0], o[0])
	k := 1
	for i := 0; i < h-1; i++ {
		r.res[k] = r.push(i, i+1)
		k++
		r.res[k] = min(o[i+1], e[i+1]) - r.push(i+1, i+1)
		k++
	}
	r.res[k] = r.push(h-1, 0)

	var leftO, leftE T
	for i := 0; i < h; i++ {
		leftO += r.oPos[i]
		leftE += r.ePos[i]
	}
	maxLeft := max(leftO, leftE)

	// Sources are visited in index order O0, O1, …; targets E0, E(h-1), …, E1.
	targets := make([]int, h)
	for t := 1; t < h; t++ {
		targets[t] = h - t
	}

	mCap := r.res[0]
	mS, mT := 1, n-1 // next edges the path extends over on each side
	si, ti := 0, 0
	for mCap > 0 {
		sCap := r.oPos[si]
		for sCap == 0 {
			si++
			if si == h || mCap == 0 {
				return r.dist + 2*maxLeft
			}
			mCap = min(mCap, r.res[mS], r.res[mS+1])
			mS += 2
			sCap = r.oPos[si]
		}

		tCap := r.ePos[targets[ti]]
		for tCap == 0 {
			ti++
			if ti == h || mCap == 0 {
				return r.dist + 2*maxLeft
			}
			mCap = min(mCap, r.res[mT], r.res[mT-1])
			mT -= 2
			tCap = r.ePos[targets[ti]]
		}

		f := min(sCap, tCap, mCap)
		r.dist += f
		maxLeft -= f
		mCap -= f
		r.oPos[si] -= f
		r.ePos[targets[ti]] -= f
	}

	return r.dist + 2*maxLeft
}

// resolver holds the residual graph of cyclicEdge.
type resolver[T Number] struct {
	ePos, oPos []T // remaining excess per E / O node
	res        []T
	dist       T
}

// push sends as much as possible from Os to Et at cost 1 and returns it.
func (r *resolver[T]) push(s, t int) T {
	f := min(r.oPos[s], r.ePos[t])
	r.oPos[s] -= f
	r.ePos[t] -= f
	r.dist += f

	return f
}
