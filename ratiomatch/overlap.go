// SPDX-License-Identifier: MIT

package ratiomatch

import "math"

// CircleOverlap returns the intersection-over-union of two discs, in [0, 1].
// Disjoint or tangent discs give 0, identical discs 1. A disc lying inside
// the other gives the ratio of their areas.
func CircleOverlap(x1, y1, r1, x2, y2, r2 float64) float64 {
	d := math.Hypot(x1-x2, y1-y2)
	if d >= r1+r2 {
		return 0
	}

	rr1, rr2 := r1*r1, r2*r2
	var inter float64
	if d <= math.Abs(r1-r2) {
		inter = math.Pi * min(rr1, rr2)
	} else {
		a1 := clampCos((d*d + rr1 - rr2) / (2 * d * r1))
		a2 := clampCos((d*d - rr1 + rr2) / (2 * d * r2))
		k := (-d + r1 + r2) * (d + r1 - r2) * (d - r1 + r2) * (d + r1 + r2)
		inter = rr1*math.Acos(a1) + rr2*math.Acos(a2) - math.Sqrt(max(k, 0))/2
	}

	union := math.Pi*rr1 + math.Pi*rr2 - inter
	if union <= 0 {
		return 0
	}

	return inter / union
}

func clampCos(c float64) float64 {
	return max(-1, min(1, c))
}
