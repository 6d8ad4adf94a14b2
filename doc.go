// Package cyclemd computes Earth Mover's Distances between histograms whose
// bins lie on a circle: orientation histograms, hue histograms, SIFT-like
// descriptors.
//
// 🚀 What is cyclemd?
//
//	Two solvers for the ring ground distance d(i, j) = min(|i-j|, N-|i-j|):
//		• emdmod   – exact EMD for equal-mass histograms of any length, with
//		             the optimal transport plan on request (expected O(N))
//		• siftdist – multi-cell descriptors with the ground distance
//		             thresholded at 2, O(N) per cell, early termination
//		             against per-cell stop thresholds
//
// ✨ Around them:
//
//   - ratiomatch – symmetric nearest-neighbour ratio matching of two
//     descriptor sets on top of siftdist, with keypoint overlap filtering
//   - cyclic     – ring index arithmetic shared by the solvers
//   - cmd/siftdist – command line front-end (emd, dist, match)
//
// Layout:
//
//	cyclic/        — ring distance, positive modulo, rotated order
//	emdmod/        — general equal-mass solver + flow plan (gonum matrices)
//	siftdist/      — windowed per-cell solver, thresholds, pairwise matrices
//	ratiomatch/    — ratio matching, circle overlap
//	internal/      — test-time reference solvers
//	cmd/siftdist/  — CLI
//
// References:
//
//	J. Rabin, J. Delon, Y. Gousseau, "Circular Earth Mover's Distance for
//	the comparison of local features", ICPR 2008.
//	O. Pele, M. Werman, "A Linear Time Histogram Metric for Improved SIFT
//	Matching", ECCV 2008.
package cyclemd
