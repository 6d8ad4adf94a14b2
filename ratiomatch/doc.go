// SPDX-License-Identifier: MIT

// Package ratiomatch matches two sets of SIFT-like descriptors with the
// siftdist metric, keeping only symmetric nearest neighbours that pass a
// distance-ratio test.
//
// For every descriptor a in set 1:
//  1. find its nearest neighbour b in set 2;
//  2. find the nearest neighbour of b in set 1; unless it is a, there is no match;
//  3. in each set find the second nearest neighbour, skipping descriptors
//     whose keypoint circle overlaps the nearest one by more than MaxOverlap
//     (those are mostly duplicates of the same keypoint);
//  4. ratio = min(second₁, second₂) / d(a, b), or 1 when that second
//     distance is 0; reject when ratio < DistRatio.
//
// The nearest-neighbour scans pass shrinking stop thresholds to siftdist:
// once a candidate at distance m is known, any descriptor farther than
// m·DistRatio cannot change the outcome, so its distance stops early. With
// DistRatio = NoRatio the ratio test and the pruning are both off.
//
// Keypoint radii are Scale · Magnif · SpatialBins / 2.
//
// Rows of set 1 are processed in parallel batches (Options.Workers), each
// with its own scratch buffers; Match honours context cancellation between
// rows and logs batch progress at debug level through Options.Logger.
package ratiomatch
