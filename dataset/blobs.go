// SPDX-License-Identifier: MIT
// Package: scalargrad/dataset
//
// blobs.go — two-class Gaussian mixture generator.
//
// Purpose (single responsibility):
//   • Provide the linearly separable baseline next to Moons: two
//     isotropic Gaussian clouds at mirrored centers.
//   • Same conventions as Moons: rows of width 2, labels in {-1,+1},
//     class blocks concatenated, deterministic per seed.
//
// Contract:
//   • Blobs(n, opts...) returns n rows and n labels; first n/2 rows
//     cluster at (-2,-2) with label -1, the rest at (+2,+2) with +1.
//   • Default sigma is 1.0 (clouds overlap a little at the margin);
//     WithNoise overrides, WithNoise(0) collapses each class onto its
//     center (still valid, trivially separable).
//   • sigma > 0 requires WithSeed/WithRand; ErrNeedRandSource otherwise.
//   • O(n) time and memory.

package dataset

import "fmt"

const (
	// defBlobsSigma is the default cloud stdev.
	defBlobsSigma = 1.0
	// blobCenter is the per-coordinate magnitude of the mirrored centers.
	blobCenter = 2.0
)

// Blobs generates n samples from a two-Gaussian mixture at
// (±blobCenter, ±blobCenter).
//
// Returns:
//   - X: n rows, each [x, y] = center·label + sigma·N(0,1) per
//     coordinate.
//   - y: n labels, -1 for the first n/2 rows, +1 for the rest.
//
// Validation:
//   - n < 2 ⇒ ErrBadSize.
//   - effective sigma > 0 without WithSeed/WithRand ⇒ ErrNeedRandSource.
//
// Complexity: O(n) time, O(n) space.
func Blobs(n int, opts ...Option) ([][]float64, []float64, error) {
	cfg := newConfig(defBlobsSigma, opts...)
	if n < 2 {
		return nil, nil, fmt.Errorf("Blobs: n=%d: %w", n, ErrBadSize)
	}
	if cfg.sigma > 0 && cfg.rng == nil {
		return nil, nil, fmt.Errorf("Blobs: sigma=%g: %w", cfg.sigma, ErrNeedRandSource)
	}

	negative := n / 2
	X := make([][]float64, 0, n)
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		label := 1.0
		if i < negative {
			label = -1.0
		}
		X = append(X, jitter(cfg, blobCenter*label, blobCenter*label))
		y = append(y, label)
	}

	return X, y, nil
}
