// SPDX-License-Identifier: MIT
// Package: scalargrad/dataset
//
// moons.go — interleaving half-moons generator.
//
// Purpose (single responsibility):
//   • Provide the classic non-linearly-separable 2-D benchmark for the
//     max-margin training demos.
//   • Geometry first, jitter second: the noiseless shape is exact and
//     golden-testable; Gaussian noise is layered on top.
//
// Contract:
//   • Moons(n, opts...) returns n rows of width 2 and n labels in {-1,+1}.
//   • Class split: first n/2 rows are the lower moon (label -1), the
//     remaining n-n/2 the upper moon (label +1).
//   • Strict determinism per (n, sigma, seed); no panics; no global state.
//   • O(n) time and memory.
//
// Geometry:
//   • Lower moon: (cos t, sin t) for t evenly spaced over [0, π].
//   • Upper moon: (1 − cos t, 1 − sin t − 0.5) over the same sweep —
//     the mirrored arc shifted to interleave with the first.
//
// Determinism & testing:
//   • WithNoise(0) yields the pure geometry with no RNG involved.
//   • With a fixed seed, draws happen row by row, x before y.

package dataset

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// defMoonsSigma is the default Gaussian jitter for Moons, matching the
// usual demo setting for this benchmark.
const defMoonsSigma = 0.1

// Moons generates n samples across two interleaving half-moons.
//
// Returns:
//   - X: n rows, each [x, y].
//   - y: n labels, -1 for the lower moon, +1 for the upper.
//
// Validation:
//   - n < 2 ⇒ ErrBadSize (each class needs at least one sample).
//   - effective sigma > 0 without WithSeed/WithRand ⇒ ErrNeedRandSource.
//
// Complexity: O(n) time, O(n) space.
func Moons(n int, opts ...Option) ([][]float64, []float64, error) {
	cfg := newConfig(defMoonsSigma, opts...)
	if n < 2 {
		return nil, nil, fmt.Errorf("Moons: n=%d: %w", n, ErrBadSize)
	}
	if cfg.sigma > 0 && cfg.rng == nil {
		return nil, nil, fmt.Errorf("Moons: sigma=%g: %w", cfg.sigma, ErrNeedRandSource)
	}

	lower := n / 2
	upper := n - lower
	X := make([][]float64, 0, n)
	y := make([]float64, 0, n)

	// Lower moon: the plain arc, label -1.
	for _, t := range sweep(lower) {
		X = append(X, jitter(cfg, math.Cos(t), math.Sin(t)))
		y = append(y, -1)
	}
	// Upper moon: mirrored and shifted to interleave, label +1.
	for _, t := range sweep(upper) {
		X = append(X, jitter(cfg, 1-math.Cos(t), 1-math.Sin(t)-0.5))
		y = append(y, 1)
	}

	return X, y, nil
}

// sweep returns k angles evenly spaced over [0, π], endpoints included
// (a single sample sits at 0; floats.Span needs at least two slots).
func sweep(k int) []float64 {
	if k == 1 {
		return []float64{0}
	}

	return floats.Span(make([]float64, k), 0, math.Pi)
}

// jitter assembles one row, adding Gaussian noise when configured.
// Draw order is fixed: x first, then y.
func jitter(cfg config, x, y float64) []float64 {
	if cfg.sigma > 0 {
		x += cfg.sigma * cfg.rng.NormFloat64()
		y += cfg.sigma * cfg.rng.NormFloat64()
	}

	return []float64{x, y}
}
