// SPDX-License-Identifier: MIT
// Package: scalargrad/dataset
//
// errors.go — sentinel errors for the dataset package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Generators attach context with `%w` ("Moons: n=1: ...").
//   • Generators MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).
//
// AI-Hints:
//   • Check with errors.Is in tests and production code; avoid string
//     comparisons.
//   • ErrNeedRandSource means the effective noise sigma is positive but no
//     WithSeed/WithRand was supplied; pass WithNoise(0) for the pure
//     geometric dataset instead.

package dataset

import "errors"

// ErrBadSize indicates the requested sample count cannot cover both
// classes (n < 2).
// Classification: Validation error (parameters).
// Usage: if errors.Is(err, ErrBadSize) { /* fix n */ }.
var ErrBadSize = errors.New("dataset: invalid sample count")

// ErrNeedRandSource indicates a stochastic generation (effective noise
// sigma > 0) was requested without an RNG; WithSeed or WithRand must be
// set.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("dataset: rng is required")
