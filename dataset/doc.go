// Package dataset provides deterministic two-dimensional toy datasets
// for binary classification demos: interleaving half-moons and a
// two-Gaussian mixture. It exists so examples, tests and the CLI can
// share one reproducible data source instead of ad-hoc sampling code.
//
// The package offers the following key components:
//
//   - Generators:
//     – Moons: two interleaving half-circles, the classic non-linearly
//     separable benchmark.
//     – Blobs: a two-class Gaussian mixture at mirrored centers, the
//     linearly separable baseline.
//   - Configuration primitives:
//     – Option:     a function that mutates the generator config.
//     – WithSeed:   fresh deterministic RNG from an int64 seed.
//     – WithRand:   explicit *rand.Rand (shared streams).
//     – WithNoise:  Gaussian jitter sigma (0 disables randomness).
//
// Conventions:
//
//   - Samples are X [][]float64 rows of width 2; labels are y []float64
//     in {-1, +1} (max-margin convention), class blocks concatenated:
//     first ceil-half -1, remainder +1 for Moons, and likewise Blobs.
//   - n is the TOTAL sample count, split n/2 and n-n/2 between classes.
//   - Determinism: a fixed (n, sigma, seed) triple always produces the
//     same dataset; draws happen in row order, x before y coordinate.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; generators themselves never panic.
//   - Structured sentinel errors (ErrBadSize, ErrNeedRandSource) for
//     invalid generation parameters, wrapped with %w context.
//   - O(n) time and allocation per call.
//
// See individual function documentation for detailed contracts and
// parameter descriptions.
package dataset
