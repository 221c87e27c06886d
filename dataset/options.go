// SPDX-License-Identifier: MIT
// Package: scalargrad/dataset
//
// options.go — functional options for the dataset generators.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through config.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible fixtures and golden files.
//   • WithNoise(0) removes all randomness; the generators then need no
//     RNG at all and produce the pure geometry.
//   • Each generator documents its own default sigma (Moons 0.1,
//     Blobs 1.0); WithNoise overrides it.

package dataset

import (
	"math/rand" // RNG source for stochastic jitter
)

// Option customizes a generator by mutating its config before any
// sample is drawn.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config aggregates the generator knobs.
type config struct {
	// rng drives noise draws; nil means "no RNG provided".
	rng *rand.Rand
	// sigma is the Gaussian jitter stdev; negative means "use the
	// generator's default" (options only ever set >= 0).
	sigma float64
}

// newConfig resolves options over a generator-specific default sigma.
// Options apply in order; later overrides earlier.
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(defaultSigma float64, opts ...Option) config {
	cfg := config{sigma: -1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sigma < 0 {
		cfg.sigma = defaultSigma
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG, e.g. one stream shared across
// several generators. Panics on nil; prefer WithSeed for reproducible
// runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("dataset: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithNoise sets the Gaussian jitter sigma (>= 0); 0 disables noise and
// with it the need for an RNG. Panics if sigma < 0.
// Complexity: O(1) time, O(1) space.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("dataset: WithNoise(sigma<0)")
	}
	return func(c *config) {
		c.sigma = sigma
	}
}
