// SPDX-License-Identifier: MIT
// Package: scalargrad/trace
//
// types.go — sentinel errors, functional options and shared plumbing
// for the graph exporters.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     exporters themselves MUST NOT panic.
//   • Sentinels are NEVER wrapped with formatted strings at definition
//     site; exporters attach context with `%w` ("Dot: ...").
//   • Node IDs derive from grad.Nodes post-order, so identical graphs
//     always yield identical IDs.
//
// AI-Hints:
//   • Check with errors.Is; grad.ErrCycleDetected passes through the
//     exporters unchanged.
//   • WithPrecision(0) prints integers — handy for golden files.
//   • Mermaid takes no options; it always renders with the defaults.

package trace

import (
	"errors"
	"fmt"

	"github.com/dgalbally/scalargrad/grad"
)

// ErrNilRoot indicates an exporter was handed a nil root value.
// Classification: Validation error (parameters).
// Usage: if errors.Is(err, ErrNilRoot) { /* build the graph first */ }.
var ErrNilRoot = errors.New("trace: nil root value")

// Defaults shared by both exporters.
const (
	// defGraphName names the DOT digraph when WithGraphName is absent.
	defGraphName = "G"
	// defPrecision is the decimal-digit count for data/grad labels,
	// matching the usual 4-digit demo rendering.
	defPrecision = 4
)

// Option customizes an exporter by mutating its config before any
// output is produced.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config aggregates the exporter knobs.
type config struct {
	// name is the digraph identifier emitted in the DOT header.
	name string
	// digits is the decimal precision for data/grad labels.
	digits int
}

// newConfig resolves options over the package defaults.
// Options apply in order; later overrides earlier.
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{name: defGraphName, digits: defPrecision}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithGraphName sets the DOT digraph name. The name is always quoted in
// the output, so spaces and punctuation are safe. Panics on the empty
// string.
// Complexity: O(1) time, O(1) space.
func WithGraphName(name string) Option {
	if name == "" {
		// Fail fast: an empty identifier renders an invalid header.
		panic(`trace: WithGraphName("")`)
	}
	return func(c *config) {
		c.name = name
	}
}

// WithPrecision sets the number of decimal digits used for data and
// grad labels (0 prints integers). Panics if digits is negative.
// Complexity: O(1) time, O(1) space.
func WithPrecision(digits int) Option {
	if digits < 0 {
		panic("trace: WithPrecision(digits<0)")
	}
	return func(c *config) {
		c.digits = digits
	}
}

// indexByNode maps every node to its post-order position, the basis for
// the stable "n<i>" IDs both dialects share.
// Complexity: O(V) time, O(V) space.
func indexByNode(nodes []*grad.Value) map[*grad.Value]int {
	id := make(map[*grad.Value]int, len(nodes))
	for i, v := range nodes {
		id[v] = i
	}

	return id
}

// opLabel renders the junction label for a non-leaf node. Powers carry
// their exponent ("^2"), every other op uses its symbol as-is.
func opLabel(v *grad.Value) string {
	if v.OpKind() == grad.OpPow {
		return fmt.Sprintf("^%g", v.Exponent())
	}

	return v.OpKind().String()
}
