package nn

import (
	"errors"
	"math/rand"

	"github.com/dgalbally/scalargrad/grad"
)

// Module is the minimal trainable unit: anything that can expose its
// parameter leaves and reset their gradient accumulators. Neuron, Layer
// and MLP all satisfy it.
type Module interface {
	// Parameters returns every trainable leaf (weights and biases).
	Parameters() []*grad.Value

	// ZeroGrad resets the gradient accumulator of every parameter.
	ZeroGrad()
}

// Sentinel errors for module construction and forward evaluation.
var (
	// ErrBadDimension indicates a fan-in or layer width below 1.
	ErrBadDimension = errors.New("nn: dimension must be positive")

	// ErrDimensionMismatch indicates a Forward input row whose width does
	// not match the module's fan-in.
	ErrDimensionMismatch = errors.New("nn: input width does not match fan-in")

	// ErrNoLayers indicates NewMLP received an empty layer-size list.
	ErrNoLayers = errors.New("nn: at least one layer size is required")

	// ErrNeedRandSource indicates a constructor was called without an RNG;
	// weight initialization is stochastic and demands WithSeed or WithRand.
	ErrNeedRandSource = errors.New("nn: rng is required")
)

// Option customizes a module constructor by mutating its config before
// any weight is drawn.
type Option func(*config)

// config aggregates the constructor knobs.
type config struct {
	// rng drives weight initialization; nil means "not provided".
	rng *rand.Rand

	// linear disables the ReLU activation (Neuron/Layer only; NewMLP
	// fixes its own activation schedule and ignores it).
	linear bool
}

// newConfig applies options in order, last wins.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a fresh deterministic RNG from the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG, e.g. one stream shared across
// several constructors. Panics on nil; option constructors validate and
// panic, algorithms never do.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("nn: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithLinear switches the activation off: the unit emits the raw
// weighted sum. Meaningful for NewNeuron and NewLayer; NewMLP already
// keeps its output layer linear.
func WithLinear() Option {
	return func(c *config) {
		c.linear = true
	}
}

// Inputs lifts a plain feature row into leaf nodes, ready to feed a
// Forward pass.
func Inputs(row []float64) []*grad.Value {
	out := make([]*grad.Value, len(row))
	for i, x := range row {
		out[i] = grad.NewValue(x)
	}

	return out
}
