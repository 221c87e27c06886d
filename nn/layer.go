package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/dgalbally/scalargrad/grad"
)

// Layer is a bank of neurons evaluating the same input row in parallel
// (structurally — evaluation itself is sequential and single-threaded).
type Layer struct {
	neurons []*Neuron
}

// NewLayer builds nout neurons of fan-in nin sharing one RNG stream.
func NewLayer(nin, nout int, opts ...Option) (*Layer, error) {
	cfg := newConfig(opts...)
	if nin < 1 || nout < 1 {
		return nil, fmt.Errorf("NewLayer: %dx%d: %w", nin, nout, ErrBadDimension)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("NewLayer: %w", ErrNeedRandSource)
	}

	return newLayer(nin, nout, !cfg.linear, cfg.rng), nil
}

// newLayer is the validated core shared with MLP construction.
func newLayer(nin, nout int, relu bool, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = newNeuron(nin, relu, rng)
	}

	return &Layer{neurons: neurons}
}

// Forward evaluates every neuron over the row; out[j] is neuron j's
// activation.
func (l *Layer) Forward(x []*grad.Value) ([]*grad.Value, error) {
	out := make([]*grad.Value, len(l.neurons))
	for i, n := range l.neurons {
		v, err := n.Forward(x)
		if err != nil {
			return nil, fmt.Errorf("neuron %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// Parameters concatenates every neuron's parameters in neuron order.
func (l *Layer) Parameters() []*grad.Value {
	out := make([]*grad.Value, 0, l.paramCount())
	for _, n := range l.neurons {
		out = append(out, n.Parameters()...)
	}

	return out
}

// ZeroGrad resets every parameter gradient to 0.
func (l *Layer) ZeroGrad() {
	for _, n := range l.neurons {
		n.ZeroGrad()
	}
}

// paramCount is len(Parameters()) without the allocation.
func (l *Layer) paramCount() int {
	total := 0
	for _, n := range l.neurons {
		total += len(n.weights) + 1
	}

	return total
}

// String renders the layer as the list of its units, e.g.
// "Layer of [ReLUNeuron(2), ReLUNeuron(2)]".
func (l *Layer) String() string {
	parts := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		parts[i] = n.String()
	}

	return fmt.Sprintf("Layer of [%s]", strings.Join(parts, ", "))
}
