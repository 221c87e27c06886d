package nn

import (
	"fmt"
	"math/rand"

	"github.com/dgalbally/scalargrad/grad"
)

// Neuron is a single scalar unit computing act(Σ w_i·x_i + b), where
// act is ReLU by default and identity under WithLinear.
type Neuron struct {
	weights []*grad.Value
	bias    *grad.Value
	relu    bool
}

// NewNeuron builds a neuron with fan-in nin. Weights are drawn from
// U(-1, 1) using the configured RNG; the bias starts at 0.
func NewNeuron(nin int, opts ...Option) (*Neuron, error) {
	cfg := newConfig(opts...)
	if nin < 1 {
		return nil, fmt.Errorf("NewNeuron: fan-in %d: %w", nin, ErrBadDimension)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("NewNeuron: %w", ErrNeedRandSource)
	}

	return newNeuron(nin, !cfg.linear, cfg.rng), nil
}

// newNeuron is the validated core shared with Layer and MLP
// construction. Weight draws happen in index order so a fixed seed
// always produces the same unit.
func newNeuron(nin int, relu bool, rng *rand.Rand) *Neuron {
	weights := make([]*grad.Value, nin)
	for i := range weights {
		weights[i] = grad.NewValue(uniform(rng))
	}

	return &Neuron{weights: weights, bias: grad.NewValue(0), relu: relu}
}

// uniform draws one sample from U(-1, 1).
func uniform(rng *rand.Rand) float64 {
	return 2*rng.Float64() - 1
}

// Forward evaluates the neuron over one input row, growing the
// computation graph by one multiply-accumulate chain. The same
// parameter leaves are reused across calls, so gradients from several
// rows accumulate onto them — exactly what batch losses need.
func (n *Neuron) Forward(x []*grad.Value) (*grad.Value, error) {
	if len(x) != len(n.weights) {
		return nil, fmt.Errorf("Neuron.Forward: got %d inputs, want %d: %w",
			len(x), len(n.weights), ErrDimensionMismatch)
	}

	act := n.bias
	for i, w := range n.weights {
		if x[i] == nil {
			return nil, fmt.Errorf("Neuron.Forward: input %d: %w", i, grad.ErrNilValue)
		}
		act = act.Add(w.Mul(x[i]))
	}
	if n.relu {
		act = act.Relu()
	}

	return act, nil
}

// Parameters lists the weights followed by the bias.
func (n *Neuron) Parameters() []*grad.Value {
	out := make([]*grad.Value, 0, len(n.weights)+1)
	out = append(out, n.weights...)

	return append(out, n.bias)
}

// ZeroGrad resets every parameter gradient to 0.
func (n *Neuron) ZeroGrad() {
	for _, p := range n.Parameters() {
		p.ZeroGrad()
	}
}

// String renders the unit kind and fan-in, e.g. "ReLUNeuron(2)".
func (n *Neuron) String() string {
	if n.relu {
		return fmt.Sprintf("ReLUNeuron(%d)", len(n.weights))
	}

	return fmt.Sprintf("LinearNeuron(%d)", len(n.weights))
}
