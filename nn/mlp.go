package nn

import (
	"fmt"
	"strings"

	"github.com/dgalbally/scalargrad/grad"
)

// MLP chains layers into a multi-layer perceptron. Hidden layers apply
// ReLU; the output layer is linear so downstream losses see raw scores.
type MLP struct {
	layers []*Layer
}

// NewMLP builds a perceptron taking nin features, with one layer per
// entry of nouts (widths in order; the last entry is the output width).
// NewMLP fixes the activation schedule itself and ignores WithLinear.
func NewMLP(nin int, nouts []int, opts ...Option) (*MLP, error) {
	cfg := newConfig(opts...)
	if len(nouts) == 0 {
		return nil, fmt.Errorf("NewMLP: %w", ErrNoLayers)
	}
	if nin < 1 {
		return nil, fmt.Errorf("NewMLP: fan-in %d: %w", nin, ErrBadDimension)
	}
	for i, width := range nouts {
		if width < 1 {
			return nil, fmt.Errorf("NewMLP: layer %d width %d: %w", i, width, ErrBadDimension)
		}
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("NewMLP: %w", ErrNeedRandSource)
	}

	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range layers {
		hidden := i != len(layers)-1
		layers[i] = newLayer(sizes[i], sizes[i+1], hidden, cfg.rng)
	}

	return &MLP{layers: layers}, nil
}

// Forward threads one input row through every layer in order.
func (m *MLP) Forward(x []*grad.Value) ([]*grad.Value, error) {
	out := x
	var err error
	for i, l := range m.layers {
		if out, err = l.Forward(out); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}

	return out, nil
}

// Parameters concatenates every layer's parameters in layer order.
func (m *MLP) Parameters() []*grad.Value {
	out := make([]*grad.Value, 0)
	for _, l := range m.layers {
		out = append(out, l.Parameters()...)
	}

	return out
}

// ZeroGrad resets every parameter gradient to 0.
func (m *MLP) ZeroGrad() {
	for _, l := range m.layers {
		l.ZeroGrad()
	}
}

// String renders the full stack, e.g.
// "MLP of [Layer of [ReLUNeuron(2), ...], Layer of [LinearNeuron(16)]]".
func (m *MLP) String() string {
	parts := make([]string, len(m.layers))
	for i, l := range m.layers {
		parts[i] = l.String()
	}

	return fmt.Sprintf("MLP of [%s]", strings.Join(parts, ", "))
}
