package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgalbally/scalargrad/grad"
	"github.com/dgalbally/scalargrad/nn"
)

// setParams overwrites parameter Data in Parameters() order (weights
// first, bias last, unit by unit). Tests use it to pin exact values
// after stochastic construction.
func setParams(t *testing.T, params []*grad.Value, data []float64) {
	t.Helper()
	require.Len(t, params, len(data))
	for i, p := range params {
		p.Data = data[i]
	}
}

// TestNewNeuron_RequiresRNG verifies that construction without
// WithSeed/WithRand fails with ErrNeedRandSource.
func TestNewNeuron_RequiresRNG(t *testing.T) {
	n, err := nn.NewNeuron(2)
	assert.Nil(t, n)
	assert.ErrorIs(t, err, nn.ErrNeedRandSource)
}

// TestNewNeuron_BadDimension rejects non-positive fan-in.
func TestNewNeuron_BadDimension(t *testing.T) {
	for _, nin := range []int{0, -3} {
		n, err := nn.NewNeuron(nin, nn.WithSeed(1))
		assert.Nil(t, n)
		assert.ErrorIs(t, err, nn.ErrBadDimension)
	}
}

// TestNewNeuron_Initialization checks the init contract: nin weights in
// (-1, 1), bias exactly 0, parameters listed weights-then-bias.
func TestNewNeuron_Initialization(t *testing.T) {
	n, err := nn.NewNeuron(5, nn.WithSeed(42))
	require.NoError(t, err)

	params := n.Parameters()
	require.Len(t, params, 6)
	for i := 0; i < 5; i++ {
		assert.Less(t, params[i].Data, 1.0)
		assert.Greater(t, params[i].Data, -1.0)
	}
	assert.Equal(t, 0.0, params[5].Data, "bias starts at zero")
}

// TestWithRand_PanicsOnNil pins the option-constructor contract:
// options validate and panic, algorithms never do.
func TestWithRand_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { nn.WithRand(nil) })
}

// TestNeuron_Forward_DimensionMismatch rejects a row of the wrong width.
func TestNeuron_Forward_DimensionMismatch(t *testing.T) {
	n, err := nn.NewNeuron(3, nn.WithSeed(1))
	require.NoError(t, err)

	out, err := n.Forward(nn.Inputs([]float64{1, 2}))
	assert.Nil(t, out)
	assert.ErrorIs(t, err, nn.ErrDimensionMismatch)
}

// TestNeuron_Forward_NilInput rejects nil entries in the row.
func TestNeuron_Forward_NilInput(t *testing.T) {
	n, err := nn.NewNeuron(2, nn.WithSeed(1))
	require.NoError(t, err)

	out, err := n.Forward([]*grad.Value{grad.NewValue(1), nil})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, grad.ErrNilValue)
}

// TestNeuron_Forward_Linear pins the weighted sum on a unit with
// hand-set parameters: out = 0.5*2 + (-0.25)*4 + 0.125 = 0.125.
func TestNeuron_Forward_Linear(t *testing.T) {
	n, err := nn.NewNeuron(2, nn.WithSeed(1), nn.WithLinear())
	require.NoError(t, err)
	setParams(t, n.Parameters(), []float64{0.5, -0.25, 0.125})

	out, err := n.Forward(nn.Inputs([]float64{2, 4}))
	require.NoError(t, err)
	assert.Equal(t, 0.125, out.Data)
}

// TestNeuron_Forward_ReluGate verifies the activation on both sides of
// zero with hand-set parameters.
func TestNeuron_Forward_ReluGate(t *testing.T) {
	n, err := nn.NewNeuron(1, nn.WithSeed(1))
	require.NoError(t, err)
	setParams(t, n.Parameters(), []float64{1, -0.5}) // out = relu(x - 0.5)

	pos, err := n.Forward(nn.Inputs([]float64{2}))
	require.NoError(t, err)
	assert.Equal(t, 1.5, pos.Data)

	neg, err := n.Forward(nn.Inputs([]float64{-2}))
	require.NoError(t, err)
	assert.Equal(t, 0.0, neg.Data)
}

// TestNeuron_ZeroGrad clears parameter gradients after a backward pass.
func TestNeuron_ZeroGrad(t *testing.T) {
	n, err := nn.NewNeuron(2, nn.WithSeed(1), nn.WithLinear())
	require.NoError(t, err)

	out, err := n.Forward(nn.Inputs([]float64{1, 1}))
	require.NoError(t, err)
	require.NoError(t, out.Backward())

	n.ZeroGrad()
	for i, p := range n.Parameters() {
		assert.Zero(t, p.Grad, "parameter %d", i)
	}
}

// TestNeuron_String pins the two unit reprs.
func TestNeuron_String(t *testing.T) {
	relu, err := nn.NewNeuron(2, nn.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, "ReLUNeuron(2)", relu.String())

	lin, err := nn.NewNeuron(16, nn.WithSeed(1), nn.WithLinear())
	require.NoError(t, err)
	assert.Equal(t, "LinearNeuron(16)", lin.String())
}
