package train_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgalbally/scalargrad/dataset"
	"github.com/dgalbally/scalargrad/nn"
	"github.com/dgalbally/scalargrad/train"
)

// TestFit_NilModel fails fast before touching the data.
func TestFit_NilModel(t *testing.T) {
	res, err := train.Fit(nil, [][]float64{{1}}, []float64{1})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, train.ErrNilModel)
}

// TestFit_PropagatesLossErrors surfaces dataset problems from step 0.
func TestFit_PropagatesLossErrors(t *testing.T) {
	res, err := train.Fit(newLinearModel(1), nil, nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, train.ErrEmptyDataset)
}

// TestFit_StationaryPoint: with every sample exactly on the margin and
// no regularization, gradients vanish and weights must not move.
func TestFit_StationaryPoint(t *testing.T) {
	m := newLinearModel(1, -1)
	X := [][]float64{{2, 1}, {0, 1}}
	y := []float64{1, -1}

	res, err := train.Fit(m, X, y,
		train.WithSteps(5),
		train.WithAlpha(0),
		train.WithSchedule(train.ConstantLR(0.1)),
	)
	require.NoError(t, err)

	assert.Equal(t, 5, res.Steps)
	require.Len(t, res.History, 5)
	assert.Equal(t, 0.0, res.FinalLoss)
	assert.Equal(t, 1.0, res.FinalAccuracy)
	assert.Equal(t, 1.0, m.w[0].Data, "zero gradient, zero movement")
	assert.Equal(t, -1.0, m.w[1].Data)
}

// TestFit_AppliesSchedule records the rate the hook sees and matches it
// against the ramp.
func TestFit_AppliesSchedule(t *testing.T) {
	var rates []float64
	hook := func(info train.StepInfo) error {
		rates = append(rates, info.LR)
		return nil
	}

	_, err := train.Fit(newLinearModel(0.5), [][]float64{{1}}, []float64{1},
		train.WithSteps(4),
		train.WithSchedule(train.LinearDecay(1.0, 0.2)),
		train.WithOnStep(hook),
	)
	require.NoError(t, err)

	require.Len(t, rates, 4)
	for k, lr := range rates {
		assert.InDelta(t, 1.0-0.8*float64(k)/4, lr, 1e-12, "step %d", k)
	}
}

// TestFit_HookAbort stops the run with the hook's own error.
func TestFit_HookAbort(t *testing.T) {
	stop := errors.New("enough")
	steps := 0
	hook := func(train.StepInfo) error {
		steps++
		if steps == 3 {
			return stop
		}
		return nil
	}

	res, err := train.Fit(newLinearModel(0.5), [][]float64{{1}}, []float64{1},
		train.WithSteps(100), train.WithOnStep(hook))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, steps)
}

// TestFit_OptionPanics pins option-constructor validation.
func TestFit_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { train.WithSteps(0) })
	assert.Panics(t, func() { train.WithAlpha(-0.1) })
	assert.Panics(t, func() { train.WithSchedule(nil) })
	assert.Panics(t, func() { train.WithOnStep(nil) })
}

// TestFit_MoonsTraining runs the real pipeline end to end: a small MLP
// on the noiseless moons. Asserted loosely enough to be deterministic
// across platforms: the objective must drop substantially and the model
// must end up better than chance, with finite numbers throughout.
func TestFit_MoonsTraining(t *testing.T) {
	X, y, err := dataset.Moons(16, dataset.WithNoise(0))
	require.NoError(t, err)

	m, err := nn.NewMLP(2, []int{8, 1}, nn.WithSeed(3))
	require.NoError(t, err)

	res, err := train.Fit(m, X, y,
		train.WithSteps(80),
		train.WithSchedule(train.LinearDecay(0.5, 0.05)),
	)
	require.NoError(t, err)

	require.Len(t, res.History, 80)
	assert.False(t, math.IsNaN(res.FinalLoss))
	assert.Less(t, res.FinalLoss, res.History[0].Loss)
	assert.Greater(t, res.FinalAccuracy, 0.5)
}

// TestFit_Deterministic: same seed, same data, same Result.
func TestFit_Deterministic(t *testing.T) {
	run := func() *train.Result {
		X, y, err := dataset.Moons(12, dataset.WithSeed(5))
		require.NoError(t, err)
		m, err := nn.NewMLP(2, []int{4, 1}, nn.WithSeed(7))
		require.NoError(t, err)
		res, err := train.Fit(m, X, y, train.WithSteps(20))
		require.NoError(t, err)
		return res
	}

	a, b := run(), run()
	assert.Equal(t, a.FinalLoss, b.FinalLoss)
	assert.Equal(t, a.History, b.History)
}
