package train_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dgalbally/scalargrad/train"
)

// TestConstantLR pins the flat schedule and its validation panic.
func TestConstantLR(t *testing.T) {
	s := train.ConstantLR(0.3)
	assert.Equal(t, 0.3, s(0, 100))
	assert.Equal(t, 0.3, s(99, 100))

	assert.Panics(t, func() { train.ConstantLR(0) })
	assert.Panics(t, func() { train.ConstantLR(-1) })
}

// TestLinearDecay checks the classic 1.0 → 0.1 ramp: the rate starts at
// `start` and approaches `end` one increment short.
func TestLinearDecay(t *testing.T) {
	s := train.LinearDecay(1.0, 0.1)

	assert.InDelta(t, 1.0, s(0, 100), 1e-12)
	assert.InDelta(t, 0.55, s(50, 100), 1e-12)
	assert.InDelta(t, 0.109, s(99, 100), 1e-12)
	assert.Equal(t, 1.0, s(0, 1), "degenerate single-step run stays at start")
}

// TestLinearDecay_Panics rejects inverted or non-positive ramps.
func TestLinearDecay_Panics(t *testing.T) {
	assert.Panics(t, func() { train.LinearDecay(0, 0.1) })
	assert.Panics(t, func() { train.LinearDecay(1.0, -0.1) })
	assert.Panics(t, func() { train.LinearDecay(0.1, 0.5) })
}
