package train

import (
	"errors"

	"github.com/dgalbally/scalargrad/grad"
)

// Model is what Fit needs from a trainable network. Defined here, on
// the consumer side; *nn.MLP satisfies it without ever importing this
// package.
type Model interface {
	// Forward evaluates one input row and returns the output nodes.
	// For max-margin training the output must be a single score.
	Forward(x []*grad.Value) ([]*grad.Value, error)

	// Parameters returns every trainable leaf.
	Parameters() []*grad.Value

	// ZeroGrad resets the gradient accumulator of every parameter.
	ZeroGrad()
}

// Sentinel errors for loss construction and the fit loop.
var (
	// ErrNilModel indicates a nil Model.
	ErrNilModel = errors.New("train: model is nil")

	// ErrEmptyDataset indicates an empty sample set.
	ErrEmptyDataset = errors.New("train: dataset is empty")

	// ErrSizeMismatch indicates len(X) != len(y).
	ErrSizeMismatch = errors.New("train: sample and label counts differ")

	// ErrNotScalar indicates the model emitted more than one output node
	// where a single score was required.
	ErrNotScalar = errors.New("train: model output is not a single score")
)

// StepInfo is one row of training history.
type StepInfo struct {
	// Step is the zero-based iteration index.
	Step int

	// Loss is the objective value before this step's parameter update.
	Loss float64

	// Accuracy is the sign-agreement fraction at the same point.
	Accuracy float64

	// LR is the learning rate applied by this step's update.
	LR float64
}

// Result summarizes a completed Fit run.
type Result struct {
	// Steps is the number of iterations performed.
	Steps int

	// FinalLoss and FinalAccuracy mirror the last History row.
	FinalLoss     float64
	FinalAccuracy float64

	// History holds one StepInfo per iteration, in order.
	History []StepInfo
}

// DefaultAlpha is the L2 regularization strength used when WithAlpha is
// not given.
const DefaultAlpha = 1e-4

// defaultSteps matches the classic 100-iteration demo run.
const defaultSteps = 100

// Option customizes a Fit run.
type Option func(*config)

// config aggregates the fit knobs.
type config struct {
	steps    int
	alpha    float64
	schedule Schedule
	onStep   func(StepInfo) error
}

// newConfig applies options over the demo defaults: 100 steps,
// alpha 1e-4, learning rate decaying linearly 1.0 → 0.1.
func newConfig(opts ...Option) config {
	cfg := config{
		steps:    defaultSteps,
		alpha:    DefaultAlpha,
		schedule: LinearDecay(1.0, 0.1),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSteps sets the iteration count. Panics if k < 1; option
// constructors validate and panic, the loop itself never does.
func WithSteps(k int) Option {
	if k < 1 {
		panic("train: WithSteps(k<1)")
	}
	return func(c *config) {
		c.steps = k
	}
}

// WithAlpha sets the L2 strength; 0 disables regularization entirely.
// Panics if alpha < 0.
func WithAlpha(alpha float64) Option {
	if alpha < 0 {
		panic("train: WithAlpha(alpha<0)")
	}
	return func(c *config) {
		c.alpha = alpha
	}
}

// WithSchedule sets the learning-rate schedule. Panics on nil.
func WithSchedule(s Schedule) Option {
	if s == nil {
		panic("train: WithSchedule(nil)")
	}
	return func(c *config) {
		c.schedule = s
	}
}

// WithOnStep installs a hook observing every StepInfo after the
// parameter update. A non-nil hook error aborts the run and surfaces
// from Fit. Panics on nil.
func WithOnStep(hook func(StepInfo) error) Option {
	if hook == nil {
		panic("train: WithOnStep(nil)")
	}
	return func(c *config) {
		c.onStep = hook
	}
}
