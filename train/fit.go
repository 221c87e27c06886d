package train

import "fmt"

// Fit runs full-batch gradient descent for the configured number of
// steps and returns the per-step history.
//
// Each step:
//  1. Build a fresh objective graph over the whole batch (MarginLoss).
//  2. Reset parameter gradients, then run one backward pass. The order
//     matters: the engine accumulates, and the reset is Fit's job.
//  3. Update every parameter: p.Data -= lr·p.Grad, with lr from the
//     schedule (default linear decay 1.0 → 0.1 over 100 steps).
//  4. Deliver StepInfo to the OnStep hook, if any; a hook error aborts
//     the run.
//
// Loss and accuracy in each StepInfo describe the model BEFORE that
// step's update (they come from the same forward pass the gradients
// do).
func Fit(model Model, X [][]float64, y []float64, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	if model == nil {
		return nil, fmt.Errorf("Fit: %w", ErrNilModel)
	}

	params := model.Parameters()
	history := make([]StepInfo, 0, cfg.steps)
	for step := 0; step < cfg.steps; step++ {
		loss, accuracy, err := MarginLoss(model, X, y, cfg.alpha)
		if err != nil {
			return nil, fmt.Errorf("Fit: step %d: %w", step, err)
		}

		model.ZeroGrad()
		if err := loss.Backward(); err != nil {
			return nil, fmt.Errorf("Fit: step %d: %w", step, err)
		}

		lr := cfg.schedule(step, cfg.steps)
		for _, p := range params {
			p.Data -= lr * p.Grad
		}

		info := StepInfo{Step: step, Loss: loss.Data, Accuracy: accuracy, LR: lr}
		history = append(history, info)
		if cfg.onStep != nil {
			if err := cfg.onStep(info); err != nil {
				return nil, fmt.Errorf("Fit: step %d: %w", step, err)
			}
		}
	}

	last := history[len(history)-1]

	return &Result{
		Steps:         cfg.steps,
		FinalLoss:     last.Loss,
		FinalAccuracy: last.Accuracy,
		History:       history,
	}, nil
}
