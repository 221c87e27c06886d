// Package train fits a scalar-graph model to labeled data with
// full-batch gradient descent on a max-margin objective.
//
// What:
//
//	The three ingredients of the classic demo loop, as a library:
//	MarginLoss builds the SVM-style hinge objective (plus L2 weight
//	penalty) as one computation graph; Schedule maps a step index to a
//	learning rate; Fit wires them into zero-grad → forward → backward →
//	update iterations and reports per-step history.
//
// Why:
//
//	Training code is where the engine's explicit-reset contract bites:
//	gradients accumulate across Backward calls unless somebody zeroes
//	them. That somebody is Fit — once per step, before the backward
//	pass — so the engine itself never resets anything behind the
//	caller's back.
//
// Model contract:
//
//	Anything exposing Forward / Parameters / ZeroGrad trains; *nn.MLP
//	satisfies it. Forward must return a single score node per row
//	(binary classification by sign).
//
// Objective:
//
//	loss = mean_i relu(1 − y_i·score_i) + alpha·Σ_p p²   with y_i ∈ {−1,+1}.
//
//	The hinge wants every sample not just classified but clear of the
//	margin; the L2 term (alpha, default 1e-4) keeps weights small.
//	Accuracy counts plain sign agreement.
//
// Errors:
//
//	ErrNilModel     - nil model.
//	ErrEmptyDataset - no rows.
//	ErrSizeMismatch - len(X) != len(y).
//	ErrNotScalar    - model emitted more than one score per row.
//
//	Model forward errors pass through wrapped; hook errors abort Fit.
//
// Determinism:
//
//	Fit draws no randomness of its own. Fixed model init + fixed data
//	gives an identical Result every run.
package train
