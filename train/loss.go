package train

import (
	"fmt"

	"github.com/dgalbally/scalargrad/grad"
)

// MarginLoss builds the max-margin objective over the full batch as one
// computation graph rooted at the returned loss node:
//
//	loss = mean_i relu(1 − y_i·score_i) + alpha·Σ_p p²
//
// Every sample's forward pass hangs off the same parameter leaves, so a
// single Backward on the loss accumulates batch gradients onto them.
// Accuracy is the fraction of rows whose score sign agrees with the
// label; it is reported from the same forward pass at no extra cost.
func MarginLoss(model Model, X [][]float64, y []float64, alpha float64) (*grad.Value, float64, error) {
	if model == nil {
		return nil, 0, fmt.Errorf("MarginLoss: %w", ErrNilModel)
	}
	if len(X) == 0 {
		return nil, 0, fmt.Errorf("MarginLoss: %w", ErrEmptyDataset)
	}
	if len(X) != len(y) {
		return nil, 0, fmt.Errorf("MarginLoss: %d samples, %d labels: %w",
			len(X), len(y), ErrSizeMismatch)
	}

	// Hinge term per sample; sign agreement counted along the way.
	var sum *grad.Value
	correct := 0
	for i, row := range X {
		score, err := forwardScore(model, row)
		if err != nil {
			return nil, 0, fmt.Errorf("MarginLoss: row %d: %w", i, err)
		}
		hinge := score.MulConst(y[i]).Neg().AddConst(1).Relu()
		if sum == nil {
			sum = hinge
		} else {
			sum = sum.Add(hinge)
		}
		if (y[i] > 0) == (score.Data > 0) {
			correct++
		}
	}
	loss := sum.DivConst(float64(len(X)))

	// L2 penalty keeps weights small; alpha 0 skips the term entirely.
	if alpha > 0 {
		reg := grad.NewValue(0)
		for _, p := range model.Parameters() {
			reg = reg.Add(p.Mul(p))
		}
		loss = loss.Add(reg.MulConst(alpha))
	}

	return loss, float64(correct) / float64(len(X)), nil
}

// forwardScore lifts one feature row into leaf nodes and runs the
// model, demanding exactly one output score.
func forwardScore(model Model, row []float64) (*grad.Value, error) {
	leaves := make([]*grad.Value, len(row))
	for i, x := range row {
		leaves[i] = grad.NewValue(x)
	}

	out, err := model.Forward(leaves)
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("%d outputs: %w", len(out), ErrNotScalar)
	}

	return out[0], nil
}
