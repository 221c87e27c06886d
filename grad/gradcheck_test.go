package grad_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/dgalbally/scalargrad/grad"
)

// TestBackward_MatchesFiniteDifferences cross-checks analytic leaf
// gradients against a central-difference oracle over randomly generated
// DAGs (fan-in <= 2). Graphs are produced as fixed op programs so the
// same structure can be re-evaluated at perturbed leaf values.
func TestBackward_MatchesFiniteDifferences(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 7} {
		for _, steps := range []int{5, 10, 20} {
			t.Run(fmt.Sprintf("seed=%d,steps=%d", seed, steps), func(t *testing.T) {
				rng := rand.New(rand.NewSource(seed))

				// 1. Sample leaves away from zero so no ReLU hinge or
				//    power base sits inside the differencing window.
				leafVals := make([]float64, 4)
				for i := range leafVals {
					sign := 1.0
					if rng.Intn(2) == 0 {
						sign = -1.0
					}
					leafVals[i] = sign * (0.25 + 1.5*rng.Float64())
				}

				// 2. Generate the program once, from the base values.
				prog := randomProgram(rng, leafVals, steps)

				// 3. Analytic gradients from one backward pass.
				leaves, root := buildGraph(prog, leafVals)
				require.NoError(t, root.Backward())

				// 4. Numeric gradient per leaf via central differences.
				for i, leaf := range leaves {
					f := func(x float64) float64 {
						perturbed := append([]float64(nil), leafVals...)
						perturbed[i] = x
						return evalProgram(prog, perturbed)
					}
					want := fd.Derivative(f, leafVals[i], &fd.Settings{Formula: fd.Central})
					tol := 1e-6 * (1 + math.Abs(want))
					assert.InDelta(t, want, leaf.Grad, tol, "leaf %d", i)
				}
			})
		}
	}
}

// ---------------------------------------------------------------------
// Program harness: a graph as a flat list of ops over a value pool.
// Entry i < len(leaves) is leaf i; entry len(leaves)+j is the result of
// prog[j]; the root is the last entry.
// ---------------------------------------------------------------------

type progOp struct {
	kind byte // '+' add, '*' mul, 'r' relu, 'p' square, 'h' halve
	lhs  int
	rhs  int
}

// randomProgram draws ops over a growing pool. Two guards keep the
// finite-difference oracle well conditioned, both decided from the base
// leaf values and frozen into the program: any step whose magnitude
// would exceed 100 becomes a halving step, and ReLU is only applied to
// operands clear of the hinge.
func randomProgram(rng *rand.Rand, leafVals []float64, steps int) []progOp {
	pool := append([]float64(nil), leafVals...)
	prog := make([]progOp, 0, steps)
	for len(prog) < steps {
		op := progOp{lhs: rng.Intn(len(pool)), rhs: rng.Intn(len(pool))}
		switch rng.Intn(10) {
		case 0, 1, 2, 3:
			op.kind = '+'
		case 4, 5, 6:
			op.kind = '*'
		case 7, 8:
			op.kind = 'r'
		default:
			op.kind = 'p'
		}
		if op.kind == 'r' && math.Abs(pool[op.lhs]) < 1e-2 {
			op.kind = '+'
		}
		if v := evalOp(op, pool); math.Abs(v) > 100 {
			op.kind = 'h'
		}
		pool = append(pool, evalOp(op, pool))
		prog = append(prog, op)
	}
	return prog
}

func evalOp(op progOp, pool []float64) float64 {
	switch op.kind {
	case '+':
		return pool[op.lhs] + pool[op.rhs]
	case '*':
		return pool[op.lhs] * pool[op.rhs]
	case 'r':
		return math.Max(0, pool[op.lhs])
	case 'p':
		return math.Pow(pool[op.lhs], 2)
	default: // 'h'
		return pool[op.lhs] * 0.5
	}
}

// evalProgram computes the root value on plain floats, mirroring the
// engine's forward arithmetic op for op.
func evalProgram(prog []progOp, leafVals []float64) float64 {
	pool := append([]float64(nil), leafVals...)
	for _, op := range prog {
		pool = append(pool, evalOp(op, pool))
	}
	return pool[len(pool)-1]
}

// buildGraph materialises the program as engine nodes and returns the
// leaves plus the root.
func buildGraph(prog []progOp, leafVals []float64) ([]*grad.Value, *grad.Value) {
	pool := make([]*grad.Value, len(leafVals), len(leafVals)+len(prog))
	for i, x := range leafVals {
		pool[i] = grad.NewValue(x)
	}
	for _, op := range prog {
		var node *grad.Value
		switch op.kind {
		case '+':
			node = pool[op.lhs].Add(pool[op.rhs])
		case '*':
			node = pool[op.lhs].Mul(pool[op.rhs])
		case 'r':
			node = pool[op.lhs].Relu()
		case 'p':
			node, _ = pool[op.lhs].Pow(2)
		default: // 'h'
			node = pool[op.lhs].MulConst(0.5)
		}
		pool = append(pool, node)
	}
	return pool[:len(leafVals)], pool[len(pool)-1]
}
