// Backward pass: topological ordering of the reachable subgraph and
// reverse-order gradient accumulation.
//
// The traversal mirrors a classic three-color DFS: White (undiscovered),
// Gray (on the recursion stack), Black (fully explored, appended to the
// post-order). A Gray hit cannot happen for graphs built through this
// package — operands always predate their consumers — so it is treated
// as corruption and fails fast with ErrCycleDetected.
package grad

import "math"

// Vertex states for the operand-edge DFS.
const (
	white = iota // white: not yet discovered
	gray         // gray: on the current DFS stack (in progress)
	black        // black: node and all operands fully explored
)

// Nodes returns every node reachable from root by following operand
// edges, in post-order: each node appears strictly after all of its
// operands, and exactly once even under fan-out (diamond shapes). The
// result is therefore a valid topological order of the subgraph, with
// root in the final slot.
//
// Complexity: O(V+E) time, O(V) memory.
func Nodes(root *Value) ([]*Value, error) {
	if root == nil {
		return nil, ErrNilValue
	}

	// Visited states keyed on node identity (the pointer itself).
	state := make(map[*Value]int)
	order := make([]*Value, 0)

	var visit func(n *Value) error
	visit = func(n *Value) error {
		// A node already on the DFS stack means the operand links loop.
		if state[n] == gray {
			return ErrCycleDetected
		}
		// Fully explored nodes are appended exactly once; skip them.
		if state[n] == black {
			return nil
		}
		state[n] = gray
		// Recurse into operands first so they precede n in the order.
		for _, operand := range n.operands {
			if err := visit(operand); err != nil {
				return err
			}
		}
		state[n] = black
		order = append(order, n)

		return nil
	}
	if err := visit(root); err != nil {
		return nil, err
	}

	return order, nil
}

// Backward runs one reverse-mode differentiation pass rooted at v.
//
// Steps:
//  1. Build the topological order of the reachable subgraph (Nodes).
//     A forged cycle surfaces here, before any gradient is touched.
//  2. Seed v.Grad = 1 — assignment, not accumulation: the derivative of
//     the root with respect to itself is 1 regardless of prior state.
//  3. Walk the order in reverse. Every node's consumers sit later in
//     the forward order, hence have already propagated by the time the
//     node itself runs, so the node's Grad is final when it is read.
//
// Gradients ACCUMULATE into ancestors: a second Backward without a
// reset compounds stale gradients instead of reproducing them. Use
// ZeroGrad (per node) or walk Nodes to reset between passes.
func (v *Value) Backward() error {
	order, err := Nodes(v)
	if err != nil {
		return err
	}

	// Seed: ∂root/∂root = 1.
	v.Grad = 1

	// Reverse topological order: root first, leaves last.
	for i := len(order) - 1; i >= 0; i-- {
		order[i].propagate()
	}

	return nil
}

// propagate applies the local derivative rule of v's producing
// operation, adding scaled contributions of v.Grad into each operand's
// Grad. Operand Data is read at propagation time. For a deduplicated
// self-application both lhs and rhs resolve to the same node, so the
// two additive statements double up on it — which is exactly the
// analytic derivative (d(x*x)/dx = 2x, d(x+x)/dx = 2).
func (v *Value) propagate() {
	switch v.kind {
	case OpAdd:
		v.lhs().Grad += v.Grad
		v.rhs().Grad += v.Grad
	case OpMul:
		lhs, rhs := v.lhs(), v.rhs()
		lhs.Grad += rhs.Data * v.Grad
		rhs.Grad += lhs.Data * v.Grad
	case OpPow:
		base := v.operands[0]
		base.Grad += v.exponent * math.Pow(base.Data, v.exponent-1) * v.Grad
	case OpRelu:
		if v.Data > 0 {
			v.operands[0].Grad += v.Grad
		}
	case OpLeaf:
		// Leaves have no operands; nothing to do.
	}
}
