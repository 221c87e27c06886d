// Package grad core types: the Value node, the Op tag, and the sentinel
// errors shared by construction and traversal.
//
// Errors:
//
//	ErrNilValue        - nil *Value where a node is required.
//	ErrInvalidExponent - Pow exponent is NaN or ±Inf.
//	ErrCycleDetected   - operand links form a cycle (forged graph).
package grad

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and traversal.
var (
	// ErrNilValue indicates a nil *Value was passed where a node is required.
	ErrNilValue = errors.New("grad: nil *Value")

	// ErrInvalidExponent indicates Pow received an exponent that is not a
	// real number (NaN or ±Inf). The exponent must be a plain finite float.
	ErrInvalidExponent = errors.New("grad: exponent is not a real number")

	// ErrCycleDetected indicates a traversal found a node that is already
	// on the current DFS stack. Graphs built through this package are
	// acyclic by construction, so a cycle means operand links were
	// corrupted externally; the traversal fails fast instead of looping.
	ErrCycleDetected = errors.New("grad: cycle detected in computation graph")
)

// Op identifies the primitive operation that produced a Value.
// Derived operations (Neg, Sub, Div) are compositions of these
// primitives and never appear as tags of their own.
type Op uint8

const (
	// OpLeaf marks a node created directly from a number; it has no
	// operands and the backward pass skips it.
	OpLeaf Op = iota

	// OpAdd marks out = lhs + rhs.
	OpAdd

	// OpMul marks out = lhs * rhs.
	OpMul

	// OpPow marks out = base ^ exponent, where the exponent is a plain
	// float captured on the node, never a node itself.
	OpPow

	// OpRelu marks out = max(0, in).
	OpRelu
)

// String returns the conventional symbol for the operation.
func (op Op) String() string {
	switch op {
	case OpLeaf:
		return "leaf"
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	case OpPow:
		return "^"
	case OpRelu:
		return "relu"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// Value is one scalar node of a computation graph.
//
// Data and Grad are deliberately exported and mutable: a training loop
// overwrites Data on parameter leaves (gradient-descent update) and
// resets Grad between iterations. The graph linkage — producing
// operation and operand list — is fixed at construction and only
// readable through OpKind and Operands, so ordinary use cannot break
// the acyclicity invariant.
//
// Node identity is pointer identity: two distinct nodes may carry equal
// Data, and traversals key their visited sets on the *Value itself.
type Value struct {
	// Data is the scalar result of forward evaluation.
	Data float64

	// Grad accumulates ∂root/∂this for the most recent backward pass
	// (or the sum of several, if the caller chose not to reset).
	Grad float64

	// kind tags the producing operation; the backward pass dispatches on it.
	kind Op

	// operands lists the 0, 1 or 2 parent nodes combined to produce this
	// node, deduplicated by pointer identity: x.Mul(x) stores x once.
	operands []*Value

	// exponent is meaningful only when kind == OpPow.
	exponent float64
}

// NewValue creates a leaf node holding x. Any float64 is accepted,
// including NaN and ±Inf — non-finite inputs flow through forward and
// backward arithmetic under the usual IEEE 754 rules.
func NewValue(x float64) *Value {
	return &Value{Data: x, kind: OpLeaf}
}

// ZeroGrad resets this node's gradient accumulator to 0.
// It never touches operands; graph-wide resets walk Nodes.
func (v *Value) ZeroGrad() {
	v.Grad = 0
}

// OpKind reports the operation that produced v.
func (v *Value) OpKind() Op {
	return v.kind
}

// Exponent reports the exponent captured by a Pow node.
// For every other kind it is 0 and carries no meaning.
func (v *Value) Exponent() float64 {
	return v.exponent
}

// Operands returns a copy of v's operand list (nil for leaves).
// Mutating the returned slice does not affect the graph.
func (v *Value) Operands() []*Value {
	if len(v.operands) == 0 {
		return nil
	}
	out := make([]*Value, len(v.operands))
	copy(out, v.operands)

	return out
}

// String renders the node in the conventional debugging form.
func (v *Value) String() string {
	return fmt.Sprintf("Value(data=%g, grad=%g, op=%s)", v.Data, v.Grad, v.kind)
}
