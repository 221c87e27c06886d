package grad

import (
	"fmt"
	"math"
)

// newUnary builds a node produced by a single-operand primitive.
func newUnary(kind Op, in *Value, data float64) *Value {
	return &Value{Data: data, kind: kind, operands: []*Value{in}}
}

// newBinary builds a node produced by a two-operand primitive.
// When both resolved operands are the same node, the pointer is stored
// once: the backward dispatch re-expands lhs and rhs from the single
// slot, so both additive contributions still land on it.
func newBinary(kind Op, lhs, rhs *Value, data float64) *Value {
	operands := []*Value{lhs, rhs}
	if lhs == rhs {
		operands = operands[:1]
	}

	return &Value{Data: data, kind: kind, operands: operands}
}

// lhs returns the first operand of a binary node.
func (v *Value) lhs() *Value { return v.operands[0] }

// rhs returns the second operand of a binary node; for a deduplicated
// self-application it is the same node as lhs.
func (v *Value) rhs() *Value { return v.operands[len(v.operands)-1] }

// Add returns a new node computing v + o.
// Backward rule: both operands receive the output gradient unscaled.
func (v *Value) Add(o *Value) *Value {
	return newBinary(OpAdd, v, o, v.Data+o.Data)
}

// AddConst returns a new node computing v + c.
// The plain number is lifted into a leaf first; addition commutes, so
// the same method serves c + v.
func (v *Value) AddConst(c float64) *Value {
	return v.Add(NewValue(c))
}

// Mul returns a new node computing v * o.
// Backward rule: each operand receives the other operand's Data times
// the output gradient.
func (v *Value) Mul(o *Value) *Value {
	return newBinary(OpMul, v, o, v.Data*o.Data)
}

// MulConst returns a new node computing v * c, lifting c into a leaf.
func (v *Value) MulConst(c float64) *Value {
	return v.Mul(NewValue(c))
}

// Pow returns a new node computing v raised to the plain exponent p.
// The exponent is captured on the node, not lifted into the graph, and
// must be a real number: NaN or ±Inf yields ErrInvalidExponent. All
// base pathologies (negative base with fractional exponent, zero base
// with negative exponent) follow math.Pow and propagate as NaN/±Inf.
//
// Backward rule: base.Grad += p * base.Data^(p-1) * out.Grad.
func (v *Value) Pow(p float64) (*Value, error) {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return nil, fmt.Errorf("Pow(%v): %w", p, ErrInvalidExponent)
	}

	return v.pow(p), nil
}

// pow is the unchecked power primitive shared by Pow and Div.
// Callers inside the package only pass finite exponents.
func (v *Value) pow(p float64) *Value {
	out := newUnary(OpPow, v, math.Pow(v.Data, p))
	out.exponent = p

	return out
}

// Relu returns a new node computing max(0, v).
// Backward rule: the operand receives the output gradient only while
// the output is strictly positive.
func (v *Value) Relu() *Value {
	return newUnary(OpRelu, v, math.Max(0, v.Data))
}

// Neg returns a new node computing -v.
// Derived: composed as v * (-1), inheriting the Mul backward rule.
func (v *Value) Neg() *Value {
	return v.MulConst(-1)
}

// Sub returns a new node computing v - o.
// Derived: composed as v + (-o), inheriting Add and Mul backward rules.
func (v *Value) Sub(o *Value) *Value {
	return v.Add(o.Neg())
}

// Div returns a new node computing v / o.
// Derived: composed as v * o^(-1), inheriting Mul and Pow backward
// rules. A zero divisor is not an error; it produces ±Inf or NaN.
func (v *Value) Div(o *Value) *Value {
	return v.Mul(o.pow(-1))
}

// DivConst returns a new node computing v / c, lifting c into a leaf.
func (v *Value) DivConst(c float64) *Value {
	return v.Div(NewValue(c))
}
