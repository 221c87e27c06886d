package grad_test

import (
	"fmt"
	"math"
	"strings"

	"github.com/dgalbally/scalargrad/grad"
)

// ExampleValue_Backward differentiates d = a*b + c at a=2, b=-3, c=10.
// Graph structure:
//
//	a(2)   b(-3)
//	   \   /
//	    (*)     c(10)
//	      \     /
//	       (+)
//	        d
//
// Expected gradients: dd/da = b = -3, dd/db = a = 2, dd/dc = 1.
func ExampleValue_Backward() {
	a := grad.NewValue(2)
	b := grad.NewValue(-3)
	c := grad.NewValue(10)

	// Forward: build the expression graph node by node.
	d := a.Mul(b).Add(c)

	// Backward: seed dd/dd = 1 and propagate to every ancestor.
	if err := d.Backward(); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("d = %g\n", d.Data)
	fmt.Printf("dd/da = %g\n", a.Grad)
	fmt.Printf("dd/db = %g\n", b.Grad)
	fmt.Printf("dd/dc = %g\n", c.Grad)

	// Output:
	// d = 4
	// dd/da = -3
	// dd/db = 2
	// dd/dc = 1
}

// ExampleValue_Pow shows the one fallible constructor: a NaN or ±Inf
// exponent is rejected up front, before any node is allocated.
func ExampleValue_Pow() {
	x := grad.NewValue(3)

	square, err := x.Pow(2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("x^2 = %g\n", square.Data)

	// An exponent must be a real number: ±Inf and NaN are rejected.
	if _, err := x.Pow(math.Inf(1)); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// x^2 = 9
	// error: Pow(+Inf): grad: exponent is not a real number
}

// ExampleNodes lists a graph in dependency order: operands always
// precede their consumers, and the root comes last. For
// y = (x*2) + 1 the order is the two leaves interleaved with the
// product, then the sum.
func ExampleNodes() {
	x := grad.NewValue(5)
	y := x.MulConst(2).AddConst(1)

	nodes, err := grad.Nodes(y)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ops := make([]string, len(nodes))
	for i, n := range nodes {
		ops[i] = n.OpKind().String()
	}
	fmt.Println(strings.Join(ops, " "))

	// Output:
	// leaf leaf * leaf +
}
