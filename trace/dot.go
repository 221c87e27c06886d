// SPDX-License-Identifier: MIT
// Package: scalargrad/trace
//
// dot.go — Graphviz DOT exporter.
//
// Purpose (single responsibility):
//   • Render a computation graph as a DOT digraph ready for `dot -Tsvg`.
//   • Value nodes are record-shaped "{ data | grad }" boxes; each
//     non-leaf additionally gets a small junction node labeled with its
//     operation, so the picture separates data flow from operations.
//
// Layout:
//   • rankdir=LR: leaves on the left, root on the right, mirroring the
//     forward pass.
//   • Declarations come first in post-order (each value node followed by
//     its junction and the junction→value edge), then all operand→junction
//     edges in the same order.
//
// Determinism & testing:
//   • IDs come from the grad.Nodes post-order index, so the output for a
//     given graph is byte-stable and golden-testable.

package trace

import (
	"fmt"
	"strings"

	"github.com/dgalbally/scalargrad/grad"
)

// Dot renders the computation graph reachable from root as Graphviz DOT.
//
// Returns the complete digraph text, including the trailing newline
// after the closing brace.
//
// Validation:
//   - root == nil ⇒ ErrNilRoot.
//   - malformed graph ⇒ grad.ErrCycleDetected, wrapped.
//
// Complexity: O(V+E) time, O(V) auxiliary space.
func Dot(root *grad.Value, opts ...Option) (string, error) {
	if root == nil {
		return "", fmt.Errorf("Dot: %w", ErrNilRoot)
	}
	cfg := newConfig(opts...)

	nodes, err := grad.Nodes(root)
	if err != nil {
		return "", fmt.Errorf("Dot: %w", err)
	}
	id := indexByNode(nodes)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("digraph %q {\n", cfg.name))
	sb.WriteString("  rankdir=LR;\n")

	// Value nodes in post-order, each followed by its op junction.
	for i, v := range nodes {
		sb.WriteString(fmt.Sprintf("  n%d [shape=record, label=\"{ data %.*f | grad %.*f }\"];\n",
			i, cfg.digits, v.Data, cfg.digits, v.Grad))
		if v.OpKind() != grad.OpLeaf {
			sb.WriteString(fmt.Sprintf("  n%dop [label=%q];\n", i, opLabel(v)))
			sb.WriteString(fmt.Sprintf("  n%dop -> n%d;\n", i, i))
		}
	}

	// Operand edges route into the consumer's junction. Fused operands
	// (x*x) are stored once, so they draw exactly one edge.
	for i, v := range nodes {
		for _, operand := range v.Operands() {
			sb.WriteString(fmt.Sprintf("  n%d -> n%dop;\n", id[operand], i))
		}
	}
	sb.WriteString("}\n")

	return sb.String(), nil
}
