// SPDX-License-Identifier: MIT
// Package: scalargrad/trace
//
// mermaid.go — Mermaid flowchart exporter.
//
// Purpose (single responsibility):
//   • Render a computation graph as a Mermaid "graph LR" flowchart that
//     pastes straight into Markdown fences, GitHub READMEs and wikis.
//   • Same topology as the DOT exporter: rectangular value nodes, round
//     operation junctions, operands flowing left to right.
//
// Styling:
//   • classDef "leaf" (blue) marks inputs, classDef "op" (orange) marks
//     operation junctions; black text keeps labels readable on light and
//     dark renderer themes alike.
//
// Determinism & testing:
//   • IDs come from the grad.Nodes post-order index; the output for a
//     given graph is byte-stable.

package trace

import (
	"fmt"
	"strings"

	"github.com/dgalbally/scalargrad/grad"
)

// Mermaid renders the computation graph reachable from root as a Mermaid
// flowchart. It always uses the package defaults (4-digit labels); use
// Dot for configurable output.
//
// Validation:
//   - root == nil ⇒ ErrNilRoot.
//   - malformed graph ⇒ grad.ErrCycleDetected, wrapped.
//
// Complexity: O(V+E) time, O(V) auxiliary space.
func Mermaid(root *grad.Value) (string, error) {
	if root == nil {
		return "", fmt.Errorf("Mermaid: %w", ErrNilRoot)
	}

	nodes, err := grad.Nodes(root)
	if err != nil {
		return "", fmt.Errorf("Mermaid: %w", err)
	}
	id := indexByNode(nodes)

	var sb strings.Builder
	sb.WriteString("graph LR\n")

	// Value nodes in post-order, each followed by its op junction.
	for i, v := range nodes {
		sb.WriteString(fmt.Sprintf("    n%d[\"data %.*f | grad %.*f\"]\n",
			i, defPrecision, v.Data, defPrecision, v.Grad))
		if v.OpKind() != grad.OpLeaf {
			sb.WriteString(fmt.Sprintf("    n%dop((\"%s\"))\n", i, opLabel(v)))
			sb.WriteString(fmt.Sprintf("    n%dop --> n%d\n", i, i))
		}
	}

	// Operand edges route into the consumer's junction.
	for i, v := range nodes {
		for _, operand := range v.Operands() {
			sb.WriteString(fmt.Sprintf("    n%d --> n%dop\n", id[operand], i))
		}
	}

	// Semantic styles: force black text for contrast on any theme.
	sb.WriteString("\n    %% Semantic styles\n")
	sb.WriteString("    classDef leaf fill:#e1f5fe,stroke:#01579b,color:#000;\n")
	sb.WriteString("    classDef op fill:#fff3e0,stroke:#e65100,color:#000;\n")
	for i, v := range nodes {
		if v.OpKind() == grad.OpLeaf {
			sb.WriteString(fmt.Sprintf("    class n%d leaf;\n", i))
		} else {
			sb.WriteString(fmt.Sprintf("    class n%dop op;\n", i))
		}
	}

	return sb.String(), nil
}
