// Package trace renders computation graphs built by the grad package as
// text: Graphviz DOT for publication-quality renders and Mermaid
// flowcharts for README/wiki embedding. It exists so demos, the CLI and
// debugging sessions can inspect exactly which operands feed which
// operation and what every gradient is after a Backward pass.
//
// The package offers the following key components:
//
//   - Exporters:
//     – Dot:     Graphviz digraph, rankdir=LR, record-shaped value
//     nodes "{ data | grad }" plus small operation junction nodes.
//     – Mermaid: "graph LR" flowchart with classDef styling that
//     separates leaves from operation junctions.
//   - Configuration primitives (Dot only):
//     – Option:         a function that mutates the exporter config.
//     – WithGraphName:  digraph name (default "G").
//     – WithPrecision:  decimal digits for data/grad labels (default 4).
//
// Conventions:
//
//   - Node IDs are stable and generated: value node i is "n<i>" where i
//     is the node's position in the post-order traversal returned by
//     grad.Nodes, and its operation junction (non-leaves only) is
//     "n<i>op". Operands therefore always carry smaller indices than
//     their consumers, and the root is always the highest index.
//   - Every operand edge routes into the consumer's junction, and one
//     edge leads from the junction to the consumer's value node, so the
//     rendered picture reads operands → op → result left to right.
//   - Generated IDs contain only [a-z0-9], so no escaping or sanitizing
//     pass is needed for either output dialect.
//
// Guarantees:
//
//   - Deterministic output: the same graph always renders to the same
//     string, byte for byte.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; exporters themselves never panic.
//   - Structured sentinel errors: ErrNilRoot for a nil root,
//     grad.ErrCycleDetected propagated unchanged (errors.Is) when the
//     traversal rejects a malformed graph.
//   - O(V+E) time and a single output allocation per call.
//
// See individual function documentation for detailed contracts and
// parameter descriptions.
package trace
