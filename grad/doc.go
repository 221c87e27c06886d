// Package grad implements a minimal reverse-mode automatic
// differentiation engine over scalar values.
//
// What:
//
//   - Value: one scalar node in a dynamically built computation graph.
//     Applying an operation (Add, Mul, Pow, Relu and the derived Neg,
//     Sub, Div) to existing nodes creates a new node eagerly — forward
//     evaluation happens at construction time, there is no lazy stage.
//   - Backward: a single reverse pass from any root node. It builds a
//     topological order of the reachable subgraph (post-order DFS over
//     operand edges), seeds the root gradient with 1, and walks the
//     order in reverse, accumulating exact chain-rule contributions
//     into every ancestor's Grad field.
//   - Nodes: the same traversal exposed directly, for tooling that
//     needs to enumerate a graph (exporters, graph-wide resets, tests).
//
// Why:
//
//   - Train tiny neural networks (see the nn and train packages) with
//     exact gradients instead of numerical approximations
//   - Teach backpropagation: one scalar per node keeps every local
//     derivative small enough to verify by hand
//   - Serve as the self-contained leaf of the module: grad depends on
//     nothing but the standard library
//
// Key Types & Constants:
//
//   - Value: exported Data (forward result) and Grad (gradient
//     accumulator) fields; unexported operand links
//   - Op: OpLeaf, OpAdd, OpMul, OpPow, OpRelu — the tag the backward
//     pass dispatches on (no per-node closures are allocated)
//
// Gradient contract:
//
//   - Grad accumulates: every backward pass ADDS contributions. Nothing
//     is zeroed implicitly; callers reset gradients between iterations
//     via ZeroGrad (the train package does this each step).
//   - After Backward(r): r.Grad == 1 and, for every ancestor a,
//     a.Grad holds ∂r/∂a summed over all paths from r to a.
//   - A node used twice by the same operation (x.Mul(x)) is stored as
//     a single operand; both analytic contributions still apply.
//
// Concurrency:
//
//   - A graph is single-goroutine: construction, Data/Grad access and
//     Backward mutate shared nodes without synchronization. Distinct
//     graphs are independent. Guard any cross-goroutine reuse (for
//     example shared parameter leaves) externally.
//
// Complexity:
//
//   - Operation construction: O(1) time and memory per node
//   - Backward, Nodes:        O(V+E) time, O(V) memory
//
// Errors:
//
//   - ErrNilValue        — nil *Value passed to a traversal entry point
//   - ErrInvalidExponent — Pow called with a NaN or ±Inf exponent
//   - ErrCycleDetected   — traversal found a node already on the DFS
//     stack; operand links were corrupted, since ordinary construction
//     cannot form a cycle
//
// Division by zero, negative bases under fractional exponents, and
// other floating-point pathologies are NOT errors: they propagate as
// ±Inf/NaN through Data and Grad, exactly as IEEE 754 dictates.
package grad
