// Package nn builds neurons, layers and multi-layer perceptrons on top
// of the grad engine.
//
// What:
//
//	Scalar-level neural network modules. Every weight and bias is one
//	*grad.Value leaf; a forward pass grows the computation graph node by
//	node, so one Backward on the loss differentiates the whole network.
//
// Why:
//
//	The engine differentiates arbitrary scalar expressions; this package
//	packages the three standard shapes — Neuron (act(Σ w·x + b)), Layer
//	(a bank of neurons over one input row) and MLP (a chain of layers,
//	hidden ReLU, linear output) — behind a single Module interface so a
//	training loop can reach every parameter without caring which shape
//	it holds.
//
// Construction:
//
//	Weights are drawn from U(-1, 1), biases start at 0. Construction is
//	stochastic, so every constructor demands an explicit RNG via
//	WithSeed or WithRand and fails with ErrNeedRandSource otherwise.
//	Draws happen in a fixed order (layer by layer, neuron by neuron,
//	weight by weight), so one seed always yields one network.
//
// Errors:
//
//	ErrBadDimension      - a width or fan-in below 1.
//	ErrDimensionMismatch - Forward input row does not match fan-in.
//	ErrNoLayers          - NewMLP with an empty layer-size list.
//	ErrNeedRandSource    - constructor called without WithSeed/WithRand.
//
// Complexity:
//
//	Forward over an MLP costs O(Σ nin_i·nout_i) node allocations; the
//	graph it builds is re-walked by Backward at the same cost.
//
// See grad for the engine contract and train for the SGD loop.
package nn
