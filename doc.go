// Package scalargrad is a tiny playground for reverse-mode automatic
// differentiation on scalars — build a computation graph one number at a
// time, run one backward pass, and read exact gradients off every node.
//
// 🚀 What is scalargrad?
//
//	A small, deterministic library that brings together:
//		• grad:    the autodiff engine — scalar Values, add/mul/pow/relu,
//		           topological backward pass with cycle fail-fast
//		• nn:      neurons, layers and multilayer perceptrons built on grad
//		• dataset: reproducible toy datasets (two moons, Gaussian blobs)
//		• train:   SVM max-margin loss, accuracy, LR schedules, SGD loop
//		• trace:   Graphviz DOT and Mermaid export of any computation graph
//
// ✨ Why scalargrad?
//
//   - Pedagogical first — one scalar per node, no tensors, no batching;
//     every derivative in the engine is a line you can check by hand
//   - Deterministic — all randomness flows through explicit seeds
//   - Honest errors — sentinel errors, errors.Is-friendly, no panics in
//     algorithm code
//   - Pure Go — no cgo; gonum supplies the evenly spaced sweeps in the
//     generators and the finite-difference oracle in the tests
//
// Quick ASCII example — the graph built by y = (a + b) * b:
//
//	a ──┐
//	    (+)──┐
//	b ──┘    (*)── y
//	b ───────┘
//
// One Backward() call on y fills a.Grad, b.Grad and y.Grad with ∂y/∂·.
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples, or start with examples/ and cmd/scalargrad.
//
//	go get github.com/dgalbally/scalargrad
package scalargrad
