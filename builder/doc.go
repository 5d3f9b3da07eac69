// SPDX-License-Identifier: MIT

// Package builder assembles deterministic integer-vertex graph fixtures for
// tests and benchmarks of the path and spanning-tree algorithms.
//
// One orchestrator, BuildGraph(gopts, bopts, cons...), creates a
// core.AdjacencyList, resolves the builder configuration from functional
// options and applies constructors in order. Same inputs, options, seed and
// constructor order give identical graphs.
//
// Constructors:
//
//	Path(n)            0—1—…—(n−1)
//	Cycle(n)           Path(n) plus (n−1)—0; n ≥ 3
//	Complete(n)        every unordered pair
//	Grid(w, h)         4-connected lattice, vertex y·w+x
//	RandomSparse(n, p) each unordered pair independently with probability p
//
// Weights come from the configured WeightFn (DefaultWeightFn returns 1).
package builder
