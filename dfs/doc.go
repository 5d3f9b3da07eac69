// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search over any core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): traverse the tree reachable from start
//   - Forest(g, opts...): restart from every unvisited vertex in AllVertices order
//   - Components / IsForest: connectivity and acyclicity of undirected graphs
//   - WithShuffle(rng): visit neighbours in random order, which turns the
//     search tree into a uniform-ish random spanning tree (the recursive
//     backtracker used for maze carving)
//
// The walk is iterative with an explicit frame stack, so depth is bounded by
// memory, not by the goroutine stack; a 4096×4096 maze is a single path of
// up to 16M vertices.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V) for the stack and result maps.
//
// Options:
//
//   - WithContext(ctx)   allows cancellation via context.Context.
//   - WithMaxDepth(d)    does not descend below depth d (d ≥ 0).
//   - WithShuffle(rng)   randomises neighbour order with rng.
//
// Errors:
//
//   - ErrGraphNil          if g is nil.
//   - ErrOptionViolation   for a negative MaxDepth.
//   - context.Canceled     if ctx is done (partial result returned).
package dfs
