// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over any core.Graph, returning
// unweighted shortest-path depths, parent links and visit order.
//
// BFS explores vertices in increasing edge count from the start vertex and
// ignores edge weights entirely. On a graph where every edge has the same
// positive weight, Depth[v]·w equals the Dijkstra distance of v, which is how
// the dijkstra package uses this one as a test oracle.
//
// Options:
//
//	WithContext(ctx)  – cancellation, checked once per dequeued vertex.
//	WithMaxDepth(d)   – d > 0 stops expanding past depth d; 0 means no limit;
//	                    d < 0 is reported as ErrOptionViolation.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
