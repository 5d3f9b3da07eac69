// SPDX-License-Identifier: MIT

// Package core defines the graph capabilities consumed by the algorithms in
// this module and two concrete, generic containers that provide them.
//
// Capabilities:
//
//	Edge[V]            From() V, To() V, Weight() float64
//	Graph[V,E]         OutgoingEdgesFrom(v) []E          (shortest paths, BFS)
//	KruskalGraph[V,E]  AllVertices() []V, AllEdges() []E (spanning trees)
//	PrimGraph[V,E]     both of the above
//
// Vertices are any comparable type; equality is Go value equality. Edges are
// any type exposing endpoints and a non-negative weight. Algorithms are
// written against the interfaces, so callers may bring their own graph type.
//
// Containers:
//
//   - AdjacencyList[V,E] — mutable, directed or undirected, guarded by two
//     sync.RWMutex (muVert for vertices, muEdgeAdj for edges and adjacency).
//     In undirected mode AddEdge(e) stores e under e.From() and e.Reversed()
//     under e.To(); AllEdges reports e once.
//   - EdgeList[V,E] — immutable snapshot of an edge slice; vertices are the
//     endpoints, in first-seen order.
//
// Edge types:
//
//   - WeightedEdge[V]     — endpoints and weight.
//   - EdgeWithData[V,D]   — a WeightedEdge carrying a payload D (for example
//     the maze wall an edge stands for).
//
// Configuration (GraphOption):
//
//	WithDirected(bool)  default false: every edge is traversable both ways.
//	WithLoops()         permit from == to.
//	WithMultiEdges()    permit parallel edges between the same endpoints.
//
// Errors:
//
//	ErrBadWeight           – negative or NaN weight.
//	ErrLoopNotAllowed      – self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges are disabled.
//	ErrVertexNotFound      – query for a vertex that does not exist.
//
// Iteration order of AllVertices, AllEdges and OutgoingEdgesFrom is insertion
// order, so algorithm results are reproducible run to run.
package core
