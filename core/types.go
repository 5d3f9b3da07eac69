// SPDX-License-Identifier: MIT

package core

import "errors"

// Sentinel errors for graph containers.
var (
	// ErrBadWeight indicates a negative or NaN edge weight.
	ErrBadWeight = errors.New("core: edge weight must be a non-negative number")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge is a weighted connection between two vertices.
type Edge[V comparable] interface {
	From() V
	To() V
	Weight() float64
}

// Reversible is an Edge that can produce its mirror image. Undirected
// containers need it to offer the edge from both endpoints.
type Reversible[V comparable, E any] interface {
	Edge[V]
	Reversed() E
}

// Graph exposes directed adjacency.
type Graph[V comparable, E Edge[V]] interface {
	// OutgoingEdgesFrom returns every edge e with e.From() == v.
	// An unknown vertex yields an empty slice.
	OutgoingEdgesFrom(v V) []E
}

// KruskalGraph exposes the whole vertex and edge sets.
type KruskalGraph[V comparable, E Edge[V]] interface {
	AllVertices() []V
	AllEdges() []E
}

// PrimGraph is a graph with both adjacency and global views.
type PrimGraph[V comparable, E Edge[V]] interface {
	Graph[V, E]
	KruskalGraph[V, E]
}

// GraphOption configures an AdjacencyList before creation.
type GraphOption func(c *graphConfig)

type graphConfig struct {
	directed   bool
	allowLoops bool
	allowMulti bool
}

// WithDirected sets whether edges are one-way (true) or two-way (false).
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(c *graphConfig) { c.allowMulti = true }
}
