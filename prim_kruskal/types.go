// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/core"
)

var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("prim_kruskal: graph is nil")

	// ErrUnknownMethod indicates that MSTOptions.Method names no algorithm.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

	// ErrRootNotFound indicates that the requested Prim root is not a vertex.
	ErrRootNotFound = errors.New("prim_kruskal: root vertex not found")
)

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm Compute runs.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Compute selects and runs the MST algorithm named by opts.Method.
func Compute[V comparable, E core.Edge[V]](g core.PrimGraph[V, E], opts MSTOptions) (MinimumSpanningTree[V, E], error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal[V, E](g)
	case MethodPrim:
		return Prim[V, E](g)
	default:
		return MinimumSpanningTree[V, E]{}, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// Kind tags the variant held by a MinimumSpanningTree.
type Kind int

const (
	// Failure: the graph is disconnected.
	Failure Kind = iota
	// Success: the edges span every vertex.
	Success
)

func (k Kind) String() string {
	if k == Success {
		return "Success"
	}
	return "Failure"
}

// MinimumSpanningTree is the result of an MST computation.
type MinimumSpanningTree[V comparable, E core.Edge[V]] struct {
	kind  Kind
	edges []E
}

// Kind returns which variant this result is.
func (t MinimumSpanningTree[V, E]) Kind() Kind { return t.kind }

// Exists reports whether a spanning tree was found.
func (t MinimumSpanningTree[V, E]) Exists() bool { return t.kind == Success }

// Edges returns the accepted edges in acceptance order; nil on Failure.
func (t MinimumSpanningTree[V, E]) Edges() []E {
	if t.kind != Success {
		return nil
	}
	return append([]E{}, t.edges...)
}

// TotalWeight sums the edge weights; 0 on Failure.
func (t MinimumSpanningTree[V, E]) TotalWeight() float64 {
	if t.kind != Success {
		return 0
	}
	return core.TotalWeight(t.edges)
}

func (t MinimumSpanningTree[V, E]) String() string {
	if t.kind != Success {
		return "Failure"
	}
	parts := make([]string, len(t.edges))
	for i, e := range t.edges {
		parts[i] = fmt.Sprintf("%v-%v", e.From(), e.To())
	}
	return fmt.Sprintf("Success{%s, weight=%g}", strings.Join(parts, " "), t.TotalWeight())
}

func spanning[V comparable, E core.Edge[V]](edges []E, vertexCount int) MinimumSpanningTree[V, E] {
	if vertexCount > 0 && len(edges) != vertexCount-1 {
		return MinimumSpanningTree[V, E]{kind: Failure}
	}
	return MinimumSpanningTree[V, E]{kind: Success, edges: edges}
}
