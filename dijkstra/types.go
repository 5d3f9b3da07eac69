// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/labyrinth/core"
)

// Sentinel errors returned by the finder.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates a negative (or NaN) edge weight was met.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance is the panic message of WithMaxDistance for d < 0.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold is the panic message of WithInfEdgeThreshold for t <= 0.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a Finder.
//
// MaxDistance      – vertices farther than this are never reached. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this are skipped. Default +Inf.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring a Finder.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithMaxDistance caps the explored distance. Panics if max < 0.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) { o.MaxDistance = max }
}

// WithInfEdgeThreshold marks edges with weight ≥ threshold as walls.
// Panics if threshold <= 0.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// Kind tags the variant held by a ShortestPath.
type Kind int

const (
	// Failure: the end vertex is unreachable from the start.
	Failure Kind = iota
	// Success: a path of one or more edges was found.
	Success
	// SingleVertex: start and end are the same vertex.
	SingleVertex
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "Success"
	case SingleVertex:
		return "SingleVertex"
	default:
		return "Failure"
	}
}

// ShortestPath is the result of a shortest-path query.
type ShortestPath[V comparable, E core.Edge[V]] struct {
	kind   Kind
	vertex V
	edges  []E
}

func failurePath[V comparable, E core.Edge[V]]() ShortestPath[V, E] {
	return ShortestPath[V, E]{kind: Failure}
}

func singleVertexPath[V comparable, E core.Edge[V]](v V) ShortestPath[V, E] {
	return ShortestPath[V, E]{kind: SingleVertex, vertex: v}
}

func successPath[V comparable, E core.Edge[V]](edges []E) ShortestPath[V, E] {
	return ShortestPath[V, E]{kind: Success, edges: edges}
}

// Kind returns which variant this result is.
func (p ShortestPath[V, E]) Kind() Kind { return p.kind }

// Exists reports whether a path exists (Success or SingleVertex).
func (p ShortestPath[V, E]) Exists() bool { return p.kind != Failure }

// Edges returns the path's edges in start-to-end order. Empty unless Success.
func (p ShortestPath[V, E]) Edges() []E {
	return append([]E(nil), p.edges...)
}

// Vertices returns the vertices visited by the path, start and end included.
// Nil for Failure.
func (p ShortestPath[V, E]) Vertices() []V {
	switch p.kind {
	case SingleVertex:
		return []V{p.vertex}
	case Success:
		vs := make([]V, 0, len(p.edges)+1)
		vs = append(vs, p.edges[0].From())
		for _, e := range p.edges {
			vs = append(vs, e.To())
		}
		return vs
	default:
		return nil
	}
}

// TotalWeight sums the edge weights; 0 for SingleVertex and Failure.
func (p ShortestPath[V, E]) TotalWeight() float64 {
	return core.TotalWeight(p.edges)
}

func (p ShortestPath[V, E]) String() string {
	if p.kind == Failure {
		return "Failure"
	}
	parts := make([]string, 0, len(p.edges)+1)
	for _, v := range p.Vertices() {
		parts = append(parts, fmt.Sprint(v))
	}
	return fmt.Sprintf("%s(%s, weight=%g)", p.kind, strings.Join(parts, "->"), p.TotalWeight())
}
