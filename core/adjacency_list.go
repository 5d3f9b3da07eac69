// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
	"sync"
)

// AdjacencyList is a mutable graph keyed by vertex value.
//
// muVert protects the vertex catalog; muEdgeAdj protects the edge catalog and
// adjacency. When both are needed muVert is taken first.
type AdjacencyList[V comparable, E Reversible[V, E]] struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	directed   bool
	allowLoops bool
	allowMulti bool

	vertices []V          // insertion order
	vertexID map[V]int    // vertex → position in vertices
	edges    []E          // each edge once, as added
	outgoing map[V][]E    // adjacency; mirrors included when undirected
	pairs    map[[2]V]int // (from,to) → parallel edge count; both orders when undirected
}

// NewGraph creates an empty graph. By default it is undirected with no loops
// and no multi-edges.
func NewGraph[V comparable, E Reversible[V, E]](opts ...GraphOption) *AdjacencyList[V, E] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &AdjacencyList[V, E]{
		directed:   cfg.directed,
		allowLoops: cfg.allowLoops,
		allowMulti: cfg.allowMulti,
		vertexID:   make(map[V]int),
		outgoing:   make(map[V][]E),
		pairs:      make(map[[2]V]int),
	}
}

// NewWeightedGraph is NewGraph specialised to WeightedEdge.
func NewWeightedGraph[V comparable](opts ...GraphOption) *AdjacencyList[V, WeightedEdge[V]] {
	return NewGraph[V, WeightedEdge[V]](opts...)
}

// Directed reports whether edges are one-way.
func (g *AdjacencyList[V, E]) Directed() bool { return g.directed }

// AddVertex registers v. Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *AdjacencyList[V, E]) AddVertex(v V) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.addVertexLocked(v)
}

func (g *AdjacencyList[V, E]) addVertexLocked(v V) {
	if _, ok := g.vertexID[v]; ok {
		return
	}
	g.vertexID[v] = len(g.vertices)
	g.vertices = append(g.vertices, v)
}

// HasVertex reports whether v is registered. Complexity: O(1).
func (g *AdjacencyList[V, E]) HasVertex(v V) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertexID[v]
	return ok
}

// AddEdge validates e, registers both endpoints and stores the edge.
// In undirected mode e.Reversed() is stored under e.To() as well, except for
// self-loops, which appear once.
//
// Errors: ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *AdjacencyList[V, E]) AddEdge(e E) error {
	from, to, w := e.From(), e.To(), e.Weight()
	if w < 0 || math.IsNaN(w) {
		return fmt.Errorf("%w: %v->%v weight=%v", ErrBadWeight, from, to, w)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, from)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && g.pairs[[2]V{from, to}] > 0 {
		return fmt.Errorf("%w: %v->%v", ErrMultiEdgeNotAllowed, from, to)
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.edges = append(g.edges, e)
	g.outgoing[from] = append(g.outgoing[from], e)
	g.pairs[[2]V{from, to}]++
	if !g.directed && from != to {
		g.outgoing[to] = append(g.outgoing[to], e.Reversed())
		g.pairs[[2]V{to, from}]++
	}

	return nil
}

// AddEdges adds each edge in order and stops at the first error.
func (g *AdjacencyList[V, E]) AddEdges(edges ...E) error {
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			return err
		}
	}
	return nil
}

// HasEdge reports whether at least one edge leads from → to.
func (g *AdjacencyList[V, E]) HasEdge(from, to V) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	return g.pairs[[2]V{from, to}] > 0
}

// OutgoingEdgesFrom returns a copy of v's adjacency in insertion order.
func (g *AdjacencyList[V, E]) OutgoingEdgesFrom(v V) []E {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := g.outgoing[v]
	res := make([]E, len(out))
	copy(res, out)
	return res
}

// Neighbors returns the outgoing edges of v, or ErrVertexNotFound.
func (g *AdjacencyList[V, E]) Neighbors(v V) ([]E, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	return g.OutgoingEdgesFrom(v), nil
}

// AllVertices returns every vertex in insertion order.
func (g *AdjacencyList[V, E]) AllVertices() []V {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	res := make([]V, len(g.vertices))
	copy(res, g.vertices)
	return res
}

// AllEdges returns every edge once, in insertion order.
func (g *AdjacencyList[V, E]) AllEdges() []E {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	res := make([]E, len(g.edges))
	copy(res, g.edges)
	return res
}

// VertexCount returns |V|.
func (g *AdjacencyList[V, E]) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.vertices)
}

// EdgeCount returns |E|, counting an undirected edge once.
func (g *AdjacencyList[V, E]) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	return len(g.edges)
}

// Clone returns an independent copy with the same configuration.
func (g *AdjacencyList[V, E]) Clone() *AdjacencyList[V, E] {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	c := &AdjacencyList[V, E]{
		directed:   g.directed,
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		vertices:   append([]V(nil), g.vertices...),
		vertexID:   make(map[V]int, len(g.vertexID)),
		edges:      append([]E(nil), g.edges...),
		outgoing:   make(map[V][]E, len(g.outgoing)),
		pairs:      make(map[[2]V]int, len(g.pairs)),
	}
	for v, i := range g.vertexID {
		c.vertexID[v] = i
	}
	for v, out := range g.outgoing {
		c.outgoing[v] = append([]E(nil), out...)
	}
	for k, n := range g.pairs {
		c.pairs[k] = n
	}
	return c
}
