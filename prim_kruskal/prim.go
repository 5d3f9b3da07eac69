// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/pq"
)

// Prim grows the MST from the first vertex of g.AllVertices().
func Prim[V comparable, E core.Edge[V]](g core.PrimGraph[V, E]) (MinimumSpanningTree[V, E], error) {
	if g == nil {
		return MinimumSpanningTree[V, E]{}, ErrNilGraph
	}
	vertices := g.AllVertices()
	if len(vertices) == 0 {
		return spanning[V, E](nil, 0), nil
	}
	return prim(g, vertices, vertices[0])
}

// PrimFrom grows the MST from root.
//
// Errors: ErrNilGraph, ErrRootNotFound.
func PrimFrom[V comparable, E core.Edge[V]](g core.PrimGraph[V, E], root V) (MinimumSpanningTree[V, E], error) {
	if g == nil {
		return MinimumSpanningTree[V, E]{}, ErrNilGraph
	}
	vertices := g.AllVertices()
	for _, v := range vertices {
		if v == root {
			return prim(g, vertices, root)
		}
	}
	return MinimumSpanningTree[V, E]{}, fmt.Errorf("%w: %v", ErrRootNotFound, root)
}

// prim runs the eager variant: each frontier vertex sits in the queue once,
// keyed by the weight of its cheapest edge into the tree.
//
// Steps:
//  1. Put root in the tree and offer its edges.
//  2. Extract the cheapest frontier vertex, accept its best edge, offer its edges.
//  3. Success iff the tree reaches |V|−1 edges.
//
// Complexity: O(E log V) time, O(V) memory.
func prim[V comparable, E core.Edge[V]](g core.PrimGraph[V, E], vertices []V, root V) (MinimumSpanningTree[V, E], error) {
	p := &primState[V, E]{
		g:      g,
		queue:  pq.NewArrayHeapMinPQWithCapacity[V](len(vertices)),
		inTree: make(map[V]bool, len(vertices)),
		best:   make(map[V]E, len(vertices)),
	}

	// 1. Seed.
	p.inTree[root] = true
	if err := p.offer(root); err != nil {
		return MinimumSpanningTree[V, E]{}, err
	}

	// 2. Grow.
	mst := make([]E, 0, len(vertices)-1)
	for !p.queue.IsEmpty() {
		v, err := p.queue.RemoveMin()
		if err != nil {
			return MinimumSpanningTree[V, E]{}, fmt.Errorf("prim_kruskal: extract: %w", err)
		}
		p.inTree[v] = true
		mst = append(mst, p.best[v])
		if err = p.offer(v); err != nil {
			return MinimumSpanningTree[V, E]{}, err
		}
	}

	// 3. Unreached vertices mean a disconnected graph.
	return spanning[V, E](mst, len(vertices)), nil
}

type primState[V comparable, E core.Edge[V]] struct {
	g      core.Graph[V, E]
	queue  *pq.ArrayHeapMinPQ[V]
	inTree map[V]bool
	best   map[V]E
}

// offer lowers the key of every non-tree neighbour of v reachable more
// cheaply through v.
func (p *primState[V, E]) offer(v V) error {
	for _, e := range p.g.OutgoingEdgesFrom(v) {
		u := e.To()
		if p.inTree[u] {
			continue
		}
		w := e.Weight()
		if cur, ok := p.best[u]; ok && !(w < cur.Weight()) {
			continue
		}
		p.best[u] = e

		var err error
		if p.queue.Contains(u) {
			err = p.queue.ChangePriority(u, w)
		} else {
			err = p.queue.Add(u, w)
		}
		if err != nil {
			return fmt.Errorf("prim_kruskal: offer %v: %w", u, err)
		}
	}
	return nil
}
