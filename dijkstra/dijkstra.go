// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/kvmap"
	"github.com/katalvlaran/labyrinth/pq"
)

// Finder computes shortest paths with a configurable priority queue.
type Finder[V comparable, E core.Edge[V]] struct {
	opts     Options
	newQueue pq.Factory[V]
}

// NewFinder returns a Finder backed by pq.ArrayHeapMinPQ.
func NewFinder[V comparable, E core.Edge[V]](opts ...Option) *Finder[V, E] {
	return NewFinderWithQueue[V, E](pq.ArrayHeapFactory[V](), opts...)
}

// NewFinderWithQueue returns a Finder that draws a fresh queue from newQueue
// for every search. A nil factory selects pq.ArrayHeapMinPQ.
func NewFinderWithQueue[V comparable, E core.Edge[V]](newQueue pq.Factory[V], opts ...Option) *Finder[V, E] {
	if newQueue == nil {
		newQueue = pq.ArrayHeapFactory[V]()
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Finder[V, E]{opts: cfg, newQueue: newQueue}
}

// FindShortestPath is shorthand for NewFinder(opts...).FindShortestPath(g, start, end).
func FindShortestPath[V comparable, E core.Edge[V]](g core.Graph[V, E], start, end V, opts ...Option) (ShortestPath[V, E], error) {
	return NewFinder[V, E](opts...).FindShortestPath(g, start, end)
}

// FindShortestPath builds a shortest-path tree toward end and extracts the path.
func (f *Finder[V, E]) FindShortestPath(g core.Graph[V, E], start, end V) (ShortestPath[V, E], error) {
	t, err := f.ShortestPathsTree(g, start, end)
	if err != nil {
		return failurePath[V, E](), err
	}

	return t.ExtractPath(start, end), nil
}

// ShortestPathsTree runs Dijkstra from start and stops once end is settled.
//
// The tree is empty when start equals end or start has no outgoing edges.
// Errors: ErrNilGraph, ErrNegativeWeight, or a wrapped queue error.
func (f *Finder[V, E]) ShortestPathsTree(g core.Graph[V, E], start, end V) (*Tree[V, E], error) {
	return f.run(g, start, end, true)
}

// ShortestPathsFrom settles every vertex reachable from start.
func (f *Finder[V, E]) ShortestPathsFrom(g core.Graph[V, E], start V) (*Tree[V, E], error) {
	var none V
	return f.run(g, start, none, false)
}

func (f *Finder[V, E]) run(g core.Graph[V, E], start, end V, targeted bool) (*Tree[V, E], error) {
	// 1) Validate input.
	if g == nil {
		return nil, ErrNilGraph
	}

	t := newTree[V, E](start)

	// 2) Trivial searches leave the tree empty.
	if targeted && start == end {
		return t, nil
	}
	if len(g.OutgoingEdgesFrom(start)) == 0 {
		return t, nil
	}

	// 3) Seed the queue with start at distance 0.
	r := &runner[V, E]{
		g:      g,
		opts:   f.opts,
		queue:  f.newQueue(),
		tree:   t,
		end:    end,
		target: targeted,
	}
	if err := r.queue.Add(start, 0); err != nil {
		return nil, fmt.Errorf("dijkstra: seed %v: %w", start, err)
	}

	// 4) Extract and relax until the queue drains or end is settled.
	if err := r.process(); err != nil {
		return nil, err
	}

	return t, nil
}

// runner holds the mutable state for a single search.
type runner[V comparable, E core.Edge[V]] struct {
	g      core.Graph[V, E]
	opts   Options
	queue  pq.ExtrinsicMinPQ[V]
	tree   *Tree[V, E]
	end    V
	target bool
}

func (r *runner[V, E]) process() error {
	for !r.queue.IsEmpty() {
		v, err := r.queue.RemoveMin()
		if err != nil {
			return fmt.Errorf("dijkstra: extract: %w", err)
		}
		if r.target && v == r.end {
			return nil
		}
		if err = r.relaxFrom(v); err != nil {
			return err
		}
	}

	return nil
}

// relaxFrom offers every outgoing edge of the settled vertex v.
func (r *runner[V, E]) relaxFrom(v V) error {
	dv, _ := r.tree.dist.Get(v)
	for _, e := range r.g.OutgoingEdgesFrom(v) {
		w := e.Weight()
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: %v->%v weight=%g", ErrNegativeWeight, e.From(), e.To(), w)
		}
		if w >= r.opts.InfEdgeThreshold {
			continue
		}

		u := e.To()
		candidate := dv + w
		if candidate > r.opts.MaxDistance {
			continue
		}
		if old, seen := r.tree.dist.Get(u); seen && !(candidate < old) {
			continue
		}

		r.tree.dist.Put(u, candidate)
		r.tree.edgeTo.Put(u, e)

		var qerr error
		if r.queue.Contains(u) {
			qerr = r.queue.ChangePriority(u, candidate)
		} else {
			qerr = r.queue.Add(u, candidate)
		}
		if qerr != nil {
			return fmt.Errorf("dijkstra: relax %v: %w", u, qerr)
		}
	}

	return nil
}

// Tree is a shortest-path tree: each reached vertex maps to the edge by
// which it was best reached. The root has no edge.
type Tree[V comparable, E core.Edge[V]] struct {
	start  V
	dist   kvmap.Map[V, float64]
	edgeTo kvmap.Map[V, E]
}

func newTree[V comparable, E core.Edge[V]](start V) *Tree[V, E] {
	t := &Tree[V, E]{
		start:  start,
		dist:   kvmap.NewDefaultChainedHashMap[V, float64](),
		edgeTo: kvmap.NewDefaultChainedHashMap[V, E](),
	}
	t.dist.Put(start, 0)

	return t
}

// Start returns the root of the tree.
func (t *Tree[V, E]) Start() V { return t.start }

// Distance returns the best known distance to v.
func (t *Tree[V, E]) Distance(v V) (float64, bool) { return t.dist.Get(v) }

// EdgeTo returns the tree edge entering v.
func (t *Tree[V, E]) EdgeTo(v V) (E, bool) { return t.edgeTo.Get(v) }

// Reached reports whether v is the root or has a tree edge.
func (t *Tree[V, E]) Reached(v V) bool { return t.dist.ContainsKey(v) }

// Len returns the number of tree edges.
func (t *Tree[V, E]) Len() int { return t.edgeTo.Len() }

// Distances returns a snapshot of every recorded distance, root included.
func (t *Tree[V, E]) Distances() map[V]float64 {
	out := make(map[V]float64, t.dist.Len())
	for v, d := range t.dist.All() {
		out[v] = d
	}

	return out
}

// ExtractPath walks tree edges back from end to start.
//
// SingleVertex if start == end; Failure if end has no tree edge or the walk
// never meets start.
func (t *Tree[V, E]) ExtractPath(start, end V) ShortestPath[V, E] {
	if start == end {
		return singleVertexPath[V, E](start)
	}
	if !t.edgeTo.ContainsKey(end) {
		return failurePath[V, E]()
	}

	var edges []E
	for cur := end; cur != start; {
		e, ok := t.edgeTo.Get(cur)
		if !ok || len(edges) > t.edgeTo.Len() {
			return failurePath[V, E]()
		}
		edges = append(edges, e)
		cur = e.From()
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return successPath[V, E](edges)
}

// PathTo extracts the path from the tree root to end.
func (t *Tree[V, E]) PathTo(end V) ShortestPath[V, E] {
	return t.ExtractPath(t.start, end)
}
