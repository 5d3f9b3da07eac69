// SPDX-License-Identifier: MIT

package dfs

import (
	"github.com/katalvlaran/labyrinth/core"
)

// frame is one level of the explicit DFS stack.
type frame[V comparable, E core.Edge[V]] struct {
	v     V
	edges []E
	next  int
}

// walker encapsulates state during DFS.
type walker[V comparable, E core.Edge[V]] struct {
	graph core.Graph[V, E]
	opts  Options
	res   *Result[V]
}

func newWalker[V comparable, E core.Edge[V]](g core.Graph[V, E], opts []Option) (*walker[V, E], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &walker[V, E]{
		graph: g,
		opts:  o,
		res: &Result[V]{
			Depth:  make(map[V]int),
			Parent: make(map[V]V),
		},
	}, nil
}

// DFS performs depth-first search on g from start. The start vertex is
// always visited.
func DFS[V comparable, E core.Edge[V]](g core.Graph[V, E], start V, opts ...Option) (*Result[V], error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	if err = w.traverse(start); err != nil {
		return w.res, err
	}
	return w.res, nil
}

// Forest runs DFS from every vertex not yet visited, in AllVertices order,
// covering disconnected components.
func Forest[V comparable, E core.Edge[V]](g core.PrimGraph[V, E], opts ...Option) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w, err := newWalker[V, E](g, opts)
	if err != nil {
		return nil, err
	}
	for _, v := range g.AllVertices() {
		if w.res.Visited(v) {
			continue
		}
		if err = w.traverse(v); err != nil {
			return w.res, err
		}
	}
	return w.res, nil
}

// traverse walks the tree rooted at root.
func (w *walker[V, E]) traverse(root V) error {
	// 1. Discover the root.
	w.res.Roots = append(w.res.Roots, root)
	if err := w.discover(root, 0); err != nil {
		return err
	}
	stack := []frame[V, E]{{v: root, edges: w.neighbours(root, 0)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// 2. Finished every neighbour: pop in post-order.
		if top.next == len(top.edges) {
			w.res.PostOrder = append(w.res.PostOrder, top.v)
			stack = stack[:len(stack)-1]
			continue
		}

		// 3. Descend into the next unvisited neighbour.
		e := top.edges[top.next]
		top.next++
		u := e.To()
		if w.res.Visited(u) {
			continue
		}
		depth := len(stack)
		w.res.Parent[u] = top.v
		if err := w.discover(u, depth); err != nil {
			return err
		}
		stack = append(stack, frame[V, E]{v: u, edges: w.neighbours(u, depth)})
	}
	return nil
}

func (w *walker[V, E]) discover(v V, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	w.res.Depth[v] = depth
	w.res.PreOrder = append(w.res.PreOrder, v)
	return nil
}

// neighbours returns the edges to explore from v at depth, shuffled if asked.
func (w *walker[V, E]) neighbours(v V, depth int) []E {
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return nil
	}
	edges := w.graph.OutgoingEdgesFrom(v)
	if w.opts.Rand != nil {
		edges = append([]E(nil), edges...)
		w.opts.Rand.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })
	}
	return edges
}
