// SPDX-License-Identifier: MIT

package bfs

import (
	"context"

	"github.com/katalvlaran/labyrinth/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable, E core.Edge[V]] struct {
	graph core.Graph[V, E]
	opts  Options
	ctx   context.Context
	queue []queueItem[V]
	res   *Result[V]
}

// BFS runs breadth-first search on g from start. The start vertex is always
// visited, even if g has no edges at all.
//
// Errors: ErrGraphNil, ErrOptionViolation, or the context error on cancellation
// (the partial result is returned alongside it).
func BFS[V comparable, E core.Edge[V]](g core.Graph[V, E], start V, opts ...Option) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[V, E]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		res: &Result[V]{
			Start:  start,
			Depth:  make(map[V]int),
			Parent: make(map[V]V),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[V]{v: start})

	return w.res, w.loop()
}

// loop processes the queue until empty or cancelled.
func (w *walker[V, E]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, e := range w.graph.OutgoingEdgesFrom(item.v) {
			nbr := e.To()
			if _, seen := w.res.Depth[nbr]; seen {
				continue
			}
			w.res.Depth[nbr] = next
			w.res.Parent[nbr] = item.v
			w.queue = append(w.queue, queueItem[V]{v: nbr, depth: next})
		}
	}
	return nil
}
