// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("dfs: invalid option")
)

// Option configures a traversal.
type Option func(*Options)

// Options holds traversal parameters.
type Options struct {
	// Ctx allows cancellation; checked once per discovered vertex.
	Ctx context.Context

	// MaxDepth, if non-negative, stops descent below this depth.
	MaxDepth int

	// Rand, if non-nil, shuffles each vertex's neighbours before they are explored.
	Rand *rand.Rand

	err error
}

// DefaultOptions returns Options with a background context, no depth limit
// and insertion-order neighbours.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxDepth: -1}
}

// WithContext sets the context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits descent. A limit of 0 visits only the start vertex.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth=%d", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithShuffle visits neighbours in an order drawn from rng.
func WithShuffle(rng *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = rng
	}
}

// Result captures the outcome of a traversal.
type Result[V comparable] struct {
	// PreOrder lists vertices in discovery order.
	PreOrder []V

	// PostOrder lists vertices in the order they finished.
	PostOrder []V

	// Depth maps each visited vertex to its tree depth.
	Depth map[V]int

	// Parent maps each visited non-root vertex to the vertex that discovered it.
	Parent map[V]V

	// Roots lists the root of each search tree.
	Roots []V
}

// Visited reports whether v was reached.
func (r *Result[V]) Visited(v V) bool {
	_, ok := r.Depth[v]
	return ok
}

// TreeEdges returns (parent, child) pairs in discovery order.
func (r *Result[V]) TreeEdges() [][2]V {
	out := make([][2]V, 0, len(r.Parent))
	for _, v := range r.PreOrder {
		if p, ok := r.Parent[v]; ok {
			out = append(out, [2]V{p, v})
		}
	}
	return out
}
