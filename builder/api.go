// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// Constructor applies a deterministic mutation to g using cfg.
type Constructor func(g *Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves bopts and applies cons in
// order. The first constructor error is wrapped and returned.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*Graph, error) {
	g := core.NewWeightedGraph[int](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return g, nil
}

// addVertices adds 0..n-1 in ascending order.
func addVertices(g *Graph, n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
}

func addEdge(g *Graph, cfg builderConfig, method string, u, v int) error {
	if err := g.AddEdge(core.NewEdge(u, v, cfg.weightFn(cfg.rng))); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %v: %w", method, u, v, err, ErrConstructFailed)
	}
	return nil
}
