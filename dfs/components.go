// SPDX-License-Identifier: MIT

package dfs

import "github.com/katalvlaran/labyrinth/core"

// Components groups the vertices of an undirected graph into connected
// components, each listed in discovery order.
func Components[V comparable, E core.Edge[V]](g core.PrimGraph[V, E]) ([][]V, error) {
	res, err := Forest[V, E](g)
	if err != nil {
		return nil, err
	}

	index := make(map[V]int, len(res.Roots))
	comps := make([][]V, len(res.Roots))
	for i, r := range res.Roots {
		index[r] = i
	}
	// PreOrder visits each tree contiguously, starting at its root.
	cur := -1
	for _, v := range res.PreOrder {
		if i, ok := index[v]; ok {
			cur = i
		}
		comps[cur] = append(comps[cur], v)
	}
	return comps, nil
}

// IsForest reports whether an undirected graph is acyclic, using
// |E| = |V| − components. AllEdges must list each undirected edge once,
// as core.AdjacencyList does.
func IsForest[V comparable, E core.Edge[V]](g core.PrimGraph[V, E]) (bool, error) {
	comps, err := Components[V, E](g)
	if err != nil {
		return false, err
	}
	return len(g.AllEdges()) == len(g.AllVertices())-len(comps), nil
}
