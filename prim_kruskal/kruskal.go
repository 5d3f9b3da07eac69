// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/disjointset"
)

// KruskalFinder runs Kruskal's algorithm with a configurable disjoint-set.
type KruskalFinder[V comparable, E core.Edge[V]] struct {
	newSets disjointset.Factory[V]
}

// NewKruskalFinder returns a finder drawing a fresh disjoint-set from newSets
// for every run. A nil factory selects disjointset.UnionBySize.
func NewKruskalFinder[V comparable, E core.Edge[V]](newSets disjointset.Factory[V]) *KruskalFinder[V, E] {
	if newSets == nil {
		newSets = disjointset.UnionBySizeFactory[V]()
	}
	return &KruskalFinder[V, E]{newSets: newSets}
}

// Kruskal is shorthand for NewKruskalFinder(nil).FindMinimumSpanningTree(g).
func Kruskal[V comparable, E core.Edge[V]](g core.KruskalGraph[V, E]) (MinimumSpanningTree[V, E], error) {
	return NewKruskalFinder[V, E](nil).FindMinimumSpanningTree(g)
}

// FindMinimumSpanningTree computes the MST of g.
//
// Steps:
//  1. Validate g; an empty vertex set is trivially spanned.
//  2. Stable-sort a copy of the edges by ascending weight.
//  3. MakeSet every vertex.
//  4. Accept each edge whose endpoints lie in different sets, then Union them.
//     Stop early once |V|−1 edges are accepted.
//  5. Success iff exactly |V|−1 edges were accepted.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func (f *KruskalFinder[V, E]) FindMinimumSpanningTree(g core.KruskalGraph[V, E]) (MinimumSpanningTree[V, E], error) {
	// 1. Validate.
	if g == nil {
		return MinimumSpanningTree[V, E]{}, ErrNilGraph
	}
	vertices := g.AllVertices()
	if len(vertices) == 0 {
		return spanning[V, E](nil, 0), nil
	}

	// 2. Sort a copy; g is read-only and stable keeps insertion order among equal weights.
	edges := append([]E(nil), g.AllEdges()...)
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight() < edges[j].Weight()
	})

	// 3. One singleton set per vertex.
	sets := f.newSets()
	for _, v := range vertices {
		sets.MakeSet(v)
	}

	// 4. Accept cross-component edges.
	need := len(vertices) - 1
	mst := make([]E, 0, need)
	for _, e := range edges {
		if len(mst) == need {
			break
		}
		a, err := sets.FindSet(e.From())
		if err != nil {
			return MinimumSpanningTree[V, E]{}, fmt.Errorf("prim_kruskal: edge %v-%v: %w", e.From(), e.To(), err)
		}
		b, err := sets.FindSet(e.To())
		if err != nil {
			return MinimumSpanningTree[V, E]{}, fmt.Errorf("prim_kruskal: edge %v-%v: %w", e.From(), e.To(), err)
		}
		if a == b {
			continue
		}
		if _, err = sets.Union(e.From(), e.To()); err != nil {
			return MinimumSpanningTree[V, E]{}, fmt.Errorf("prim_kruskal: union %v-%v: %w", e.From(), e.To(), err)
		}
		mst = append(mst, e)
	}

	// 5. Fewer than |V|−1 edges means more than one component.
	return spanning[V, E](mst, len(vertices)), nil
}
