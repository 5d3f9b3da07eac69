// SPDX-License-Identifier: MIT

package core

// EdgeList is a read-only KruskalGraph backed by a slice of edges.
type EdgeList[V comparable, E Edge[V]] struct {
	vertices []V
	edges    []E
}

// NewEdgeList snapshots edges. Vertices are the endpoints in first-seen order.
func NewEdgeList[V comparable, E Edge[V]](edges []E) *EdgeList[V, E] {
	seen := make(map[V]struct{}, len(edges))
	vs := make([]V, 0, len(edges))
	for _, e := range edges {
		for _, v := range [2]V{e.From(), e.To()} {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				vs = append(vs, v)
			}
		}
	}
	return &EdgeList[V, E]{vertices: vs, edges: append([]E(nil), edges...)}
}

// NewEdgeListWithVertices is NewEdgeList plus isolated vertices that no edge
// touches. Duplicates are ignored.
func NewEdgeListWithVertices[V comparable, E Edge[V]](vertices []V, edges []E) *EdgeList[V, E] {
	l := NewEdgeList[V, E](edges)
	seen := make(map[V]struct{}, len(l.vertices))
	for _, v := range l.vertices {
		seen[v] = struct{}{}
	}
	for _, v := range vertices {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			l.vertices = append(l.vertices, v)
		}
	}
	return l
}

func (l *EdgeList[V, E]) AllVertices() []V { return append([]V(nil), l.vertices...) }

func (l *EdgeList[V, E]) AllEdges() []E { return append([]E(nil), l.edges...) }
