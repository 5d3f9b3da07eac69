// SPDX-License-Identifier: MIT

// Package prim_kruskal computes minimum spanning trees (MST) of undirected
// weighted graphs.
//
// Two algorithms share one result type:
//
//   - Kruskal scans every edge in ascending weight order and keeps an edge
//     iff its endpoints still lie in different components, tracked with a
//     disjointset.DisjointSets. Time O(E log E + E·α(V)).
//   - Prim grows a single tree from the first vertex. Frontier vertices wait
//     in a pq.ArrayHeapMinPQ keyed by their cheapest connecting edge, lowered
//     in place with ChangePriority. Time O(E log V).
//
// Both return a MinimumSpanningTree tagged Success or Failure. Failure means
// the graph is disconnected: fewer than |V|−1 edges could be accepted. An
// empty vertex set yields Success with no edges.
//
// Ties between equal weights are broken by the graph's edge order (Kruskal
// sorts stably), so results are deterministic for a given graph.
//
// Errors:
//
//	ErrNilGraph      – nil graph.
//	ErrUnknownMethod – Compute received an unsupported method name.
//	ErrRootNotFound  – PrimFrom received a root outside the vertex set.
//
// Edges whose endpoints are missing from AllVertices surface as a wrapped
// disjointset.ErrUnknownItem.
package prim_kruskal
