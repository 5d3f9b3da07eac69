// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over any core.Graph with non-negative edge weights.
//
// Overview:
//
//   - The finder grows a shortest-path tree (SPT): a map from each reached
//     vertex to the edge by which it was best reached. Tentative distances
//     live in a second map. Both are kvmap containers.
//   - Vertices wait in an indexed min-priority queue keyed by tentative
//     distance. A better route to a queued vertex lowers its key in place
//     (ChangePriority) instead of pushing a duplicate.
//   - Once a vertex is extracted its distance is final, so a targeted search
//     stops as soon as the target leaves the queue.
//   - Relaxation is strict: an edge only replaces the recorded one when it
//     yields a strictly smaller distance.
//
// Results:
//
// FindShortestPath returns a ShortestPath, a tagged result with three kinds:
//
//	SingleVertex – start equals end; the path is that vertex alone.
//	Success      – the ordered edges from start to end.
//	Failure      – end is unreachable from start.
//
// An unreachable target is an ordinary result, not an error.
//
// Options:
//
//	WithMaxDistance(d)      – do not relax beyond distance d (d ≥ 0).
//	WithInfEdgeThreshold(t) – edges with weight ≥ t are impassable (t > 0).
//
// Errors (sentinel):
//
//	ErrNilGraph       – nil graph.
//	ErrNegativeWeight – a negative or NaN weight met during relaxation.
//
// Complexity:
//
//	Time  O((V + E) log V): each vertex is added and extracted once, each
//	      relaxation costs at most one O(log V) decrease-key.
//	Space O(V) for the queue, distances and tree.
//
// Thread safety: a Finder is stateless between calls and may be shared; the
// graph must not be mutated while a search runs.
//
// Example:
//
//	g := core.NewWeightedGraph[string]()
//	_ = g.AddEdge(core.NewEdge("A", "B", 1))
//	p, err := dijkstra.FindShortestPath(g, "A", "B")
//	if err == nil && p.Exists() {
//	    fmt.Println(p.Vertices(), p.TotalWeight())
//	}
package dijkstra
