// SPDX-License-Identifier: MIT

// Package labyrinth is a small graph toolkit built around one application:
// carving and solving rectangular mazes.
//
// What is inside?
//
//	pq/           indexed min-priority queue with decrease-key (binary heap + naive reference)
//	disjointset/  union-find by size with path compression (+ quick-find reference)
//	kvmap/        array and chained-hash maps used by the shortest-path tree
//	core/         generic edges, AdjacencyList, EdgeList and the Graph interfaces
//	bfs/, dfs/    traversals; dfs also answers components and forest checks
//	dijkstra/     single-source shortest paths with early stop and path extraction
//	prim_kruskal/ minimum spanning trees (Kruskal default, Prim alternative)
//	builder/      deterministic integer-vertex graph fixtures
//	maze/         rooms, walls, carvers (Kruskal, Prim, backtracker), solving and rendering
//	cmd/mazegen/  command-line front end with config, logging and metrics
//
// Quick start:
//
//	m, _ := maze.NewGrid(8, 6)
//	_ = maze.Carve(m, maze.NewKruskalCarver(42))
//	route, _ := m.Solve(maze.Room{}, maze.Room{X: 7, Y: 5})
//	_ = m.Render(os.Stdout, route.Vertices())
//
// Every algorithm works on interfaces from core, so callers may supply their
// own graph types. Errors are sentinel values wrapped with %w; match them with
// errors.Is.
package labyrinth
