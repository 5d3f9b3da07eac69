// SPDX-License-Identifier: MIT

// Package maze builds rectangular mazes on top of the graph algorithms in this
// module.
//
// A maze starts as a Width×Height grid of rooms with every interior wall
// standing. A Carver picks which walls to knock down. Every carver here
// removes the walls of a random spanning tree of the room graph, so the
// result is a perfect maze: every room reachable, exactly one route between
// any two rooms, and exactly Width·Height−1 walls removed.
//
//	KruskalCarver     – prim_kruskal.Kruskal over randomly weighted walls.
//	PrimCarver        – prim_kruskal.Prim over randomly weighted walls.
//	BacktrackerCarver – tree edges of a shuffled dfs.DFS.
//
// After carving, Graph exposes the open passages as an undirected unit-weight
// core.AdjacencyList, Solve runs dijkstra.FindShortestPath on it and Render
// draws the maze as ASCII art with an optional route marked.
//
// Rooms are addressed by (X, Y) with (0, 0) in the top-left corner; X grows
// to the right and Y grows downward. Neighbours are the four orthogonal rooms.
package maze
