// SPDX-License-Identifier: MIT

package maze

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/dijkstra"
)

// Passage is a unit-weight edge between two connected rooms.
type Passage = core.WeightedEdge[Room]

// Route is a solver result.
type Route = dijkstra.ShortestPath[Room, Passage]

// Graph converts the open passages into an undirected, unit-weight graph.
// Every room becomes a vertex, including rooms no passage reaches.
//
// Errors: a wrapped core error if a passage cannot be added.
// Complexity: O(W·H) time and memory.
func (m *Maze) Graph() (*core.AdjacencyList[Room, Passage], error) {
	g := core.NewWeightedGraph[Room]()
	for _, r := range m.Rooms() {
		g.AddVertex(r)
	}
	for _, w := range m.AllWalls() {
		if !m.open[w] {
			continue
		}
		if err := g.AddEdge(core.NewEdge(w.A, w.B, 1)); err != nil {
			return nil, fmt.Errorf("maze: passage %v: %w", w, err)
		}
	}
	return g, nil
}

// Solve finds a shortest route from from to to through open passages.
// An unreachable target is a Failure route, not an error.
//
// Errors: ErrRoomOutOfBounds.
func (m *Maze) Solve(from, to Room, opts ...dijkstra.Option) (Route, error) {
	for _, r := range [2]Room{from, to} {
		if !m.InBounds(r) {
			return Route{}, fmt.Errorf("%w: %v", ErrRoomOutOfBounds, r)
		}
	}
	g, err := m.Graph()
	if err != nil {
		return Route{}, err
	}
	return dijkstra.FindShortestPath[Room, Passage](g, from, to, opts...)
}
