// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/core"
)

type edge = core.WeightedEdge[string]

// chain builds A—B—C—D plus a spur B—E.
func chain(t *testing.T) *core.AdjacencyList[string, edge] {
	t.Helper()
	g := core.NewWeightedGraph[string]()
	require.NoError(t, g.AddEdges(
		core.NewEdge("A", "B", 1),
		core.NewEdge("B", "C", 1),
		core.NewEdge("C", "D", 1),
		core.NewEdge("B", "E", 1),
	))
	return g
}

func TestBFS_DepthAndOrder(t *testing.T) {
	res, err := bfs.BFS[string, edge](chain(t), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "E", "D"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2, "E": 2, "D": 3}, res.Depth)

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)

	path, err = res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS[string, edge](chain(t), "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B"}, res.Order)

	_, err = res.PathTo("C")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[string, edge](nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS[string, edge](chain(t), "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS[string, edge](chain(t), "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBFS_DirectedRespectsOrientation(t *testing.T) {
	g := core.NewWeightedGraph[string](core.WithDirected(true))
	require.NoError(t, g.AddEdge(core.NewEdge("B", "A", 1)))
	res, err := bfs.BFS[string, edge](g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
}
