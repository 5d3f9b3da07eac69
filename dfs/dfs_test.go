// SPDX-License-Identifier: MIT

package dfs_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/dfs"
)

type edge = core.WeightedEdge[string]

// tree builds A—B, A—C, B—D, B—E.
func tree(t *testing.T) *core.AdjacencyList[string, edge] {
	t.Helper()
	g := core.NewWeightedGraph[string]()
	require.NoError(t, g.AddEdges(
		core.NewEdge("A", "B", 1),
		core.NewEdge("A", "C", 1),
		core.NewEdge("B", "D", 1),
		core.NewEdge("B", "E", 1),
	))
	return g
}

func TestDFS_Orders(t *testing.T) {
	res, err := dfs.DFS[string, edge](tree(t), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "E", "C"}, res.PreOrder)
	assert.Equal(t, []string{"D", "E", "B", "C", "A"}, res.PostOrder)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 2, "E": 2, "C": 1}, res.Depth)
	assert.Equal(t, map[string]string{"B": "A", "D": "B", "E": "B", "C": "A"}, res.Parent)
	assert.Equal(t, [][2]string{{"A", "B"}, {"B", "D"}, {"B", "E"}, {"A", "C"}}, res.TreeEdges())
	assert.Equal(t, []string{"A"}, res.Roots)
}

func TestDFS_MaxDepth(t *testing.T) {
	res, err := dfs.DFS[string, edge](tree(t), "A", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, res.PreOrder)
	assert.False(t, res.Visited("D"))

	res, err = dfs.DFS[string, edge](tree(t), "A", dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.PreOrder)
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS[string, edge](nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.Forest[string, edge](nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS[string, edge](tree(t), "A", dfs.WithMaxDepth(-2))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS[string, edge](tree(t), "A", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_ShuffleStillSpans(t *testing.T) {
	g := core.NewWeightedGraph[int]()
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if x+1 < 6 {
				require.NoError(t, g.AddEdge(core.NewEdge(y*6+x, y*6+x+1, 1)))
			}
			if y+1 < 6 {
				require.NoError(t, g.AddEdge(core.NewEdge(y*6+x, (y+1)*6+x, 1)))
			}
		}
	}

	a, err := dfs.DFS[int, core.WeightedEdge[int]](g, 0, dfs.WithShuffle(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	b, err := dfs.DFS[int, core.WeightedEdge[int]](g, 0, dfs.WithShuffle(rand.New(rand.NewSource(2))))
	require.NoError(t, err)

	assert.Len(t, a.PreOrder, 36)
	assert.Len(t, a.TreeEdges(), 35)
	assert.NotEqual(t, a.TreeEdges(), b.TreeEdges())
}

func TestForestAndComponents(t *testing.T) {
	g := tree(t)
	g.AddVertex("Z")
	require.NoError(t, g.AddEdge(core.NewEdge("X", "Y", 1)))

	res, err := dfs.Forest[string, edge](g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "Z", "X"}, res.Roots)
	assert.Len(t, res.PreOrder, 8)

	comps, err := dfs.Components[string, edge](g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "D", "E", "C"}, {"Z"}, {"X", "Y"}}, comps)

	ok, err := dfs.IsForest[string, edge](g)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, g.AddEdge(core.NewEdge("D", "E", 1)))
	ok, err = dfs.IsForest[string, edge](g)
	require.NoError(t, err)
	assert.False(t, ok, "D—E closes a cycle with B")
}
