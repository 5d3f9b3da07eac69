// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/builder"
	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/disjointset"
	"github.com/katalvlaran/labyrinth/prim_kruskal"
)

type edge = core.WeightedEdge[string]

// sample: A—B(1), B—C(2), A—C(4), C—D(1).
func sample(t *testing.T) *core.AdjacencyList[string, edge] {
	t.Helper()
	g := core.NewWeightedGraph[string]()
	require.NoError(t, g.AddEdges(
		core.NewEdge("A", "B", 1),
		core.NewEdge("B", "C", 2),
		core.NewEdge("A", "C", 4),
		core.NewEdge("C", "D", 1),
	))
	return g
}

// looseGraph does not check that edge endpoints are listed vertices.
type looseGraph struct {
	vertices []string
	edges    []edge
}

func (g looseGraph) AllVertices() []string { return g.vertices }
func (g looseGraph) AllEdges() []edge      { return g.edges }

func pairs(edges []edge) [][2]string {
	out := make([][2]string, len(edges))
	for i, e := range edges {
		out[i] = [2]string{e.From(), e.To()}
	}
	return out
}

func TestKruskal_Sample(t *testing.T) {
	mst, err := prim_kruskal.Kruskal[string, edge](sample(t))
	require.NoError(t, err)

	assert.Equal(t, prim_kruskal.Success, mst.Kind())
	assert.True(t, mst.Exists())
	assert.Equal(t, [][2]string{{"A", "B"}, {"C", "D"}, {"B", "C"}}, pairs(mst.Edges()))
	assert.InDelta(t, 4.0, mst.TotalWeight(), 1e-9)
	assert.Equal(t, "Success{A-B C-D B-C, weight=4}", mst.String())
}

func TestKruskal_Disconnected(t *testing.T) {
	g := core.NewWeightedGraph[string]()
	require.NoError(t, g.AddEdges(
		core.NewEdge("A", "B", 1),
		core.NewEdge("C", "D", 1),
	))

	mst, err := prim_kruskal.Kruskal[string, edge](g)
	require.NoError(t, err)
	assert.Equal(t, prim_kruskal.Failure, mst.Kind())
	assert.False(t, mst.Exists())
	assert.Nil(t, mst.Edges())
	assert.Zero(t, mst.TotalWeight())
	assert.Equal(t, "Failure", mst.String())
}

func TestKruskal_TrivialGraphs(t *testing.T) {
	empty := core.NewWeightedGraph[string]()
	mst, err := prim_kruskal.Kruskal[string, edge](empty)
	require.NoError(t, err)
	assert.True(t, mst.Exists())
	assert.Empty(t, mst.Edges())

	single := core.NewWeightedGraph[string]()
	single.AddVertex("A")
	mst, err = prim_kruskal.Kruskal[string, edge](single)
	require.NoError(t, err)
	assert.True(t, mst.Exists())
	assert.Empty(t, mst.Edges())

	isolated := core.NewWeightedGraph[string]()
	isolated.AddVertex("A")
	isolated.AddVertex("B")
	mst, err = prim_kruskal.Kruskal[string, edge](isolated)
	require.NoError(t, err)
	assert.False(t, mst.Exists(), "two vertices and no edges cannot be spanned")
}

func TestKruskal_Errors(t *testing.T) {
	_, err := prim_kruskal.Kruskal[string, edge](nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)

	// Edge endpoint outside the vertex set.
	bad := looseGraph{vertices: []string{"A", "B"}, edges: []edge{core.NewEdge("A", "Z", 1)}}
	_, err = prim_kruskal.Kruskal[string, edge](bad)
	assert.ErrorIs(t, err, disjointset.ErrUnknownItem)
}

func TestKruskal_LeavesGraphEdgesInPlace(t *testing.T) {
	g := looseGraph{
		vertices: []string{"A", "B", "C"},
		edges: []edge{
			core.NewEdge("A", "B", 5),
			core.NewEdge("B", "C", 1),
			core.NewEdge("A", "C", 3),
		},
	}
	before := pairs(g.edges)

	mst, err := prim_kruskal.Kruskal[string, edge](g)
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"B", "C"}, {"A", "C"}}, pairs(mst.Edges()))
	assert.Equal(t, before, pairs(g.edges), "graph edge order must not change")
}

func TestKruskal_EqualWeightsKeepEdgeOrder(t *testing.T) {
	l := core.NewEdgeList[string, edge]([]edge{
		core.NewEdge("A", "B", 1),
		core.NewEdge("B", "C", 1),
		core.NewEdge("A", "C", 1),
	})
	mst, err := prim_kruskal.Kruskal[string, edge](l)
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"A", "B"}, {"B", "C"}}, pairs(mst.Edges()))
}

func TestNewKruskalFinder_QuickFindAgrees(t *testing.T) {
	g := sample(t)
	want, err := prim_kruskal.Kruskal[string, edge](g)
	require.NoError(t, err)

	got, err := prim_kruskal.NewKruskalFinder[string, edge](disjointset.QuickFindFactory[string]()).FindMinimumSpanningTree(g)
	require.NoError(t, err)
	assert.Equal(t, want.Edges(), got.Edges())
}

func TestPrim_Sample(t *testing.T) {
	mst, err := prim_kruskal.Prim[string, edge](sample(t))
	require.NoError(t, err)
	require.True(t, mst.Exists())
	assert.Len(t, mst.Edges(), 3)
	assert.InDelta(t, 4.0, mst.TotalWeight(), 1e-9)

	mst, err = prim_kruskal.PrimFrom[string, edge](sample(t), "D")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, mst.TotalWeight(), 1e-9)
	assert.Equal(t, "D", mst.Edges()[0].From())
}

func TestPrim_FailureAndErrors(t *testing.T) {
	g := core.NewWeightedGraph[string]()
	require.NoError(t, g.AddEdges(
		core.NewEdge("A", "B", 1),
		core.NewEdge("C", "D", 1),
	))
	mst, err := prim_kruskal.Prim[string, edge](g)
	require.NoError(t, err)
	assert.False(t, mst.Exists())

	_, err = prim_kruskal.Prim[string, edge](nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)

	_, err = prim_kruskal.PrimFrom[string, edge](g, "Z")
	assert.ErrorIs(t, err, prim_kruskal.ErrRootNotFound)

	mst, err = prim_kruskal.Prim[string, edge](core.NewWeightedGraph[string]())
	require.NoError(t, err)
	assert.True(t, mst.Exists())
}

func TestCompute_Dispatch(t *testing.T) {
	g := sample(t)
	for _, m := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		mst, err := prim_kruskal.Compute[string, edge](g, prim_kruskal.NewOptions(prim_kruskal.WithMethod(m)))
		require.NoError(t, err, m)
		assert.InDelta(t, 4.0, mst.TotalWeight(), 1e-9, m)
	}

	assert.Equal(t, prim_kruskal.MethodKruskal, prim_kruskal.DefaultOptions().Method)

	_, err := prim_kruskal.Compute[string, edge](g, prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// ------------------------------------------------------------------------
// Randomized cross-checks
// ------------------------------------------------------------------------

type iedge = core.WeightedEdge[int]

// bruteForceMST tries every (n-1)-subset of edges and keeps the lightest tree.
func bruteForceMST(n int, edges []iedge) (float64, bool) {
	best, found := math.Inf(1), false
	k := n - 1
	var pick func(start int, chosen []iedge)
	pick = func(start int, chosen []iedge) {
		if len(chosen) == k {
			sets := disjointset.NewQuickFind[int]()
			for v := 0; v < n; v++ {
				sets.MakeSet(v)
			}
			for _, e := range chosen {
				if merged, _ := sets.Union(e.From(), e.To()); !merged {
					return
				}
			}
			if w := core.TotalWeight(chosen); w < best {
				best, found = w, true
			}
			return
		}
		for i := start; i < len(edges); i++ {
			pick(i+1, append(chosen, edges[i]))
		}
	}
	pick(0, nil)
	return best, found
}

// randomGraph draws a G(n, p) fixture with integer weights in [1, 10].
func randomGraph(t testing.TB, seed int64, n int, p float64) *builder.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.IntWeightFn(1, 10))},
		builder.RandomSparse(n, p))
	require.NoError(t, err)
	return g
}

func TestKruskal_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for round := 0; round < 30; round++ {
		n := 4 + rng.Intn(3)
		g := randomGraph(t, rng.Int63(), n, 0.6)

		want, ok := bruteForceMST(n, g.AllEdges())
		kr, err := prim_kruskal.Kruskal[int, iedge](g)
		require.NoError(t, err)
		pr, err := prim_kruskal.Prim[int, iedge](g)
		require.NoError(t, err)

		assert.Equal(t, ok, kr.Exists(), "round %d", round)
		assert.Equal(t, ok, pr.Exists(), "round %d", round)
		if ok {
			assert.InDelta(t, want, kr.TotalWeight(), 1e-9, "round %d", round)
			assert.InDelta(t, want, pr.TotalWeight(), 1e-9, "round %d", round)
			assert.Len(t, kr.Edges(), n-1)
		}
	}
}

func TestPrim_MatchesKruskalOnLargeGraph(t *testing.T) {
	g := randomGraph(t, 9, 200, 0.1)

	kr, err := prim_kruskal.Kruskal[int, iedge](g)
	require.NoError(t, err)
	pr, err := prim_kruskal.Prim[int, iedge](g)
	require.NoError(t, err)

	assert.Equal(t, kr.Exists(), pr.Exists())
	assert.InDelta(t, kr.TotalWeight(), pr.TotalWeight(), 1e-9)
}
