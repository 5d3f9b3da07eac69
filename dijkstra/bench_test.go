// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/builder"
	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/dijkstra"
	"github.com/katalvlaran/labyrinth/pq"
)

const benchSide = 40

func benchGrid(b *testing.B) *builder.Graph {
	b.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithWeightFn(builder.IntWeightFn(1, 5))},
		builder.Grid(benchSide, benchSide))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkFindShortestPath_Heap(b *testing.B) {
	g := benchGrid(b)
	f := dijkstra.NewFinder[int, core.WeightedEdge[int]]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.FindShortestPath(g, 0, benchSide*benchSide-1)
	}
}

func BenchmarkFindShortestPath_Naive(b *testing.B) {
	g := benchGrid(b)
	f := dijkstra.NewFinderWithQueue[int, core.WeightedEdge[int]](pq.NaiveFactory[int]())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.FindShortestPath(g, 0, benchSide*benchSide-1)
	}
}
