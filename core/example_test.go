// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// ExampleNewWeightedGraph builds the small square
//
//	A───B
//	│   │
//	C───D
//
// and lists the edges leaving B.
func ExampleNewWeightedGraph() {
	g := core.NewWeightedGraph[string]()
	_ = g.AddEdges(
		core.NewEdge("A", "B", 1),
		core.NewEdge("B", "D", 2),
		core.NewEdge("D", "C", 1),
		core.NewEdge("C", "A", 3),
	)
	fmt.Println(g.VertexCount(), g.EdgeCount())
	for _, e := range g.OutgoingEdgesFrom("B") {
		fmt.Println(e)
	}
	// Output:
	// 4 4
	// B->A(1)
	// B->D(2)
}
