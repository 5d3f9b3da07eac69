// SPDX-License-Identifier: MIT

package core

import "fmt"

// WeightedEdge is the plain edge type: two endpoints and a weight.
type WeightedEdge[V comparable] struct {
	from   V
	to     V
	weight float64
}

// NewEdge builds a WeightedEdge. Weight validation happens when the edge is
// added to a container.
func NewEdge[V comparable](from, to V, weight float64) WeightedEdge[V] {
	return WeightedEdge[V]{from: from, to: to, weight: weight}
}

func (e WeightedEdge[V]) From() V         { return e.from }
func (e WeightedEdge[V]) To() V           { return e.to }
func (e WeightedEdge[V]) Weight() float64 { return e.weight }

// Reversed swaps the endpoints and keeps the weight.
func (e WeightedEdge[V]) Reversed() WeightedEdge[V] {
	return WeightedEdge[V]{from: e.to, to: e.from, weight: e.weight}
}

func (e WeightedEdge[V]) String() string {
	return fmt.Sprintf("%v->%v(%g)", e.from, e.to, e.weight)
}

// EdgeWithData is a WeightedEdge that carries a payload.
type EdgeWithData[V comparable, D any] struct {
	WeightedEdge[V]
	data D
}

// NewEdgeWithData builds an EdgeWithData.
func NewEdgeWithData[V comparable, D any](from, to V, weight float64, data D) EdgeWithData[V, D] {
	return EdgeWithData[V, D]{WeightedEdge: NewEdge(from, to, weight), data: data}
}

// Data returns the payload.
func (e EdgeWithData[V, D]) Data() D { return e.data }

// Reversed swaps the endpoints and keeps weight and payload.
func (e EdgeWithData[V, D]) Reversed() EdgeWithData[V, D] {
	return EdgeWithData[V, D]{WeightedEdge: e.WeightedEdge.Reversed(), data: e.data}
}

// TotalWeight sums the weights of edges.
func TotalWeight[E interface{ Weight() float64 }](edges []E) float64 {
	var sum float64
	for _, e := range edges {
		sum += e.Weight()
	}
	return sum
}
