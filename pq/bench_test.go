// SPDX-License-Identifier: MIT

package pq_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/labyrinth/pq"
)

// BenchmarkArrayHeapMinPQ_AddRemove measures a fill-then-drain cycle of 10k items.
func BenchmarkArrayHeapMinPQ_AddRemove(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	prios := make([]float64, 10_000)
	for i := range prios {
		prios[i] = r.Float64()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := pq.NewArrayHeapMinPQWithCapacity[int](len(prios))
		for j, p := range prios {
			_ = q.Add(j, p)
		}
		for !q.IsEmpty() {
			_, _ = q.RemoveMin()
		}
	}
}
