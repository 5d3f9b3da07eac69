// SPDX-License-Identifier: MIT

package pq

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireHeapInvariant checks parent <= child for every non-root slot and
// that the index map mirrors the slice exactly.
func requireHeapInvariant[T comparable](t *testing.T, q *ArrayHeapMinPQ[T]) {
	t.Helper()
	for i := 1; i < len(q.items); i++ {
		parent := (i - 1) / 2
		require.LessOrEqualf(t, q.items[parent].Priority, q.items[i].Priority,
			"heap order broken between slot %d and its parent %d", i, parent)
	}
	require.Len(t, q.itemIndexes, len(q.items))
	for i, node := range q.items {
		require.Equalf(t, i, q.itemIndexes[node.Item], "index map stale for %v", node.Item)
	}
}

func TestArrayHeapMinPQ_EmptyQueue(t *testing.T) {
	q := NewArrayHeapMinPQ[string]()
	assert.True(t, q.IsEmpty())
	assert.Zero(t, q.Size())

	_, err := q.PeekMin()
	assert.ErrorIs(t, err, ErrEmptyQueue)

	_, err = q.RemoveMin()
	assert.ErrorIs(t, err, ErrEmptyQueue)
}

func TestArrayHeapMinPQ_DuplicateAndMissing(t *testing.T) {
	q := NewArrayHeapMinPQ[string]()
	require.NoError(t, q.Add("a", 1))

	err := q.Add("a", 5)
	assert.ErrorIs(t, err, ErrDuplicateItem)
	assert.Equal(t, 1, q.Size(), "failed Add must not change the queue")

	err = q.ChangePriority("zzz", 3)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestArrayHeapMinPQ_ContainsLifecycle(t *testing.T) {
	q := NewArrayHeapMinPQ[int]()
	require.NoError(t, q.Add(7, 3))
	assert.True(t, q.Contains(7))

	require.NoError(t, q.Add(8, 1))
	got, err := q.RemoveMin()
	require.NoError(t, err)
	assert.Equal(t, 8, got)
	assert.False(t, q.Contains(8))
	assert.True(t, q.Contains(7))
}

func TestArrayHeapMinPQ_PeekDoesNotRemove(t *testing.T) {
	q := NewArrayHeapMinPQ[string]()
	require.NoError(t, q.Add("x", 2))
	require.NoError(t, q.Add("y", 1))

	top, err := q.PeekMin()
	require.NoError(t, err)
	assert.Equal(t, "y", top)
	assert.Equal(t, 2, q.Size())
}

func TestArrayHeapMinPQ_ChangePriority(t *testing.T) {
	q := NewArrayHeapMinPQ[string]()
	for i, s := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, q.Add(s, float64(i+1)))
	}

	// decrease: e moves to the root
	require.NoError(t, q.ChangePriority("e", 0))
	requireHeapInvariant(t, q)
	top, _ := q.PeekMin()
	assert.Equal(t, "e", top)

	// increase: e sinks again
	require.NoError(t, q.ChangePriority("e", 10))
	requireHeapInvariant(t, q)
	top, _ = q.PeekMin()
	assert.Equal(t, "a", top)

	// unchanged priority is a no-op
	require.NoError(t, q.ChangePriority("c", 3))
	requireHeapInvariant(t, q)

	p, ok := q.Priority("e")
	assert.True(t, ok)
	assert.Equal(t, 10.0, p)
}

func TestArrayHeapMinPQ_DrainIsSorted(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	q := NewArrayHeapMinPQWithCapacity[int](200)
	want := make([]float64, 0, 200)
	for i := 0; i < 200; i++ {
		p := float64(r.Intn(50)) // many ties on purpose
		want = append(want, p)
		require.NoError(t, q.Add(i, p))
	}
	sort.Float64s(want)

	got := make([]float64, 0, len(want))
	for !q.IsEmpty() {
		top, err := q.PeekMin()
		require.NoError(t, err)
		p, _ := q.Priority(top)
		item, err := q.RemoveMin()
		require.NoError(t, err)
		require.Equal(t, top, item)
		require.False(t, q.Contains(item))
		got = append(got, p)
	}
	assert.Equal(t, want, got)
}

// TestArrayHeapMinPQ_RandomOperations interleaves every mutating operation
// and checks the heap invariant after each step, comparing results with the
// linear-scan reference queue.
func TestArrayHeapMinPQ_RandomOperations(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		r := rand.New(rand.NewSource(seed))
		q := NewArrayHeapMinPQ[int]()
		ref := map[int]float64{}

		for step := 0; step < 500; step++ {
			switch op := r.Intn(4); {
			case op <= 1: // add
				item := r.Intn(60)
				p := float64(r.Intn(100))
				err := q.Add(item, p)
				if _, dup := ref[item]; dup {
					require.ErrorIs(t, err, ErrDuplicateItem)
				} else {
					require.NoError(t, err)
					ref[item] = p
				}
			case op == 2: // remove min
				item, err := q.RemoveMin()
				if len(ref) == 0 {
					require.ErrorIs(t, err, ErrEmptyQueue)
					break
				}
				require.NoError(t, err)
				for _, p := range ref {
					require.LessOrEqual(t, ref[item], p, "seed %d: removed item is not minimal", seed)
				}
				delete(ref, item)
			default: // change priority
				item := r.Intn(60)
				p := float64(r.Intn(100))
				err := q.ChangePriority(item, p)
				if _, ok := ref[item]; ok {
					require.NoError(t, err)
					ref[item] = p
				} else {
					require.ErrorIs(t, err, ErrItemNotFound)
				}
			}
			requireHeapInvariant(t, q)
			require.Equal(t, len(ref), q.Size())
		}
	}
}

func TestNaiveMinPQ_MatchesContract(t *testing.T) {
	var q ExtrinsicMinPQ[string] = NewNaiveMinPQ[string]()
	require.NoError(t, q.Add("a", 3))
	require.NoError(t, q.Add("b", 1))
	require.NoError(t, q.Add("c", 2))
	assert.ErrorIs(t, q.Add("a", 0), ErrDuplicateItem)
	assert.ErrorIs(t, q.ChangePriority("z", 0), ErrItemNotFound)

	require.NoError(t, q.ChangePriority("a", 0))
	order := make([]string, 0, 3)
	for !q.IsEmpty() {
		item, err := q.RemoveMin()
		require.NoError(t, err)
		order = append(order, item)
	}
	assert.Equal(t, []string{"a", "b", "c"}, order)

	_, err := q.PeekMin()
	assert.ErrorIs(t, err, ErrEmptyQueue)
}
