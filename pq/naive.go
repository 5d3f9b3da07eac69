// SPDX-License-Identifier: MIT

package pq

import "fmt"

// NaiveMinPQ is a linear-scan queue implementing ExtrinsicMinPQ. Every
// operation except Add is O(n). It exists as an obviously-correct reference
// for testing algorithms against ArrayHeapMinPQ.
//
// Among equal priorities RemoveMin returns the item added first.
type NaiveMinPQ[T comparable] struct {
	items []PriorityNode[T]
}

// NewNaiveMinPQ returns an empty reference queue.
func NewNaiveMinPQ[T comparable]() *NaiveMinPQ[T] {
	return &NaiveMinPQ[T]{}
}

// NaiveFactory returns a Factory producing NaiveMinPQ instances.
func NaiveFactory[T comparable]() Factory[T] {
	return func() ExtrinsicMinPQ[T] { return NewNaiveMinPQ[T]() }
}

func (q *NaiveMinPQ[T]) Add(item T, priority float64) error {
	if q.Contains(item) {
		return fmt.Errorf("%w: %v", ErrDuplicateItem, item)
	}
	q.items = append(q.items, PriorityNode[T]{Item: item, Priority: priority})
	return nil
}

func (q *NaiveMinPQ[T]) Contains(item T) bool {
	return q.indexOf(item) >= 0
}

func (q *NaiveMinPQ[T]) PeekMin() (T, error) {
	i := q.minIndex()
	if i < 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.items[i].Item, nil
}

func (q *NaiveMinPQ[T]) RemoveMin() (T, error) {
	i := q.minIndex()
	if i < 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	item := q.items[i].Item
	q.items = append(q.items[:i], q.items[i+1:]...)
	return item, nil
}

func (q *NaiveMinPQ[T]) ChangePriority(item T, priority float64) error {
	i := q.indexOf(item)
	if i < 0 {
		return fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}
	q.items[i].Priority = priority
	return nil
}

func (q *NaiveMinPQ[T]) Size() int { return len(q.items) }

func (q *NaiveMinPQ[T]) IsEmpty() bool { return len(q.items) == 0 }

func (q *NaiveMinPQ[T]) indexOf(item T) int {
	for i := range q.items {
		if q.items[i].Item == item {
			return i
		}
	}
	return -1
}

func (q *NaiveMinPQ[T]) minIndex() int {
	best := -1
	for i := range q.items {
		if best < 0 || q.items[i].Priority < q.items[best].Priority {
			best = i
		}
	}
	return best
}
