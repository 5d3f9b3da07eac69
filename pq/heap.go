// SPDX-License-Identifier: MIT

package pq

import "fmt"

// startIndex is the slot of the heap root.
const startIndex = 0

// ArrayHeapMinPQ is a binary min-heap over PriorityNode values with an
// item → index map for O(1) membership and O(log n) priority changes.
//
// Invariants (hold between any two public calls):
//   - for every i > 0: items[(i-1)/2].Priority <= items[i].Priority;
//   - len(itemIndexes) == len(items) and items[itemIndexes[x]].Item == x.
type ArrayHeapMinPQ[T comparable] struct {
	items       []PriorityNode[T]
	itemIndexes map[T]int
}

// NewArrayHeapMinPQ returns an empty queue.
func NewArrayHeapMinPQ[T comparable]() *ArrayHeapMinPQ[T] {
	return &ArrayHeapMinPQ[T]{
		items:       make([]PriorityNode[T], 0),
		itemIndexes: make(map[T]int),
	}
}

// NewArrayHeapMinPQWithCapacity returns an empty queue with room for n items
// before the backing slice has to grow.
func NewArrayHeapMinPQWithCapacity[T comparable](n int) *ArrayHeapMinPQ[T] {
	if n < 0 {
		n = 0
	}
	return &ArrayHeapMinPQ[T]{
		items:       make([]PriorityNode[T], 0, n),
		itemIndexes: make(map[T]int, n),
	}
}

// ArrayHeapFactory returns a Factory producing ArrayHeapMinPQ instances.
func ArrayHeapFactory[T comparable]() Factory[T] {
	return func() ExtrinsicMinPQ[T] { return NewArrayHeapMinPQ[T]() }
}

// Add appends item at the end of the heap and sifts it up.
// Complexity: O(log n).
func (q *ArrayHeapMinPQ[T]) Add(item T, priority float64) error {
	if q.Contains(item) {
		return fmt.Errorf("%w: %v", ErrDuplicateItem, item)
	}
	q.items = append(q.items, PriorityNode[T]{Item: item, Priority: priority})
	last := len(q.items) - 1
	q.itemIndexes[item] = last
	q.siftUp(last)

	return nil
}

// Contains reports whether item is queued. Complexity: O(1).
func (q *ArrayHeapMinPQ[T]) Contains(item T) bool {
	_, ok := q.itemIndexes[item]
	return ok
}

// PeekMin returns the root item. Complexity: O(1).
func (q *ArrayHeapMinPQ[T]) PeekMin() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.items[startIndex].Item, nil
}

// RemoveMin swaps the root with the last node, drops it, and sifts the new
// root down. Complexity: O(log n).
func (q *ArrayHeapMinPQ[T]) RemoveMin() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	minItem := q.items[startIndex].Item
	last := len(q.items) - 1
	q.swap(startIndex, last)
	q.items[last] = PriorityNode[T]{} // release the reference held by the tail slot
	q.items = q.items[:last]
	delete(q.itemIndexes, minItem)
	if len(q.items) > 0 {
		q.siftDown(startIndex)
	}

	return minItem, nil
}

// ChangePriority updates the priority of a queued item and restores heap
// order: up when the priority decreased, down otherwise.
// Complexity: O(log n).
func (q *ArrayHeapMinPQ[T]) ChangePriority(item T, priority float64) error {
	index, ok := q.itemIndexes[item]
	if !ok {
		return fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}
	old := q.items[index].Priority
	q.items[index].Priority = priority
	if priority < old {
		q.siftUp(index)
	} else {
		q.siftDown(index)
	}

	return nil
}

// Size returns the number of queued items.
func (q *ArrayHeapMinPQ[T]) Size() int { return len(q.items) }

// IsEmpty reports whether the queue has no items.
func (q *ArrayHeapMinPQ[T]) IsEmpty() bool { return len(q.items) == 0 }

// Priority returns the current priority of item, if queued.
func (q *ArrayHeapMinPQ[T]) Priority(item T) (float64, bool) {
	index, ok := q.itemIndexes[item]
	if !ok {
		return 0, false
	}
	return q.items[index].Priority, true
}

// siftUp swaps index with its parent while the parent is strictly greater.
func (q *ArrayHeapMinPQ[T]) siftUp(index int) {
	for index > startIndex {
		parent := (index - 1) / 2
		if q.items[parent].Priority <= q.items[index].Priority {
			return
		}
		q.swap(index, parent)
		index = parent
	}
}

// siftDown swaps index with its smaller child while that child is strictly
// less. The right child wins only when strictly less than the left one.
func (q *ArrayHeapMinPQ[T]) siftDown(index int) {
	n := len(q.items)
	for {
		child := 2*index + 1
		if child >= n {
			return
		}
		if right := child + 1; right < n && q.items[right].Priority < q.items[child].Priority {
			child = right
		}
		if q.items[child].Priority >= q.items[index].Priority {
			return
		}
		q.swap(index, child)
		index = child
	}
}

// swap exchanges two heap slots and records both new positions.
func (q *ArrayHeapMinPQ[T]) swap(a, b int) {
	q.items[a], q.items[b] = q.items[b], q.items[a]
	q.itemIndexes[q.items[a].Item] = a
	q.itemIndexes[q.items[b].Item] = b
}
