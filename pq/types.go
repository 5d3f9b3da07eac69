// SPDX-License-Identifier: MIT

package pq

import "errors"

// Sentinel errors for priority queue operations.
var (
	// ErrDuplicateItem indicates Add was called with an item already in the queue.
	ErrDuplicateItem = errors.New("pq: item already present")

	// ErrEmptyQueue indicates PeekMin or RemoveMin on an empty queue.
	ErrEmptyQueue = errors.New("pq: queue is empty")

	// ErrItemNotFound indicates ChangePriority was called for an absent item.
	ErrItemNotFound = errors.New("pq: item not found")
)

// ExtrinsicMinPQ is a min-priority queue whose priorities are supplied by the
// caller. An item may be present at most once.
type ExtrinsicMinPQ[T comparable] interface {
	// Add inserts item with the given priority. Returns ErrDuplicateItem if
	// the item is already present.
	Add(item T, priority float64) error

	// Contains reports whether item is currently queued.
	Contains(item T) bool

	// PeekMin returns the item with the least priority without removing it.
	PeekMin() (T, error)

	// RemoveMin removes and returns the item with the least priority.
	RemoveMin() (T, error)

	// ChangePriority replaces the priority of a queued item.
	ChangePriority(item T, priority float64) error

	// Size returns the number of queued items.
	Size() int

	// IsEmpty reports whether Size() == 0.
	IsEmpty() bool
}

// PriorityNode pairs an item with its priority while it sits in a queue.
type PriorityNode[T comparable] struct {
	Item     T
	Priority float64
}

// Factory builds a fresh, empty queue. Algorithms take a Factory so tests can
// swap in the reference implementation.
type Factory[T comparable] func() ExtrinsicMinPQ[T]
