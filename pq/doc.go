// SPDX-License-Identifier: MIT

// Package pq provides an indexed min-priority queue for graph algorithms
// that need decrease-key, such as Dijkstra's shortest paths and Prim's
// minimum spanning tree.
//
// Overview:
//
//   - ArrayHeapMinPQ stores (item, priority) pairs in a binary min-heap laid
//     out in a slice: the parent of index i is (i-1)/2, its children are
//     2i+1 and 2i+2.
//   - A parallel map item → slice index is kept in lockstep with the heap on
//     every swap, giving O(1) Contains and O(log n) ChangePriority.
//   - Items are "extrinsic": the priority is supplied by the caller and is not
//     a property of the item itself. Items must be comparable and each item
//     may be present at most once.
//
// Complexity:
//
//	Add            O(log n)
//	RemoveMin      O(log n)
//	ChangePriority O(log n)
//	PeekMin        O(1)
//	Contains       O(1)
//	Size           O(1)
//
// Errors (sentinel):
//
//	ErrDuplicateItem – Add of an item that is already queued.
//	ErrEmptyQueue    – PeekMin/RemoveMin on an empty queue.
//	ErrItemNotFound  – ChangePriority of an item that is not queued.
//
// Thread safety:
//
//	Queues are not safe for concurrent use. Algorithms in this module create
//	one queue per invocation and never share it.
//
// Example:
//
//	q := pq.NewArrayHeapMinPQ[string]()
//	_ = q.Add("b", 2)
//	_ = q.Add("a", 1)
//	_ = q.ChangePriority("b", 0.5)
//	first, _ := q.RemoveMin() // "b"
package pq
