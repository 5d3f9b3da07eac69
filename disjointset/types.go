// SPDX-License-Identifier: MIT

package disjointset

import "errors"

// ErrUnknownItem indicates an operation referenced an item that was never
// registered with MakeSet.
var ErrUnknownItem = errors.New("disjointset: unknown item")

// DisjointSets is a collection of disjoint sets of items.
type DisjointSets[T comparable] interface {
	// MakeSet registers item as a new singleton set. No-op if already registered.
	MakeSet(item T)

	// FindSet returns an integer identifying the set that contains item.
	// Two items are in the same set iff FindSet returns the same value for both.
	FindSet(item T) (int, error)

	// Union merges the sets containing a and b. It returns false if they
	// were already in the same set.
	Union(a, b T) (bool, error)
}

// Factory builds a fresh, empty DisjointSets.
type Factory[T comparable] func() DisjointSets[T]
