// SPDX-License-Identifier: MIT

package kvmap

import (
	"errors"
	"iter"
)

// ErrIllegalConfiguration indicates a non-positive structural parameter.
var ErrIllegalConfiguration = errors.New("kvmap: illegal configuration")

// Defaults mirror a small map that grows quickly.
const (
	DefaultResizingLoadFactorThreshold = 10.0
	DefaultInitialChainCount           = 10
	DefaultInitialChainCapacity        = 10
	DefaultArrayMapCapacity            = 16
)

// Map is an associative container with no ordering guarantee.
type Map[K comparable, V any] interface {
	// Get returns the value stored under key.
	Get(key K) (V, bool)

	// Put stores value under key and returns the value it replaced, if any.
	Put(key K, value V) (V, bool)

	// Remove deletes key and returns the value it held, if any.
	Remove(key K) (V, bool)

	// ContainsKey reports whether key is present.
	ContainsKey(key K) bool

	// Len returns the number of entries.
	Len() int

	// Clear removes every entry.
	Clear()

	// All iterates over every entry in unspecified order.
	All() iter.Seq2[K, V]
}

type entry[K comparable, V any] struct {
	key   K
	value V
}
