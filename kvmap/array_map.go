// SPDX-License-Identifier: MIT

package kvmap

import (
	"fmt"
	"iter"
)

// ArrayMap stores entries in a slice and scans it on every lookup.
type ArrayMap[K comparable, V any] struct {
	entries []entry[K, V]
}

// NewArrayMap returns an empty map with room for capacity entries.
// Returns ErrIllegalConfiguration if capacity <= 0.
func NewArrayMap[K comparable, V any](capacity int) (*ArrayMap[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity=%d", ErrIllegalConfiguration, capacity)
	}
	return &ArrayMap[K, V]{entries: make([]entry[K, V], 0, capacity)}, nil
}

func (m *ArrayMap[K, V]) find(key K) int {
	for i := range m.entries {
		if m.entries[i].key == key {
			return i
		}
	}
	return -1
}

func (m *ArrayMap[K, V]) Get(key K) (V, bool) {
	if i := m.find(key); i >= 0 {
		return m.entries[i].value, true
	}
	var zero V
	return zero, false
}

func (m *ArrayMap[K, V]) Put(key K, value V) (V, bool) {
	if i := m.find(key); i >= 0 {
		old := m.entries[i].value
		m.entries[i].value = value
		return old, true
	}
	m.entries = append(m.entries, entry[K, V]{key: key, value: value})
	var zero V
	return zero, false
}

// Remove moves the last entry into the freed slot.
func (m *ArrayMap[K, V]) Remove(key K) (V, bool) {
	i := m.find(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	old := m.entries[i].value
	last := len(m.entries) - 1
	m.entries[i] = m.entries[last]
	m.entries[last] = entry[K, V]{}
	m.entries = m.entries[:last]
	return old, true
}

func (m *ArrayMap[K, V]) ContainsKey(key K) bool { return m.find(key) >= 0 }

func (m *ArrayMap[K, V]) Len() int { return len(m.entries) }

func (m *ArrayMap[K, V]) Clear() {
	clear(m.entries)
	m.entries = m.entries[:0]
}

func (m *ArrayMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
