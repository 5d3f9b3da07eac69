// SPDX-License-Identifier: MIT

package kvmap

import (
	"fmt"
	"hash/maphash"
	"iter"
)

// ChainedHashMap is a separate-chaining hash map whose chains are ArrayMaps.
// Chains are allocated lazily on first insert into their bucket.
type ChainedHashMap[K comparable, V any] struct {
	chains        []*ArrayMap[K, V]
	size          int
	threshold     float64
	chainCapacity int
	seed          maphash.Seed
}

// NewChainedHashMap returns an empty map. All three parameters must be
// positive, otherwise ErrIllegalConfiguration is returned.
func NewChainedHashMap[K comparable, V any](threshold float64, chainCount, chainCapacity int) (*ChainedHashMap[K, V], error) {
	if !(threshold > 0) || chainCount <= 0 || chainCapacity <= 0 {
		return nil, fmt.Errorf("%w: threshold=%v chains=%d chainCapacity=%d",
			ErrIllegalConfiguration, threshold, chainCount, chainCapacity)
	}
	return &ChainedHashMap[K, V]{
		chains:        make([]*ArrayMap[K, V], chainCount),
		threshold:     threshold,
		chainCapacity: chainCapacity,
		seed:          maphash.MakeSeed(),
	}, nil
}

// NewDefaultChainedHashMap returns an empty map with the package defaults.
func NewDefaultChainedHashMap[K comparable, V any]() *ChainedHashMap[K, V] {
	m, _ := NewChainedHashMap[K, V](DefaultResizingLoadFactorThreshold, DefaultInitialChainCount, DefaultInitialChainCapacity)
	return m
}

func (m *ChainedHashMap[K, V]) bucket(key K, n int) int {
	return int(maphash.Comparable(m.seed, key) % uint64(n))
}

func (m *ChainedHashMap[K, V]) newChain() *ArrayMap[K, V] {
	return &ArrayMap[K, V]{entries: make([]entry[K, V], 0, m.chainCapacity)}
}

func (m *ChainedHashMap[K, V]) Get(key K) (V, bool) {
	if c := m.chains[m.bucket(key, len(m.chains))]; c != nil {
		return c.Get(key)
	}
	var zero V
	return zero, false
}

// Put grows the bucket array first if the load factor has reached the threshold.
func (m *ChainedHashMap[K, V]) Put(key K, value V) (V, bool) {
	if float64(m.size)/float64(len(m.chains)) >= m.threshold {
		m.grow()
	}
	i := m.bucket(key, len(m.chains))
	if m.chains[i] == nil {
		m.chains[i] = m.newChain()
	}
	old, replaced := m.chains[i].Put(key, value)
	if !replaced {
		m.size++
	}
	return old, replaced
}

// grow doubles the bucket array and rehashes every entry.
func (m *ChainedHashMap[K, V]) grow() {
	next := make([]*ArrayMap[K, V], len(m.chains)*2)
	for _, c := range m.chains {
		if c == nil {
			continue
		}
		for _, e := range c.entries {
			i := m.bucket(e.key, len(next))
			if next[i] == nil {
				next[i] = m.newChain()
			}
			next[i].entries = append(next[i].entries, e)
		}
	}
	m.chains = next
}

func (m *ChainedHashMap[K, V]) Remove(key K) (V, bool) {
	if c := m.chains[m.bucket(key, len(m.chains))]; c != nil {
		old, ok := c.Remove(key)
		if ok {
			m.size--
		}
		return old, ok
	}
	var zero V
	return zero, false
}

func (m *ChainedHashMap[K, V]) ContainsKey(key K) bool {
	c := m.chains[m.bucket(key, len(m.chains))]
	return c != nil && c.ContainsKey(key)
}

func (m *ChainedHashMap[K, V]) Len() int { return m.size }

// Clear drops every chain but keeps the current bucket count.
func (m *ChainedHashMap[K, V]) Clear() {
	clear(m.chains)
	m.size = 0
}

// ChainCount returns the current number of buckets.
func (m *ChainedHashMap[K, V]) ChainCount() int { return len(m.chains) }

func (m *ChainedHashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, c := range m.chains {
			if c == nil {
				continue
			}
			for _, e := range c.entries {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}
