// SPDX-License-Identifier: MIT

package kvmap_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/kvmap"
)

func TestNewArrayMap_IllegalCapacity(t *testing.T) {
	for _, c := range []int{0, -1} {
		_, err := kvmap.NewArrayMap[string, int](c)
		assert.ErrorIs(t, err, kvmap.ErrIllegalConfiguration)
	}
}

func TestNewChainedHashMap_IllegalConfiguration(t *testing.T) {
	cases := []struct {
		name      string
		threshold float64
		chains    int
		capacity  int
	}{
		{"zero threshold", 0, 10, 10},
		{"negative threshold", -1, 10, 10},
		{"zero chains", 1, 0, 10},
		{"zero chain capacity", 1, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := kvmap.NewChainedHashMap[string, int](tc.threshold, tc.chains, tc.capacity)
			assert.ErrorIs(t, err, kvmap.ErrIllegalConfiguration)
		})
	}
}

// maps under test, all starting empty
func implementations(t *testing.T) map[string]kvmap.Map[int, int] {
	t.Helper()
	am, err := kvmap.NewArrayMap[int, int](4)
	require.NoError(t, err)
	small, err := kvmap.NewChainedHashMap[int, int](0.75, 1, 1)
	require.NoError(t, err)
	return map[string]kvmap.Map[int, int]{
		"ArrayMap":              am,
		"ChainedHashMap":        kvmap.NewDefaultChainedHashMap[int, int](),
		"ChainedHashMap(tight)": small,
	}
}

func TestMap_PutGetRemove(t *testing.T) {
	for name, m := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			_, replaced := m.Put(1, 10)
			assert.False(t, replaced)
			old, replaced := m.Put(1, 11)
			assert.True(t, replaced)
			assert.Equal(t, 10, old)

			v, ok := m.Get(1)
			assert.True(t, ok)
			assert.Equal(t, 11, v)
			assert.True(t, m.ContainsKey(1))
			assert.Equal(t, 1, m.Len())

			_, ok = m.Get(2)
			assert.False(t, ok)

			old, ok = m.Remove(1)
			assert.True(t, ok)
			assert.Equal(t, 11, old)
			_, ok = m.Remove(1)
			assert.False(t, ok)
			assert.Zero(t, m.Len())
		})
	}
}

// TestMap_RandomAgainstBuiltin drives each implementation with a random
// operation sequence and compares every observation with a Go map.
func TestMap_RandomAgainstBuiltin(t *testing.T) {
	for name, m := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			r := rand.New(rand.NewSource(99))
			ref := map[int]int{}
			for step := 0; step < 3000; step++ {
				k := r.Intn(400)
				switch r.Intn(3) {
				case 0, 1:
					v := r.Int()
					old, replaced := m.Put(k, v)
					refOld, had := ref[k]
					require.Equal(t, had, replaced)
					require.Equal(t, refOld, old)
					ref[k] = v
				default:
					old, ok := m.Remove(k)
					refOld, had := ref[k]
					require.Equal(t, had, ok)
					require.Equal(t, refOld, old)
					delete(ref, k)
				}
				require.Equal(t, len(ref), m.Len())
			}

			seen := map[int]int{}
			for k, v := range m.All() {
				seen[k] = v
			}
			assert.Equal(t, ref, seen)

			m.Clear()
			assert.Zero(t, m.Len())
			for k := range ref {
				assert.False(t, m.ContainsKey(k))
			}
		})
	}
}

func TestChainedHashMap_Grows(t *testing.T) {
	m, err := kvmap.NewChainedHashMap[string, int](2, 2, 1)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		m.Put(string(rune('a'+i%26))+string(rune('A'+i/26)), i)
	}
	assert.Equal(t, 100, m.Len())
	assert.Greater(t, m.ChainCount(), 2)
	assert.LessOrEqual(t, float64(m.Len())/float64(m.ChainCount()), 2.0+1.0/float64(m.ChainCount()))

	for i := 0; i < 100; i++ {
		v, ok := m.Get(string(rune('a'+i%26)) + string(rune('A'+i/26)))
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestMap_AllStopsEarly(t *testing.T) {
	m := kvmap.NewDefaultChainedHashMap[int, string]()
	for i := 0; i < 50; i++ {
		m.Put(i, "v")
	}
	n := 0
	for range m.All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}
