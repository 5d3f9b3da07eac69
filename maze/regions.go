// SPDX-License-Identifier: MIT

package maze

import "github.com/katalvlaran/labyrinth/dfs"

// Regions partitions the rooms into groups joined by open passages.
// A freshly built grid has one region per room; a perfect maze has one.
// Each region lists rooms in discovery order starting from its row-major
// first room.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (m *Maze) Regions() [][]Room {
	total := m.width * m.height
	seen := make([]bool, total)
	var regions [][]Room

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		var region []Room

		for qi := 0; qi < len(queue); qi++ {
			r := m.room(queue[qi])
			region = append(region, r)
			for _, n := range m.Passages(r) {
				ni := m.index(n)
				if !seen[ni] {
					seen[ni] = true
					queue = append(queue, ni)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}

// IsPerfect reports whether every room is reachable and exactly one route
// joins any two rooms, i.e. the passages form a spanning tree.
func (m *Maze) IsPerfect() bool {
	g, err := m.Graph()
	if err != nil {
		return false
	}
	ok, err := dfs.IsForest[Room, Passage](g)
	return err == nil && ok && len(m.Regions()) == 1
}
