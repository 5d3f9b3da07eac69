// SPDX-License-Identifier: MIT

package maze

import (
	"io"
	"strings"
)

// Render draws m as ASCII art. Rooms on route are marked with '*'.
//
//	+---+---+
//	| *   * |
//	+---+   +
//	|     * |
//	+---+---+
func (m *Maze) Render(w io.Writer, route []Room) error {
	onRoute := make(map[Room]bool, len(route))
	for _, r := range route {
		onRoute[r] = true
	}

	var b strings.Builder
	b.WriteString("+" + strings.Repeat("---+", m.width) + "\n")
	for y := 0; y < m.height; y++ {
		b.WriteByte('|')
		for x := 0; x < m.width; x++ {
			r := Room{X: x, Y: y}
			if onRoute[r] {
				b.WriteString(" * ")
			} else {
				b.WriteString("   ")
			}
			if x+1 < m.width && m.IsOpen(r, Room{X: x + 1, Y: y}) {
				b.WriteByte(' ')
			} else {
				b.WriteByte('|')
			}
		}
		b.WriteString("\n+")
		for x := 0; x < m.width; x++ {
			if y+1 < m.height && m.IsOpen(Room{X: x, Y: y}, Room{X: x, Y: y + 1}) {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}
