// SPDX-License-Identifier: MIT

package maze

import "fmt"

// conn4 lists orthogonal neighbour offsets: N, E, S, W.
var conn4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Maze is a rectangular grid of rooms with some walls removed.
// It is not safe for concurrent mutation.
type Maze struct {
	width, height int
	open          map[Wall]bool
}

// NewGrid returns a width×height maze with every interior wall standing.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(1).
func NewGrid(width, height int) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	return &Maze{width: width, height: height, open: make(map[Wall]bool)}, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// InBounds reports whether r lies within the grid.
func (m *Maze) InBounds(r Room) bool {
	return r.X >= 0 && r.X < m.width && r.Y >= 0 && r.Y < m.height
}

// Rooms returns every room in row-major order.
func (m *Maze) Rooms() []Room {
	rooms := make([]Room, 0, m.width*m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			rooms = append(rooms, Room{X: x, Y: y})
		}
	}
	return rooms
}

// AllWalls returns every interior wall, standing or not, in row-major order
// of the first room with its east wall before its south wall.
// There are (W−1)·H + W·(H−1) of them.
func (m *Maze) AllWalls() []Wall {
	walls := make([]Wall, 0, (m.width-1)*m.height+m.width*(m.height-1))
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			r := Room{X: x, Y: y}
			if x+1 < m.width {
				walls = append(walls, Wall{A: r, B: Room{X: x + 1, Y: y}})
			}
			if y+1 < m.height {
				walls = append(walls, Wall{A: r, B: Room{X: x, Y: y + 1}})
			}
		}
	}
	return walls
}

// StandingWalls returns the walls not yet removed, in AllWalls order.
func (m *Maze) StandingWalls() []Wall {
	all := m.AllWalls()
	standing := all[:0]
	for _, w := range all {
		if !m.open[w] {
			standing = append(standing, w)
		}
	}
	return standing
}

// IsOpen reports whether a passage joins a and b.
func (m *Maze) IsOpen(a, b Room) bool {
	w, err := NewWall(a, b)
	if err != nil {
		return false
	}
	return m.open[w]
}

// RemovedCount returns how many walls have been removed.
func (m *Maze) RemovedCount() int { return len(m.open) }

// RemoveWall opens the passage w.
// Errors: ErrRoomOutOfBounds, ErrNotAdjacent, ErrUnknownWall if already open.
func (m *Maze) RemoveWall(w Wall) error {
	if !m.InBounds(w.A) || !m.InBounds(w.B) {
		return fmt.Errorf("%w: %v", ErrRoomOutOfBounds, w)
	}
	norm, err := NewWall(w.A, w.B)
	if err != nil {
		return err
	}
	if m.open[norm] {
		return fmt.Errorf("%w: %v already removed", ErrUnknownWall, norm)
	}
	m.open[norm] = true
	return nil
}

// Passages returns the rooms reachable from r in one step.
func (m *Maze) Passages(r Room) []Room {
	var out []Room
	for _, d := range conn4 {
		n := Room{X: r.X + d[0], Y: r.Y + d[1]}
		if m.InBounds(n) && m.IsOpen(r, n) {
			out = append(out, n)
		}
	}
	return out
}

// index maps r to a row-major index: Y*width + X.
func (m *Maze) index(r Room) int { return r.Y*m.width + r.X }

// room converts a row-major index back to a Room.
func (m *Maze) room(idx int) Room { return Room{X: idx % m.width, Y: idx / m.width} }
