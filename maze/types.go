// SPDX-License-Identifier: MIT

package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze operations.
var (
	// ErrEmptyGrid indicates a non-positive width or height.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")

	// ErrRoomOutOfBounds indicates a room outside the grid.
	ErrRoomOutOfBounds = errors.New("maze: room out of bounds")

	// ErrNotAdjacent indicates a wall between rooms that do not touch.
	ErrNotAdjacent = errors.New("maze: rooms are not adjacent")

	// ErrUnknownWall indicates a carver chose a wall the maze does not have.
	ErrUnknownWall = errors.New("maze: no such standing wall")

	// ErrUnknownAlgorithm indicates NewCarver was given an unsupported name.
	ErrUnknownAlgorithm = errors.New("maze: unknown carving algorithm")

	// ErrDisconnected indicates a carver's walls do not join every room.
	ErrDisconnected = errors.New("maze: walls do not connect every room")
)

// Room is one cell of the grid.
type Room struct {
	X, Y int
}

func (r Room) String() string { return fmt.Sprintf("(%d,%d)", r.X, r.Y) }

// less orders rooms row-major.
func (r Room) less(o Room) bool {
	if r.Y != o.Y {
		return r.Y < o.Y
	}
	return r.X < o.X
}

// Wall separates two orthogonally adjacent rooms. A precedes B in row-major
// order, so each wall has exactly one representation.
type Wall struct {
	A, B Room
}

// NewWall returns the wall between a and b.
func NewWall(a, b Room) (Wall, error) {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx*dx+dy*dy != 1 {
		return Wall{}, fmt.Errorf("%w: %v %v", ErrNotAdjacent, a, b)
	}
	if b.less(a) {
		a, b = b, a
	}
	return Wall{A: a, B: b}, nil
}

func (w Wall) String() string { return fmt.Sprintf("%v|%v", w.A, w.B) }
