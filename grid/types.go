// Package grid defines the cell tags, directions, and sentinel errors
// shared by the lvlgen packages.
package grid

import (
	"errors"
	"strconv"
)

// Sentinel errors for grid operations.
var (
	// ErrGridSize indicates a grid size smaller than 1.
	ErrGridSize = errors.New("grid: size must be at least 1")
	// ErrGridLength indicates a cell slice whose length is not size*size.
	ErrGridLength = errors.New("grid: cell count must equal size*size")
	// ErrIndexRange indicates a start index outside the grid.
	ErrIndexRange = errors.New("grid: index out of range")
)

// Cell is one grid cell's tag. The zero value is Unreachable.
type Cell uint8

const (
	// Unreachable marks an empty cell not (yet) proven reachable.
	Unreachable Cell = iota
	// Reachable marks an empty cell the tractor can occupy. It is a
	// transient marker, valid only for the snapshot it was computed on.
	Reachable
	// Hole is an empty target cell awaiting a boulder.
	Hole
	// Boulder is a movable boulder on an ordinary cell.
	Boulder
	// BoulderInHole is a boulder seated in a hole.
	BoulderInHole
)

// cellNames backs Cell.String; index is the Cell value.
var cellNames = [...]string{"Unreachable", "Reachable", "Hole", "Boulder", "BoulderInHole"}

// String returns the tag name, or "Cell(n)" for values outside the set.
func (c Cell) String() string {
	if int(c) < len(cellNames) {
		return cellNames[c]
	}

	return "Cell(" + strconv.Itoa(int(c)) + ")"
}

// Valid reports whether c is one of the five defined tags.
func (c Cell) Valid() bool {
	return int(c) < len(cellNames)
}

// IsBoulder reports whether c holds a boulder (seated or not).
func (c Cell) IsBoulder() bool {
	return c == Boulder || c == BoulderInHole
}

// Direction is one of the four orthogonal moves.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all moves in scan order. Every neighbor enumeration
// in lvlgen iterates this slice front to back, which fixes edge order.
var Directions = [...]Direction{Up, Down, Left, Right}

// dirNames backs Direction.String.
var dirNames = [...]string{"Up", "Down", "Left", "Right"}

// String returns the direction name.
func (d Direction) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}

	return "Direction(" + strconv.Itoa(int(d)) + ")"
}
