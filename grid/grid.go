package grid

// Index maps (row, col) to a row-major index: row*size + col.
// Complexity: O(1).
func Index(row, col, size int) int {
	return row*size + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func Coordinate(idx, size int) (row, col int) {
	return idx / size, idx % size
}

// Step moves idx one cell in dir on a size×size grid.
// The second result is false when the move leaves the grid.
// Complexity: O(1).
func Step(idx int, dir Direction, size int) (int, bool) {
	row, col := Coordinate(idx, size)
	switch dir {
	case Up:
		if row == 0 {
			return 0, false
		}

		return Index(row-1, col, size), true
	case Down:
		if row >= size-1 {
			return 0, false
		}

		return Index(row+1, col, size), true
	case Left:
		if col == 0 {
			return 0, false
		}

		return Index(row, col-1, size), true
	default: // Right
		if col >= size-1 {
			return 0, false
		}

		return Index(row, col+1, size), true
	}
}

// validate checks the (cells, size) pair shared by every entry point.
func validate(cells []Cell, size int) error {
	if size < 1 {
		return ErrGridSize
	}
	if len(cells) != size*size {
		return ErrGridLength
	}

	return nil
}

// FillReachable marks, in place, every cell the tractor standing at
// start can walk to without moving a boulder. The fill spreads only
// through Unreachable cells; Hole, Boulder and BoulderInHole all block
// it. The start cell itself is marked only if it is Unreachable.
//
// Reachable markers are valid for this snapshot only; call
// ClearReachable before computing reachability on a derived snapshot.
//
// Returns ErrGridSize, ErrGridLength or ErrIndexRange on bad input.
// Time: O(size²), Memory: O(size²) for the worklist.
func FillReachable(start int, cells []Cell, size int) error {
	if err := validate(cells, size); err != nil {
		return err
	}
	if start < 0 || start >= len(cells) {
		return ErrIndexRange
	}
	if cells[start] != Unreachable {
		return nil
	}
	cells[start] = Reachable
	stack := []int{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, dir := range Directions {
			next, ok := Step(cur, dir, size)
			if !ok || cells[next] != Unreachable {
				continue
			}
			cells[next] = Reachable
			stack = append(stack, next)
		}
	}

	return nil
}

// ClearReachable resets every Reachable marker back to Unreachable,
// preparing the snapshot for a fresh fill. Complexity: O(len(cells)).
func ClearReachable(cells []Cell) {
	for i, c := range cells {
		if c == Reachable {
			cells[i] = Unreachable
		}
	}
}
