package stategraph

import (
	"github.com/aludvik/lvlgen/grid"
)

// PushState attempts to move the boulder at idx one cell in dir and, on
// success, returns the fully formed successor configuration: the boulder
// advanced, the vacated cell restored (a seated boulder re-exposes its
// hole), all stale Reachable markers cleared, and reachability re-filled
// from the tractor's resting cell — one step beyond the boulder's new
// cell in the same direction. Both that landing cell and the resting
// cell must currently be marked Reachable; a Hole landing cell is never
// Reachable, so it blocks the move. The input is never mutated.
//
// The second result is false for an illegal move, which is a normal
// negative, not an error. Calling PushState on a cell that holds no
// boulder is a caller bug and panics.
//
// Complexity: O(size²) per call (clone + re-fill).
func PushState(idx int, dir grid.Direction, cells []grid.Cell, size int) ([]grid.Cell, bool) {
	if !cells[idx].IsBoulder() {
		panic("stategraph: push attempted from a cell holding no boulder")
	}
	landing, ok := grid.Step(idx, dir, size)
	if !ok || cells[landing] != grid.Reachable {
		return nil, false
	}
	tractor, ok := grid.Step(landing, dir, size)
	if !ok || cells[tractor] != grid.Reachable {
		return nil, false
	}
	next := make([]grid.Cell, len(cells))
	copy(next, cells)
	if next[idx] == grid.Boulder {
		next[idx] = grid.Unreachable
	} else {
		next[idx] = grid.Hole
	}
	next[landing] = grid.Boulder
	grid.ClearReachable(next)
	_ = grid.FillReachable(tractor, next, size)

	return next, true
}

// frame is one suspended scan over a configuration's moves: the next
// cell index and direction ordinal to try. Together the frames form an
// explicit call stack, so discovery order matches a recursive walk
// without risking stack exhaustion on deep state spaces.
type frame struct {
	state []grid.Cell
	cell  int
	dir   int
}

// walker carries the mutable exploration state.
type walker struct {
	graph *StateGraph
	size  int
	opts  Options
	stack []frame
}

// FindSolvableStates discovers every configuration reachable from the
// given snapshot by legal moves and returns the finished StateGraph.
// The tractor's cell is marked Unreachable (occupied, not traversable),
// reachability is filled from it, and that snapshot becomes the root,
// id 0. The caller's slice is never mutated.
//
// Discovery is depth-first and fully deterministic: each configuration
// is scanned cell 0 upward, each boulder tried in Up, Down, Left, Right
// order; a move reaching a known configuration only records an edge,
// while an unseen one is inserted (taking the next id) and descended
// into immediately. Every distinct configuration is scanned exactly
// once, so the walk terminates.
//
// Returns ErrGridSize, ErrGridLength or ErrTractorRange on bad input
// and ErrOptionViolation on a bad Option. When the context is cancelled
// the consistent partial graph is returned together with ctx's error;
// a WithMaxStates budget stops the walk the same way with a nil error.
//
// Complexity: O(states × size²) time — exponential in the worst case in
// boulder count; that is inherent to enumerating an implicit graph.
func FindSolvableStates(tractor int, cells []grid.Cell, size int, opts ...Option) (*StateGraph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if size < 1 {
		return nil, ErrGridSize
	}
	if len(cells) != size*size {
		return nil, ErrGridLength
	}
	if tractor < 0 || tractor >= len(cells) {
		return nil, ErrTractorRange
	}

	root := cloneState(cells)
	root[tractor] = grid.Unreachable
	if err := grid.FillReachable(tractor, root, size); err != nil {
		return nil, err
	}

	w := &walker{graph: New(root), size: size, opts: o}
	w.stack = append(w.stack, frame{state: root})
	err := w.run()

	return w.graph, err
}

// run drives the frame stack until the space is exhausted, the budget
// is hit, or the context is cancelled.
func (w *walker) run() error {
	for len(w.stack) > 0 {
		// cancellation check (once per step)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}
		if w.opts.MaxStates > 0 && w.graph.Len() >= w.opts.MaxStates {
			return nil
		}

		next, ok := w.advance(&w.stack[len(w.stack)-1])
		if !ok {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		w.stack = append(w.stack, frame{state: next})
	}

	return nil
}

// advance resumes the frame's scan where it left off. It returns the
// next newly inserted configuration to descend into, or ok=false once
// every boulder and direction of the frame has been tried. Edges to
// already-known configurations are recorded along the way.
func (w *walker) advance(top *frame) ([]grid.Cell, bool) {
	for ; top.cell < len(top.state); top.cell, top.dir = top.cell+1, 0 {
		if !top.state[top.cell].IsBoulder() {
			continue
		}
		for top.dir < len(grid.Directions) {
			dir := grid.Directions[top.dir]
			top.dir++
			next, ok := PushState(top.cell, dir, top.state, w.size)
			if !ok {
				continue
			}
			if w.graph.ContainsState(next) {
				w.graph.ConnectStates(top.state, next)
				continue
			}
			w.graph.InsertState(next)
			w.graph.ConnectStates(top.state, next)

			return next, true
		}
	}

	return nil, false
}
