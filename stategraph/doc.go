// Package stategraph enumerates the reachable state space of a boulder
// puzzle and records it as a directed graph of configurations.
//
// What
//
//   - StateGraph: every distinct configuration discovered, held in a
//     dense arena (slot = id, root = id 0) with a hash index keyed by
//     the configuration's cells, plus one ordered adjacency list per id.
//     Duplicate edges are kept: each legal move that realizes a
//     transition records its own edge.
//   - PushState: single-move generation. The boulder's landing cell and
//     the tractor's resting cell one step further must both be marked
//     Reachable in the current snapshot; the successor is a fresh clone
//     with markers cleared and reachability re-filled.
//   - FindSolvableStates: the exhaustive walk. Depth-first over an
//     explicit frame stack, scanning cells ascending and directions
//     Up, Down, Left, Right, inserting each unseen configuration and
//     descending into it immediately.
//   - YAML persistence: yaml.Marshal/yaml.Unmarshal on a StateGraph
//     round-trip id assignment and edge order exactly, with full
//     validation on load.
//
// Determinism
//
//	Cell scan order and direction order are fixed, so repeated runs on
//	the same input produce identical id assignments and identical edge
//	sequences. Callers may rely on this for reproducible tie-breaks.
//
// Contracts
//
//	Illegal moves are ordinary negatives (ok == false). Broken
//	invariants — inserting a duplicate configuration, connecting a
//	configuration never inserted, pushing from a cell holding no
//	boulder — panic: they mean the walk itself is defective and are not
//	meant to be caught. Probing accessors with unknown ids is always
//	safe and merely reports absence.
//
// Complexity
//
//	The state space is exponential in boulder count in the worst case;
//	that is the problem, not the implementation. Bound a run with
//	WithMaxStates or WithContext — either way the returned partial
//	graph is consistent: every recorded edge joins inserted states.
//
// Usage
//
//	g, err := stategraph.FindSolvableStates(tractor, cells, size,
//	    stategraph.WithMaxStates(100_000),
//	)
//	if err != nil { ... }
//	fmt.Println(g.Len())
//
// Errors
//
//   - ErrGridSize, ErrGridLength, ErrTractorRange for bad input
//   - ErrOptionViolation for a bad Option
//   - ErrSnapshot when a persisted graph fails validation on load
package stategraph
