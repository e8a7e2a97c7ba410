// Package grid provides the cell model and grid primitives the lvlgen
// engine is built on: a flat row-major snapshot of Cell tags, bounded
// single-step index arithmetic, the tractor-reachability flood fill, and
// a small movement-graph helper for analyzing one snapshot in isolation.
//
// What
//
//   - Cell: a closed tag set {Unreachable, Reachable, Hole, Boulder,
//     BoulderInHole}. Reachable is a transient marker: it is valid only
//     for the snapshot it was computed on and must be cleared (see
//     ClearReachable) before reachability is computed again.
//   - Step: one-cell move in a Direction with boundary awareness; moving
//     off any edge yields no result.
//   - FillReachable: in-place flood fill marking the connected region of
//     Unreachable cells containing a start index. Traversal crosses only
//     Unreachable cells — Hole, Boulder and BoulderInHole all block.
//   - MovementGraph / WalkFrom: an explicit adjacency map over the
//     traversable cells of a single snapshot, and a BFS collector over
//     it. These back snapshot-level analysis and tests; the state-space
//     engine itself works directly on cells.
//
// Determinism
//
//	Neighbor enumeration always follows the fixed order Up, Down, Left,
//	Right (Directions). MovementGraph adjacency lists and FillReachable's
//	marking order are therefore fully reproducible.
//
// Complexity (n = size²)
//
//   - Step: O(1)
//   - FillReachable, ClearReachable, MovementGraph: O(n)
//   - WalkFrom: O(n + edges)
//
// Errors
//
//   - ErrGridSize   if size < 1
//   - ErrGridLength if len(cells) != size*size
//   - ErrIndexRange if a start index is outside [0, size²)
package grid
