// Package shortest builds BFS shortest-path trees over a finished
// stategraph.StateGraph, answering "fewest moves from configuration X"
// queries.
//
// What
//
//   - BuildFrom: one breadth-first pass over the graph's directed edges
//     from a source id, producing a Tree with visit Order, per-id Depth
//     (minimum move count) and Parent links.
//   - Tree.PathTo: parent-chain reconstruction of a minimal route; ids
//     the source cannot reach yield ErrNoPath and are otherwise simply
//     absent from the tree.
//
// Why
//
//	The state graph records which single moves connect configurations;
//	a BFS layer order over its unweighted edges is exactly the minimum
//	number of moves. Trees are cheap, disposable views: build one per
//	query and drop it, the graph itself stays read-only.
//
// Determinism
//
//	Adjacency lists preserve the explorer's edge order, and BuildFrom
//	scans them front to back, so visit order and parent tie-breaks are
//	fully reproducible across runs.
//
// Complexity (V = configurations, E = recorded moves)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	tree, err := shortest.BuildFrom(g, 0)
//	if err != nil { ... }
//	path, err := tree.PathTo(goal)
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil
//   - ErrSourceNotFound  if the source id was never assigned
//   - ErrOptionViolation if an invalid Option is supplied
//   - ErrNoPath          from PathTo for an unreached destination
package shortest
