// Package lvlgen explores the reachable state space of a grid puzzle in
// which a tractor moves boulders one cell at a time, and answers
// minimal-move-count queries over the discovered space.
//
// 🚀 What is lvlgen?
//
//	A small, deterministic, in-memory engine made of three packages:
//		• grid/       — cell model, index arithmetic, reachability flood-fill,
//		                and a tiny movement-graph helper for single snapshots
//		• stategraph/ — the core: exhaustive enumeration of every distinct
//		                configuration reachable by legal moves, recorded as a
//		                directed graph with dense integer ids, plus YAML
//		                persistence of the finished graph
//		• shortest/   — BFS shortest-path trees over a finished StateGraph,
//		                with parent-chain path reconstruction
//
// ✨ Why lvlgen?
//
//   - Deterministic – fixed cell scan and direction order make every run
//     reproduce the same id assignment and edge sequences
//   - Exhaustive – the walk terminates having visited every distinct
//     reachable configuration exactly once
//   - Honest about cost – the state space is exponential in the worst
//     case; bound a run with stategraph.WithMaxStates or a context
//
// Typical flow:
//
//	cells := ... // flat size×size snapshot of grid.Cell values
//	g, err := stategraph.FindSolvableStates(tractor, cells, size)
//	tree, err := shortest.BuildFrom(g, 0)
//	path, err := tree.PathTo(goal)
package lvlgen
