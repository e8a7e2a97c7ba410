package stategraph

import (
	"github.com/aludvik/lvlgen/grid"
)

// StateGraph is the directed graph of every discovered configuration
// (one complete grid snapshot) and the single-move transitions between
// them. Configurations are stored once in a dense arena whose slot is
// the configuration's id, with a hash index from configuration to slot;
// the two views cannot diverge. Ids are assigned in insertion order
// starting at 0, with no gaps, and the root passed to New always holds
// id 0. Adjacency lists are ordered and keep duplicate entries: two
// distinct moves reaching the same target configuration record two
// edges.
//
// A StateGraph is grown by InsertState and ConnectStates during
// exploration and is read-only afterwards. It is not safe for
// concurrent mutation.
type StateGraph struct {
	states    [][]grid.Cell
	index     map[string]int
	neighbors [][]int
}

// stateKey packs a configuration into a compact comparable key.
// Cell fits a byte, so the key is the raw cell bytes.
func stateKey(state []grid.Cell) string {
	buf := make([]byte, len(state))
	for i, c := range state {
		buf[i] = byte(c)
	}

	return string(buf)
}

// cloneState copies a configuration so the graph owns its data.
func cloneState(state []grid.Cell) []grid.Cell {
	dup := make([]grid.Cell, len(state))
	copy(dup, state)

	return dup
}

// New creates a StateGraph holding only root, which receives id 0.
// The root is copied; the caller's slice is not retained.
func New(root []grid.Cell) *StateGraph {
	g := &StateGraph{index: make(map[string]int)}
	g.InsertState(root)

	return g
}

// InsertState registers a configuration not seen before and returns its
// id, the next unused slot. Inserting a configuration already present
// is a broken-invariant bug in the caller's walk, not a recoverable
// condition, and panics; use ContainsState first.
// Complexity: O(size²) for the copy and key.
func (g *StateGraph) InsertState(state []grid.Cell) int {
	key := stateKey(state)
	if _, ok := g.index[key]; ok {
		panic("stategraph: duplicate configuration inserted")
	}
	id := len(g.states)
	g.index[key] = id
	g.states = append(g.states, cloneState(state))
	g.neighbors = append(g.neighbors, []int{})

	return id
}

// ConnectStates appends the edge from→to, both given by configuration.
// Both endpoints must already be inserted; a missing endpoint is a
// broken-invariant bug and panics. Duplicate edges are kept.
// Complexity: O(size²) for the key lookups.
func (g *StateGraph) ConnectStates(from, to []grid.Cell) {
	fromID, ok := g.index[stateKey(from)]
	if !ok {
		panic("stategraph: edge source configuration was never inserted")
	}
	toID, ok := g.index[stateKey(to)]
	if !ok {
		panic("stategraph: edge target configuration was never inserted")
	}
	g.neighbors[fromID] = append(g.neighbors[fromID], toID)
}

// GetNeighbors returns a copy of id's ordered neighbor list. The second
// result is false for ids never assigned; probing unknown ids is fine.
func (g *StateGraph) GetNeighbors(id int) ([]int, bool) {
	if !g.ContainsID(id) {
		return nil, false
	}
	dup := make([]int, len(g.neighbors[id]))
	copy(dup, g.neighbors[id])

	return dup, true
}

// GetState returns a copy of id's configuration. The second result is
// false for ids never assigned.
func (g *StateGraph) GetState(id int) ([]grid.Cell, bool) {
	if !g.ContainsID(id) {
		return nil, false
	}

	return cloneState(g.states[id]), true
}

// IDOf returns the id of a configuration, if it was ever inserted.
func (g *StateGraph) IDOf(state []grid.Cell) (int, bool) {
	id, ok := g.index[stateKey(state)]

	return id, ok
}

// ContainsID reports whether id names an inserted configuration.
func (g *StateGraph) ContainsID(id int) bool {
	return id >= 0 && id < len(g.states)
}

// ContainsState reports whether the configuration was ever inserted.
func (g *StateGraph) ContainsState(state []grid.Cell) bool {
	_, ok := g.index[stateKey(state)]

	return ok
}

// Root returns a copy of the configuration holding id 0.
func (g *StateGraph) Root() []grid.Cell {
	return cloneState(g.states[0])
}

// Len returns the number of distinct configurations in the graph.
func (g *StateGraph) Len() int {
	return len(g.states)
}
