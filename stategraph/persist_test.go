package stategraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aludvik/lvlgen/grid"
	"github.com/aludvik/lvlgen/stategraph"
)

// TestPersist_RoundTrip explores a real puzzle, snapshots it, and
// reloads it: id assignment and edge order must survive exactly.
func TestPersist_RoundTrip(t *testing.T) {
	cells := make([]grid.Cell, 16)
	cells[5] = B
	g, err := stategraph.FindSolvableStates(0, cells, 4)
	require.NoError(t, err)

	data, err := yaml.Marshal(g)
	require.NoError(t, err)

	var loaded stategraph.StateGraph
	require.NoError(t, yaml.Unmarshal(data, &loaded))

	require.Equal(t, g.Len(), loaded.Len())
	for id := 0; id < g.Len(); id++ {
		wantState, _ := g.GetState(id)
		gotState, ok := loaded.GetState(id)
		require.True(t, ok)
		assert.Equal(t, wantState, gotState, "state %d", id)

		wantNbrs, _ := g.GetNeighbors(id)
		gotNbrs, ok := loaded.GetNeighbors(id)
		require.True(t, ok)
		assert.Equal(t, wantNbrs, gotNbrs, "edges of %d", id)
	}

	// the rebuilt index answers configuration lookups
	id, ok := loaded.IDOf(g.Root())
	require.True(t, ok)
	assert.Equal(t, 0, id)
}

// TestPersist_RejectsCorruptSnapshots covers each validation rule.
func TestPersist_RejectsCorruptSnapshots(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"no root", "states: []\nneighbors: []\n"},
		{"list count mismatch", "states: [[0, 0, 0, 0]]\nneighbors: [[], []]\n"},
		{"ragged state", "states: [[0, 0, 0, 0], [0, 0]]\nneighbors: [[], []]\n"},
		{"unknown cell tag", "states: [[0, 0, 9, 0]]\nneighbors: [[]]\n"},
		{"duplicate states", "states: [[0, 0, 0, 0], [0, 0, 0, 0]]\nneighbors: [[], []]\n"},
		{"edge out of range", "states: [[0, 0, 0, 0]]\nneighbors: [[1]]\n"},
		{"negative edge", "states: [[0, 0, 0, 0]]\nneighbors: [[-1]]\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var g stategraph.StateGraph
			err := yaml.Unmarshal([]byte(tc.doc), &g)
			assert.ErrorIs(t, err, stategraph.ErrSnapshot)
		})
	}
}

// TestPersist_LoadedGraphKeepsContracts: a reloaded graph behaves like
// a freshly built one, duplicate-insert panic included.
func TestPersist_LoadedGraphKeepsContracts(t *testing.T) {
	doc := "states: [[3, 1, 1, 1], [1, 3, 1, 1]]\nneighbors: [[1], []]\n"
	var g stategraph.StateGraph
	require.NoError(t, yaml.Unmarshal([]byte(doc), &g))

	require.Equal(t, 2, g.Len())
	assert.Equal(t, []grid.Cell{B, R, R, R}, g.Root())
	require.Panics(t, func() { g.InsertState([]grid.Cell{B, R, R, R}) })

	nbrs, ok := g.GetNeighbors(0)
	require.True(t, ok)
	assert.Equal(t, []int{1}, nbrs)
	nbrs, ok = g.GetNeighbors(1)
	require.True(t, ok)
	assert.Empty(t, nbrs)
}
