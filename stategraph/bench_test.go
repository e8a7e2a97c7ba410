package stategraph_test

import (
	"testing"

	"github.com/aludvik/lvlgen/grid"
	"github.com/aludvik/lvlgen/stategraph"
)

// BenchmarkFindSolvableStates_SingleBoulder measures the trivial
// four-state space: fixed overhead of a full walk.
func BenchmarkFindSolvableStates_SingleBoulder(b *testing.B) {
	cells := make([]grid.Cell, 16)
	cells[5] = grid.Boulder

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = stategraph.FindSolvableStates(0, cells, 4)
	}
}

// BenchmarkFindSolvableStates_CornerPuzzle measures a real puzzle with
// four seated boulders.
func BenchmarkFindSolvableStates_CornerPuzzle(b *testing.B) {
	cells := make([]grid.Cell, 16)
	cells[0], cells[3], cells[12], cells[15] =
		grid.BoulderInHole, grid.BoulderInHole, grid.BoulderInHole, grid.BoulderInHole

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = stategraph.FindSolvableStates(8, cells, 4)
	}
}

// BenchmarkPushState measures one move generation in isolation.
func BenchmarkPushState(b *testing.B) {
	cells := make([]grid.Cell, 16)
	for i := range cells {
		cells[i] = grid.Reachable
	}
	cells[5] = grid.Boulder

	b.ReportAllocs()
	b.SetBytes(int64(len(cells)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = stategraph.PushState(5, grid.Down, cells, 4)
	}
}
