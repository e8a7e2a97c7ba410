package grid_test

import (
	"math/rand"
	"testing"

	"github.com/aludvik/lvlgen/grid"
)

// randomField builds an M×M snapshot with roughly one boulder per five
// cells, deterministic under a fixed seed.
func randomField(m int, seed int64) []grid.Cell {
	rnd := rand.New(rand.NewSource(seed))
	cells := make([]grid.Cell, m*m)
	for i := range cells {
		if rnd.Intn(5) == 0 {
			cells[i] = grid.Boulder
		}
	}

	return cells
}

// BenchmarkFillReachable floods a 100×100 field per iteration.
func BenchmarkFillReachable(b *testing.B) {
	const m = 100
	base := randomField(m, 42)
	base[0] = grid.Unreachable
	cells := make([]grid.Cell, len(base))

	b.ReportAllocs()
	b.SetBytes(int64(len(base)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		copy(cells, base)
		_ = grid.FillReachable(0, cells, m)
	}
}

// BenchmarkMovementGraph builds the adjacency map of a 100×100 field.
func BenchmarkMovementGraph(b *testing.B) {
	const m = 100
	cells := randomField(m, 42)

	b.ReportAllocs()
	b.SetBytes(int64(len(cells)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = grid.MovementGraph(cells, m)
	}
}
