package stategraph_test

import (
	"fmt"

	"github.com/aludvik/lvlgen/grid"
	"github.com/aludvik/lvlgen/stategraph"
)

// ExampleFindSolvableStates enumerates the space of a single boulder on
// an empty 4×4 grid. A legal move needs two reachable in-bounds cells
// beyond the boulder, so the boulder is confined to the four interior
// cells: four configurations, each reaching two others.
func ExampleFindSolvableStates() {
	cells := make([]grid.Cell, 16)
	cells[5] = grid.Boulder

	g, err := stategraph.FindSolvableStates(0, cells, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("configurations:", g.Len())
	for id := 0; id < g.Len(); id++ {
		nbrs, _ := g.GetNeighbors(id)
		fmt.Println(id, "→", nbrs)
	}
	// Output:
	// configurations: 4
	// 0 → [1 3]
	// 1 → [0 2]
	// 2 → [3 1]
	// 3 → [2 0]
}

// ExamplePushState shows one move: the boulder advances one cell and
// the tractor comes to rest one step beyond it.
func ExamplePushState() {
	cells := make([]grid.Cell, 16)
	for i := range cells {
		cells[i] = grid.Reachable
	}
	cells[5] = grid.Boulder

	next, ok := stategraph.PushState(5, grid.Down, cells, 4)
	fmt.Println("legal:", ok)
	fmt.Println("old boulder cell:", next[5])
	fmt.Println("new boulder cell:", next[9])
	// Output:
	// legal: true
	// old boulder cell: Reachable
	// new boulder cell: Boulder
}
