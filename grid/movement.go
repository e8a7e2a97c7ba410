package grid

// MovementGraph builds an explicit adjacency map over the traversable
// cells of one snapshot. A cell is a node iff it is Unreachable (empty
// and not yet claimed by a marker); each node's neighbor list holds the
// adjacent traversable cells in Directions order (Up, Down, Left,
// Right), so list order is deterministic and not sorted.
//
// Cells holding a Hole, Boulder or BoulderInHole appear neither as
// nodes nor as neighbors.
//
// Returns ErrGridSize or ErrGridLength on bad input.
// Time: O(size²), Memory: O(size² + edges).
func MovementGraph(cells []Cell, size int) (map[int][]int, error) {
	if err := validate(cells, size); err != nil {
		return nil, err
	}
	adj := make(map[int][]int, len(cells))
	for idx, c := range cells {
		if c != Unreachable {
			continue
		}
		neighbors := []int{}
		for _, dir := range Directions {
			next, ok := Step(idx, dir, size)
			if !ok || cells[next] != Unreachable {
				continue
			}
			neighbors = append(neighbors, next)
		}
		adj[idx] = neighbors
	}

	return adj, nil
}

// WalkFrom collects the set of nodes reachable from start in adj by
// breadth-first traversal, start included. A start absent from adj
// yields the singleton {start}.
// Time: O(nodes + edges), Memory: O(nodes).
func WalkFrom(start int, adj map[int][]int) map[int]bool {
	seen := map[int]bool{start: true}
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adj[cur] {
			if seen[next] {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}

	return seen
}
