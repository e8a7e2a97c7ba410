package shortest

import (
	"github.com/aludvik/lvlgen/stategraph"
)

// queueItem pairs an id with its depth in the traversal.
type queueItem struct {
	id    int
	depth int
}

// BuildFrom runs breadth-first search over the graph's directed edges
// starting at source and returns the resulting shortest-path Tree.
// Every id is enqueued at most once, at the depth it is first
// discovered; BFS layer order makes that depth the true minimum move
// count, and following Parent links back from any reached id
// reconstructs a minimal route. Ids unreachable from source are absent
// from the tree — that is a property of the graph, not an error.
//
// The graph is only read; duplicate adjacency entries are harmless
// (later occurrences find the id already visited).
//
// Returns ErrGraphNil, ErrSourceNotFound, ErrOptionViolation, or the
// context's error (with the partial tree) on cancellation.
//
// Complexity: O(V + E) time, O(V) memory.
func BuildFrom(g *stategraph.StateGraph, source int, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.ContainsID(source) {
		return nil, ErrSourceNotFound
	}

	n := g.Len()
	tree := &Tree{
		Source: source,
		Order:  make([]int, 0, n),
		Depth:  make(map[int]int, n),
		Parent: make(map[int]int, n),
	}
	visited := make(map[int]bool, n)
	visited[source] = true
	tree.Depth[source] = 0
	queue := []queueItem{{id: source}}

	for len(queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-o.Ctx.Done():
			return tree, o.Ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]
		tree.Order = append(tree.Order, item.id)

		nextDepth := item.depth + 1
		if o.MaxDepth > 0 && nextDepth > o.MaxDepth {
			continue
		}
		neighbors, _ := g.GetNeighbors(item.id)
		for _, nbr := range neighbors {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			tree.Depth[nbr] = nextDepth
			tree.Parent[nbr] = item.id
			queue = append(queue, queueItem{id: nbr, depth: nextDepth})
		}
	}

	return tree, nil
}
