package stategraph

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aludvik/lvlgen/grid"
)

// snapshot is the persisted shape of a StateGraph: the configuration
// arena in id order plus one neighbor list per id. Both directed
// mappings (configuration→id and id→configuration) fall out of the
// arena's slot order, so id assignment and edge order round-trip
// exactly.
type snapshot struct {
	States    [][]grid.Cell `yaml:"states"`
	Neighbors [][]int       `yaml:"neighbors"`
}

// MarshalYAML implements yaml.Marshaler; use yaml.Marshal(g) to obtain
// the portable snapshot of a finished graph.
func (g *StateGraph) MarshalYAML() (interface{}, error) {
	return snapshot{States: g.states, Neighbors: g.neighbors}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler, rebuilding the hash index
// from the arena and validating the snapshot: a root must exist, every
// configuration must have the same length and hold only defined cell
// tags, configurations must be distinct, and every edge endpoint must
// name an id in range. Violations are reported as ErrSnapshot.
func (g *StateGraph) UnmarshalYAML(value *yaml.Node) error {
	var snap snapshot
	if err := value.Decode(&snap); err != nil {
		return err
	}
	if len(snap.States) == 0 {
		return fmt.Errorf("%w: no root configuration", ErrSnapshot)
	}
	if len(snap.Neighbors) != len(snap.States) {
		return fmt.Errorf("%w: %d states but %d neighbor lists",
			ErrSnapshot, len(snap.States), len(snap.Neighbors))
	}

	states := make([][]grid.Cell, len(snap.States))
	index := make(map[string]int, len(snap.States))
	for id, state := range snap.States {
		if len(state) != len(snap.States[0]) {
			return fmt.Errorf("%w: state %d has length %d, root has %d",
				ErrSnapshot, id, len(state), len(snap.States[0]))
		}
		for idx, c := range state {
			if !c.Valid() {
				return fmt.Errorf("%w: state %d cell %d holds unknown tag %d",
					ErrSnapshot, id, idx, c)
			}
		}
		key := stateKey(state)
		if prev, dup := index[key]; dup {
			return fmt.Errorf("%w: states %d and %d are identical", ErrSnapshot, prev, id)
		}
		index[key] = id
		states[id] = cloneState(state)
	}

	neighbors := make([][]int, len(snap.Neighbors))
	for id, list := range snap.Neighbors {
		dup := make([]int, 0, len(list))
		for _, to := range list {
			if to < 0 || to >= len(states) {
				return fmt.Errorf("%w: state %d has edge to unknown id %d", ErrSnapshot, id, to)
			}
			dup = append(dup, to)
		}
		neighbors[id] = dup
	}

	g.states = states
	g.index = index
	g.neighbors = neighbors

	return nil
}
