// Package shortest defines the tree type, options, and sentinel errors
// for BFS shortest-path queries over a StateGraph.
package shortest

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for shortest-path construction and queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("shortest: graph is nil")
	// ErrSourceNotFound is returned when the source id is absent.
	ErrSourceNotFound = errors.New("shortest: source id not found")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("shortest: invalid option supplied")
	// ErrNoPath is returned by PathTo for a destination the source
	// cannot reach.
	ErrNoPath = errors.New("shortest: no path to destination")
)

// Option configures tree construction via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of a tree build.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: a background
// context and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// Tree is the result of one BFS pass from Source over a StateGraph's
// directed edges: for every reached id, the minimum move count from
// Source and the parent through which it was first discovered. Ids with
// no directed path from Source are simply absent. A Tree borrows
// nothing from the graph it was built on; it is a disposable view.
type Tree struct {
	// Source is the root id the tree was built from.
	Source int
	// Order lists reached ids in visit sequence.
	Order []int
	// Depth maps a reached id to its distance (in moves) from Source.
	Depth map[int]int
	// Parent maps a reached id to its predecessor; Source has none.
	Parent map[int]int
}

// Contains reports whether id was reached from Source.
func (t *Tree) Contains(id int) bool {
	_, ok := t.Depth[id]

	return ok
}

// DepthOf returns id's distance from Source in moves.
func (t *Tree) DepthOf(id int) (int, bool) {
	d, ok := t.Depth[id]

	return d, ok
}

// ParentOf returns the id through which id was first reached.
// The Source itself has no parent.
func (t *Tree) ParentOf(id int) (int, bool) {
	p, ok := t.Parent[id]

	return p, ok
}

// PathTo reconstructs the minimum-move path Source → dest by following
// parent links. Returns ErrNoPath if dest was never reached.
func (t *Tree) PathTo(dest int) ([]int, error) {
	if _, ok := t.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: id %d", ErrNoPath, dest)
	}
	// build reversed path, then flip
	path := []int{}
	cur := dest
	for {
		path = append(path, cur)
		prev, ok := t.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
