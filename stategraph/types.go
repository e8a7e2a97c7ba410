// Package stategraph defines the sentinel errors and functional options
// for state-space exploration.
package stategraph

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for exploration and persistence.
var (
	// ErrGridSize indicates a grid size smaller than 1.
	ErrGridSize = errors.New("stategraph: size must be at least 1")
	// ErrGridLength indicates a cell slice whose length is not size*size.
	ErrGridLength = errors.New("stategraph: cell count must equal size*size")
	// ErrTractorRange indicates a tractor index outside the grid.
	ErrTractorRange = errors.New("stategraph: tractor index out of range")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("stategraph: invalid option supplied")
	// ErrSnapshot is returned when a persisted graph fails validation on load.
	ErrSnapshot = errors.New("stategraph: inconsistent snapshot")
)

// Option configures exploration via functional arguments. An invalid
// Option (e.g. a negative state budget) is recorded internally and
// surfaced as ErrOptionViolation when FindSolvableStates is invoked.
type Option func(*Options)

// Options holds the tunable parameters of a state-space walk.
type Options struct {
	// Ctx allows cancellation and deadlines. On cancellation the walk
	// returns the consistent partial graph built so far with ctx's error.
	Ctx context.Context

	// MaxStates, if > 0, stops the walk once the graph holds that many
	// configurations. A value of 0 explicitly disables the budget.
	MaxStates int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no state budget (MaxStates == 0)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxStates: 0,
		err:       nil,
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

// WithMaxStates bounds the number of configurations discovered.
//
//	n > 0:  stop once the graph holds n configurations
//	n == 0: explicit "no budget"
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.MaxStates = 0
		default:
			o.MaxStates = n
		}
	}
}
