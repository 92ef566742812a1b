// Package accum defines options and sentinel errors for flow
// accumulation.
package accum

import (
	"context"
	"errors"
)

// Sentinel errors for flow accumulation.
var (
	// ErrNilGrid indicates a nil flow grid.
	ErrNilGrid = errors.New("accum: nil grid")
	// ErrFlowLoop indicates cells left unresolved by the topological
	// sweep; the flow grid encodes a cycle.
	ErrFlowLoop = errors.New("accum: flow grid contains a cycle")
)

// cancelInterval is how many queue pops elapse between cancellation
// checks.
const cancelInterval = 1 << 16

// Option configures a D8 call.
type Option func(*Options)

// Options holds configurable parameters for flow accumulation.
type Options struct {
	// Ctx allows cancellation; checked every cancelInterval pops.
	// Defaults to context.Background().
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext returns an Option that sets the cancellation context.
// A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
