// Package watershed defines options and sentinel errors for basin
// delineation.
package watershed

import (
	"context"
	"errors"
)

// Sentinel errors for watershed delineation.
var (
	// ErrNilGrid indicates a nil input or output grid.
	ErrNilGrid = errors.New("watershed: nil grid")
	// ErrShape indicates flow and basin grids of different shapes.
	ErrShape = errors.New("watershed: flow and basin shapes differ")
	// ErrSeedOutOfGrid indicates a seed coordinate outside [0,H)×[0,W).
	ErrSeedOutOfGrid = errors.New("watershed: seed cell out of grid")
	// ErrBasinID indicates a non-positive basin identifier.
	ErrBasinID = errors.New("watershed: basin identifier must be positive")
)

// cancelInterval is how many stack pops elapse between cancellation
// checks.
const cancelInterval = 1 << 16

// Option configures a delineation call.
type Option func(*Options)

// Options holds configurable parameters for basin delineation.
type Options struct {
	// Ctx allows cancellation; checked every cancelInterval pops.
	// On cancellation the basin grid is memory-safe but undefined.
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
