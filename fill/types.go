// Package fill defines options and sentinel errors for depression
// filling.
package fill

import (
	"context"
	"errors"
)

// Sentinel errors for sink filling.
var (
	// ErrNilGrid indicates a nil input or output grid.
	ErrNilGrid = errors.New("fill: nil grid")
	// ErrShape indicates input and output grids of different shapes.
	ErrShape = errors.New("fill: input and output shapes differ")
	// ErrResolution indicates a cell resolution that is not a positive
	// finite number.
	ErrResolution = errors.New("fill: cell resolution must be positive and finite")
	// ErrMinslope indicates a negative or non-finite minimum slope.
	ErrMinslope = errors.New("fill: minimum slope must be non-negative and finite")
	// ErrNoData indicates a non-finite nodata value; elevations are
	// compared against it for equality, which NaN never satisfies.
	ErrNoData = errors.New("fill: nodata value must be finite")
)

// cancelInterval is how many queue pops elapse between cancellation
// checks.
const cancelInterval = 1 << 16

// Option configures a Sinks call.
type Option func(*Options)

// Options holds configurable parameters for sink filling.
type Options struct {
	// Ctx allows cancellation; checked every cancelInterval pops.
	// On cancellation the output grid is memory-safe but undefined.
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
