// Package channels defines the network types, options and sentinel
// errors for channel extraction.
package channels

import (
	"context"
	"errors"

	"github.com/tramebleue/fct-terrain-analysis/grid"
)

// Sentinel errors for channel extraction.
var (
	// ErrNilGrid indicates a nil input grid.
	ErrNilGrid = errors.New("channels: nil grid")
	// ErrShape indicates flow and mask grids of different shapes.
	ErrShape = errors.New("channels: flow and mask shapes differ")
	// ErrMinLength indicates a minimum segment length below 1.
	ErrMinLength = errors.New("channels: minimum length must be at least 1")
	// ErrFlowLoop indicates a downstream walk that never terminated;
	// the flow grid encodes a cycle.
	ErrFlowLoop = errors.New("channels: flow grid contains a cycle")
)

// Network is the extracted channel structure, all in grid coordinates.
type Network struct {
	// Outlets lists channel cells draining to a non-channel cell or
	// out of the grid, in row-major discovery order.
	Outlets []grid.Cell
	// Confluences lists channel cells receiving two or more channel
	// inflows, in row-major discovery order.
	Confluences []grid.Cell
	// Segments lists the polylines, each from a source or confluence
	// down to the next confluence or outlet, endpoints inclusive.
	Segments [][]grid.Cell
}

// Option configures an Extract call.
type Option func(*Options)

// Options holds configurable parameters for channel extraction.
type Options struct {
	// Ctx allows cancellation; checked once per traced segment.
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
