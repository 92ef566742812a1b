// Package strahler defines options and sentinel errors for stream
// ordering.
package strahler

import (
	"context"
	"errors"
)

// Sentinel errors for stream ordering.
var (
	// ErrNilGrid indicates a nil input or output grid.
	ErrNilGrid = errors.New("strahler: nil grid")
	// ErrShape indicates elevation, flow and order grids of differing
	// shapes.
	ErrShape = errors.New("strahler: grid shapes differ")
)

// Option configures an Order call.
type Option func(*Options)

// Options holds configurable parameters for stream ordering.
type Options struct {
	// Ctx allows cancellation; checked once per grid row of the
	// reduction. On cancellation the order grid is memory-safe but
	// undefined. Defaults to context.Background().
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
