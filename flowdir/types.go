// Package flowdir defines options and sentinel errors for the D8 flow
// direction classifier.
package flowdir

import (
	"context"
	"errors"
)

// Sentinel errors for flow direction computation.
var (
	// ErrNilGrid indicates a nil input or output grid.
	ErrNilGrid = errors.New("flowdir: nil grid")
	// ErrPadding indicates the elevation grid is not the output shape
	// plus a one-cell halo on every side.
	ErrPadding = errors.New("flowdir: elevations must be padded to (H+2, W+2)")
	// ErrResolution indicates a cell resolution that is not a positive
	// finite number.
	ErrResolution = errors.New("flowdir: cell resolution must be positive and finite")
)

// Option configures a Compute call.
type Option func(*Options)

// Options holds configurable parameters for flow direction computation.
type Options struct {
	// Ctx allows cancellation; checked once per output row.
	// Defaults to context.Background().
	Ctx context.Context

	// Workers is the number of goroutines processing disjoint row
	// bands. Values below 1 are treated as 1.
	Workers int
}

// DefaultOptions returns Options with a background context and a single
// worker.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
	}
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

// WithWorkers returns an Option that sets the number of row-band
// workers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}
