// Package grid defines the shared types and sentinel errors for the
// terrain-analysis grid primitives.
package grid

import "errors"

// Sentinel errors for grid construction and shape validation.
var (
	// ErrEmptyGrid indicates a requested grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates 2-D input rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrShape indicates two grids whose shapes must agree do not.
	ErrShape = errors.New("grid: shape mismatch")
	// ErrDenseRank indicates a sparse.DenseArray that is not 2-dimensional.
	ErrDenseRank = errors.New("grid: dense array must have exactly two dimensions")
)

// Cell is a grid coordinate: row I, column J.
type Cell struct {
	I, J int
}
