package channels

import (
	"github.com/ctessum/sparse"

	"github.com/tramebleue/fct-terrain-analysis/grid"
)

// Mask thresholds a Strahler-order grid into a channel mask: true
// where the order is defined (non-zero) and at least threshold.
func Mask(o *grid.Uint8, threshold uint8) (*grid.Bool, error) {
	if o == nil {
		return nil, ErrNilGrid
	}
	h, w := o.Shape()
	m, err := grid.New[bool](h, w)
	if err != nil {
		return nil, err
	}
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			v := o.At(i, j)
			m.Set(i, j, v != 0 && v >= threshold)
		}
	}
	return m, nil
}

// MaskAccumulation thresholds a flow-accumulation field into a channel
// mask: true where the accumulated count is at least threshold.
// Returns grid.ErrDenseRank unless acc is 2-dimensional.
func MaskAccumulation(acc *sparse.DenseArray, threshold float64) (*grid.Bool, error) {
	if acc == nil {
		return nil, ErrNilGrid
	}
	if len(acc.Shape) != 2 {
		return nil, grid.ErrDenseRank
	}
	h, w := acc.Shape[0], acc.Shape[1]
	m, err := grid.New[bool](h, w)
	if err != nil {
		return nil, err
	}
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			m.Set(i, j, acc.Get(i, j) >= threshold)
		}
	}
	return m, nil
}
