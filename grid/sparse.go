package grid

import "github.com/ctessum/sparse"

// Interop with github.com/ctessum/sparse, whose float64 DenseArray is
// the common currency of gridded-field models. Conversions copy; the
// two representations never share memory.

// FromDense copies a 2-D DenseArray into a Float32 grid.
// Returns ErrDenseRank unless the array has exactly two dimensions.
func FromDense(d *sparse.DenseArray) (*Float32, error) {
	if len(d.Shape) != 2 {
		return nil, ErrDenseRank
	}
	g, err := New[float32](d.Shape[0], d.Shape[1])
	if err != nil {
		return nil, err
	}
	for i := 0; i < d.Shape[0]; i++ {
		for j := 0; j < d.Shape[1]; j++ {
			g.Set(i, j, float32(d.Get(i, j)))
		}
	}
	return g, nil
}

// ToDense copies a Float32 grid into a freshly allocated DenseArray.
func ToDense(g *Float32) *sparse.DenseArray {
	h, w := g.Shape()
	d := sparse.ZerosDense(h, w)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			d.Set(float64(g.At(i, j)), i, j)
		}
	}
	return d
}

// Int32ToDense copies an Int32 grid (e.g. basin identifiers) into a
// DenseArray for downstream float64 consumers.
func Int32ToDense(g *Int32) *sparse.DenseArray {
	h, w := g.Shape()
	d := sparse.ZerosDense(h, w)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			d.Set(float64(g.At(i, j)), i, j)
		}
	}
	return d
}
