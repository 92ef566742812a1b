package watershed

import (
	"github.com/tramebleue/fct-terrain-analysis/grid"
)

// Upslope paints id over every cell whose D8 descent path reaches the
// outlet cell (i0, j0), and returns the number of cells painted. Cells
// holding 0 or the -1 trail marker are claimed; upslope cells carrying
// another basin id are left alone, while the seed itself is painted
// whatever it holds. A seed with flow code 0 (nodata) paints nothing.
func Upslope(f *grid.Uint8, i0, j0 int, id int32, b *grid.Int32, opts ...Option) (uint64, error) {
	if f == nil || b == nil {
		return 0, ErrNilGrid
	}
	if !grid.SameShape(f, b) {
		return 0, ErrShape
	}
	h, w := f.Shape()
	if !grid.InBounds(h, w, i0, j0) {
		return 0, ErrSeedOutOfGrid
	}
	if id <= 0 {
		return 0, ErrBasinID
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return flood(f, i0, j0, id, b, o)
}

// flood runs the reverse-D8 traversal without re-validating arguments.
func flood(f *grid.Uint8, i0, j0 int, id int32, b *grid.Int32, o Options) (uint64, error) {
	h, w := f.Shape()

	stack := make([]grid.Cell, 1, 64)
	stack[0] = grid.Cell{I: i0, J: j0}
	var count, pops uint64

	for len(stack) > 0 {
		if pops%cancelInterval == 0 {
			select {
			case <-o.Ctx.Done():
				return count, o.Ctx.Err()
			default:
			}
		}
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		pops++

		if f.At(c.I, c.J) == 0 {
			continue
		}
		b.Set(c.I, c.J, id)
		count++

		for k := 0; k < grid.NumDirections; k++ {
			ni := c.I + grid.CI[k]
			nj := c.J + grid.CJ[k]
			if !grid.InBounds(h, w, ni, nj) {
				continue
			}
			if f.At(ni, nj) != grid.Upward[k] {
				continue
			}
			if v := b.At(ni, nj); v == 0 || v == -1 {
				stack = append(stack, grid.Cell{I: ni, J: nj})
			}
		}
	}
	return count, nil
}
