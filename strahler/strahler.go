package strahler

import (
	"sort"

	"github.com/tramebleue/fct-terrain-analysis/grid"
)

// Order computes the Horton–Strahler order of every cell into o:
// 0 for nodata cells, 1 for sources, s+1 below a confluence of two or
// more order-s streams, and the running maximum elsewhere.
func Order(z *grid.Float32, f *grid.Uint8, nodata float32, o *grid.Uint8, opts ...Option) error {
	if z == nil || f == nil || o == nil {
		return ErrNilGrid
	}
	if !grid.SameShape(z, f) || !grid.SameShape(z, o) {
		return ErrShape
	}

	op := DefaultOptions()
	for _, fn := range opts {
		fn(&op)
	}

	h, w := z.Shape()
	n := h * w

	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if z.At(i, j) == nodata {
				o.Set(i, j, 0)
			} else {
				o.Set(i, j, 1)
			}
		}
	}

	// Stable ascending argsort of the elevations; ties keep row-major
	// order so the reduction is reproducible.
	idx := make([]int32, n)
	for k := range idx {
		idx[k] = int32(k)
	}
	cells := z.Cells()
	sort.SliceStable(idx, func(a, b int) bool {
		return cells[idx[a]] < cells[idx[b]]
	})

	// count[x] tracks how many equal-order streams enter cell x.
	count := make([]uint8, n)

	// Top-down: highest elevation first, so every cell is final before
	// the cell it drains into.
	for k := n - 1; k >= 0; k-- {
		if k%w == 0 {
			select {
			case <-op.Ctx.Done():
				return op.Ctx.Err()
			default:
			}
		}

		x := int(idx[k])
		i, j := x/w, x%w

		if cells[x] == nodata {
			continue
		}
		if count[x] > 1 {
			o.Set(i, j, o.At(i, j)+1)
		}

		d, ok := grid.Decode(f.At(i, j))
		if !ok {
			continue
		}
		di, dj := d.Offset()
		ix, jx := i+di, j+dj
		if !grid.InBounds(h, w, ix, jx) {
			continue
		}
		switch src, dst := o.At(i, j), o.At(ix, jx); {
		case src > dst:
			o.Set(ix, jx, src)
			count[ix*w+jx] = 1
		case src == dst:
			count[ix*w+jx]++
		}
	}
	return nil
}
