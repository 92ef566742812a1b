package watershed

import (
	"sort"

	"github.com/tramebleue/fct-terrain-analysis/grid"
)

// Delineate paints the basin containing an arbitrary seed cell. It
// walks downstream from (i0, j0) along D8 until it reaches a cell with
// no flow code, the grid edge, or a cell already assigned, marking the
// trail with -1; it then floods the upslope basin of the last walked
// cell with id. Returns the number of cells painted.
//
// The trail marker never survives: every trail cell drains through the
// walk's end cell, so the flood repaints it with id.
func Delineate(f *grid.Uint8, i0, j0 int, id int32, b *grid.Int32, opts ...Option) (uint64, error) {
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

	si, sj := i0, j0
	i, j := i0, j0
	for grid.InBounds(h, w, i, j) && b.At(i, j) == 0 {
		d, ok := grid.Decode(f.At(i, j))
		if !ok {
			break
		}
		b.Set(i, j, -1)
		si, sj = i, j
		di, dj := d.Offset()
		i += di
		j += dj
	}

	return flood(f, si, sj, id, b, o)
}

// All labels every basin of the flow grid in a single pass and returns
// the number of basins found. An outlet is a cell whose flow leaves the
// grid or enters a cell with no flow code; outlets are flooded from
// lowest to highest elevation (row-major among equal elevations), so
// basin ids are assigned deterministically starting at 1.
//
// b must be zero-initialized; z supplies the outlet elevations. Its
// nodata cells never found a basin, but one that drains into a basin
// is labelled with that basin's id.
func All(z *grid.Float32, f *grid.Uint8, nodata float32, b *grid.Int32, opts ...Option) (int32, error) {
	if z == nil || f == nil || b == nil {
		return 0, ErrNilGrid
	}
	if !grid.SameShape(f, b) || !grid.SameShape(z, f) {
		return 0, ErrShape
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	h, w := f.Shape()

	// Collect outlet cells in row-major order.
	var outlets []grid.Cell
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if z.At(i, j) == nodata {
				continue
			}
			d, ok := grid.Decode(f.At(i, j))
			if !ok {
				continue
			}
			di, dj := d.Offset()
			ni, nj := i+di, j+dj
			if !grid.InBounds(h, w, ni, nj) || f.At(ni, nj) == 0 {
				outlets = append(outlets, grid.Cell{I: i, J: j})
			}
		}
	}

	// Lowest outlet founds basin 1; stable sort keeps row-major order
	// among equal elevations.
	sort.SliceStable(outlets, func(p, q int) bool {
		return z.At(outlets[p].I, outlets[p].J) < z.At(outlets[q].I, outlets[q].J)
	})

	var id int32
	for _, c := range outlets {
		if b.At(c.I, c.J) != 0 {
			continue
		}
		id++
		if _, err := flood(f, c.I, c.J, id, b, o); err != nil {
			return id, err
		}
	}
	return id, nil
}
