package channels

import (
	"github.com/tramebleue/fct-terrain-analysis/grid"
)

// Extract walks the channel mask along the D8 flow and returns the
// network of outlets, confluences and polyline segments. Segments of
// cell length below minLength are dropped; their endpoints keep their
// outlet/confluence status.
func Extract(f *grid.Uint8, c *grid.Bool, minLength int, opts ...Option) (*Network, error) {
	if f == nil || c == nil {
		return nil, ErrNilGrid
	}
	if !grid.SameShape(f, c) {
		return nil, ErrShape
	}
	if minLength < 1 {
		return nil, ErrMinLength
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	h, w := f.Shape()

	// Count, for every channel cell, the channel neighbors flowing
	// into it. 0 marks a source, ≥2 a confluence.
	inflows := make([]uint8, h*w)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if !c.At(i, j) {
				continue
			}
			for k := 0; k < grid.NumDirections; k++ {
				ni := i + grid.CI[k]
				nj := j + grid.CJ[k]
				if grid.InBounds(h, w, ni, nj) && c.At(ni, nj) && f.At(ni, nj) == grid.Upward[k] {
					inflows[i*w+j]++
				}
			}
		}
	}

	// outlet reports whether a channel cell drains to a non-channel
	// cell or out of the grid.
	outlet := func(i, j int) bool {
		d, ok := grid.Decode(f.At(i, j))
		if !ok {
			return true
		}
		di, dj := d.Offset()
		ni, nj := i+di, j+dj
		return !grid.InBounds(h, w, ni, nj) || !c.At(ni, nj)
	}

	net := &Network{}
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if !c.At(i, j) {
				continue
			}
			if outlet(i, j) {
				net.Outlets = append(net.Outlets, grid.Cell{I: i, J: j})
			}
			if inflows[i*w+j] >= 2 {
				net.Confluences = append(net.Confluences, grid.Cell{I: i, J: j})
			}
		}
	}

	// Trace a segment downstream from every source and confluence.
	maxSteps := h * w
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			x := i*w + j
			if !c.At(i, j) || (inflows[x] != 0 && inflows[x] < 2) {
				continue
			}
			select {
			case <-o.Ctx.Done():
				return nil, o.Ctx.Err()
			default:
			}
			seg, err := trace(f, c, inflows, i, j, maxSteps, outlet)
			if err != nil {
				return nil, err
			}
			if len(seg) >= minLength {
				net.Segments = append(net.Segments, seg)
			}
		}
	}
	return net, nil
}

// trace follows the flow downstream from a segment start until the
// next confluence or outlet, endpoints inclusive.
func trace(f *grid.Uint8, c *grid.Bool, inflows []uint8, i, j, maxSteps int, outlet func(int, int) bool) ([]grid.Cell, error) {
	_, w := f.Shape()
	seg := []grid.Cell{{I: i, J: j}}
	for steps := 0; ; steps++ {
		if steps > maxSteps {
			return nil, ErrFlowLoop
		}
		if steps > 0 && inflows[i*w+j] >= 2 {
			break // reached the next confluence
		}
		if outlet(i, j) {
			break
		}
		d, _ := grid.Decode(f.At(i, j))
		di, dj := d.Offset()
		i += di
		j += dj
		seg = append(seg, grid.Cell{I: i, J: j})
	}
	return seg, nil
}
