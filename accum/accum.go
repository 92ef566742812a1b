package accum

import (
	"github.com/ctessum/sparse"

	"github.com/tramebleue/fct-terrain-analysis/grid"
)

// D8 returns the flow-accumulation field of f: acc[i,j] counts the
// cells whose descent path passes through (i, j), including the cell
// itself. Cells with flow code 0 stay at 0.
func D8(f *grid.Uint8, opts ...Option) (*sparse.DenseArray, error) {
	if f == nil {
		return nil, ErrNilGrid
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	h, w := f.Shape()
	acc := sparse.ZerosDense(h, w)

	// Count inflowing neighbors per cell; cells with none resolve
	// immediately.
	inflows := make([]uint8, h*w)
	var queue []grid.Cell
	var flowing int
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if f.At(i, j) == 0 {
				continue
			}
			flowing++
			acc.Set(1, i, j)
			for k := 0; k < grid.NumDirections; k++ {
				ni := i + grid.CI[k]
				nj := j + grid.CJ[k]
				if grid.InBounds(h, w, ni, nj) && f.At(ni, nj) == grid.Upward[k] {
					inflows[i*w+j]++
				}
			}
			if inflows[i*w+j] == 0 {
				queue = append(queue, grid.Cell{I: i, J: j})
			}
		}
	}

	// Push counts downstream; a receiver joins the queue when its last
	// inflow arrives.
	var pops int
	for head := 0; head < len(queue); head++ {
		if pops%cancelInterval == 0 {
			select {
			case <-o.Ctx.Done():
				return nil, o.Ctx.Err()
			default:
			}
		}
		c := queue[head]
		pops++

		d, ok := grid.Decode(f.At(c.I, c.J))
		if !ok {
			continue
		}
		di, dj := d.Offset()
		ni, nj := c.I+di, c.J+dj
		if !grid.InBounds(h, w, ni, nj) || f.At(ni, nj) == 0 {
			continue
		}
		acc.Set(acc.Get(ni, nj)+acc.Get(c.I, c.J), ni, nj)
		inflows[ni*w+nj]--
		if inflows[ni*w+nj] == 0 {
			queue = append(queue, grid.Cell{I: ni, J: nj})
		}
	}

	if pops != flowing {
		return nil, ErrFlowLoop
	}
	return acc, nil
}
