package fill

import (
	"math"

	"github.com/arl/math32"

	"github.com/tramebleue/fct-terrain-analysis/grid"
)

// Sinks fills the depressions of z into out, leaving z untouched.
// Every non-nodata cell of out ends at the minimum elevation admitting
// a descending path to a boundary outlet with per-step drop of at least
// minslope × step distance. A grid composed entirely of nodata copies
// through unchanged.
//
// out must be a distinct grid of the same shape as z; pass z.Clone()'s
// target or any caller-owned allocation.
func Sinks(z *grid.Float32, rx, ry float64, nodata, minslope float32, out *grid.Float32, opts ...Option) error {
	if z == nil || out == nil {
		return ErrNilGrid
	}
	if !grid.SameShape(z, out) {
		return ErrShape
	}
	if !validResolution(rx) || !validResolution(ry) {
		return ErrResolution
	}
	if !(minslope >= 0) || float64(minslope) > math.MaxFloat32 {
		return ErrMinslope
	}
	if nodata != nodata || float64(nodata) > math.MaxFloat32 || float64(nodata) < -math.MaxFloat32 {
		return ErrNoData
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	h, w := z.Shape()

	// Minimum elevation drop per search direction: distances in double
	// precision, the resulting floor increment in single precision.
	step := grid.StepDistances(rx, ry)
	var mindiff [grid.NumDirections]float32
	for k := range step {
		mindiff[k] = float32(float64(minslope) * step[k])
	}

	// nodata doubles as the "not yet assigned" marker in out.
	out.Fill(nodata)

	queue := make(cellHeap, 0, 2*(h+w))
	var seq uint32

	// Seed the queue with boundary cells: non-nodata cells having at
	// least one out-of-grid or nodata neighbor. Their elevations are
	// final.
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			zc := z.At(i, j)
			if zc == nodata {
				continue
			}
			for k := 0; k < grid.NumDirections; k++ {
				ni := i + grid.CI[k]
				nj := j + grid.CJ[k]
				if !grid.InBounds(h, w, ni, nj) || z.At(ni, nj) == nodata {
					out.Set(i, j, zc)
					queue.push(cell{z: zc, seq: seq, i: int32(i), j: int32(j)})
					seq++
					break
				}
			}
		}
	}

	// Flood inward from bottom to top. Popping in (z, seq) order
	// guarantees a popped cell's elevation is final and will never be
	// lowered.
	var pops uint64
	for len(queue) > 0 {
		if pops%cancelInterval == 0 {
			select {
			case <-o.Ctx.Done():
				return o.Ctx.Err()
			default:
			}
		}
		c := queue.pop()
		pops++
		zc := out.At(int(c.i), int(c.j))
		for k := 0; k < grid.NumDirections; k++ {
			ni := int(c.i) + grid.CI[k]
			nj := int(c.j) + grid.CJ[k]
			if !grid.InBounds(h, w, ni, nj) {
				continue
			}
			zn := z.At(ni, nj)
			if zn == nodata || out.At(ni, nj) != nodata {
				continue
			}
			zn = math32.Max(zn, zc+mindiff[k])
			out.Set(ni, nj, zn)
			queue.push(cell{z: zn, seq: seq, i: int32(ni), j: int32(nj)})
			seq++
		}
	}

	return nil
}

func validResolution(r float64) bool {
	return r > 0 && !math.IsInf(r, 1)
}
