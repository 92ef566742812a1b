package flowdir

import (
	"math"
	"sync"

	"github.com/tramebleue/fct-terrain-analysis/grid"
)

// Compute writes the D8 flow direction of every output cell into f.
// z is the padded (H+2)×(W+2) elevation grid for an H×W output; nodata
// marks undefined elevations and maps to code 0 in f.
//
// Determinism: ties between equal gradients resolve to the lowest
// direction index, and the result does not depend on Options.Workers.
func Compute(z *grid.Float32, rx, ry float64, nodata float32, f *grid.Uint8, opts ...Option) error {
	if z == nil || f == nil {
		return ErrNilGrid
	}
	h, w := f.Shape()
	if zh, zw := z.Shape(); zh != h+2 || zw != w+2 {
		return ErrPadding
	}
	if !validResolution(rx) || !validResolution(ry) {
		return ErrResolution
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	dist := grid.StepDistances(rx, ry)

	workers := o.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > h {
		workers = h
	}
	if workers == 1 {
		return classifyRows(z, nodata, f, &dist, 0, h, o)
	}

	// Fan out over disjoint row bands; the one-cell halo makes reads
	// overlap but never writes.
	var wg sync.WaitGroup
	errs := make([]error, workers)
	band := (h + workers - 1) / workers
	for wk := 0; wk < workers; wk++ {
		lo := wk * band
		hi := lo + band
		if hi > h {
			hi = h
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(wk, lo, hi int) {
			defer wg.Done()
			errs[wk] = classifyRows(z, nodata, f, &dist, lo, hi, o)
		}(wk, lo, hi)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// classifyRows fills output rows [lo, hi). Cancellation is observed
// once per row.
func classifyRows(z *grid.Float32, nodata float32, f *grid.Uint8, dist *[grid.NumDirections]float64, lo, hi int, o Options) error {
	_, w := f.Shape()
	for i := lo; i < hi; i++ {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}
		for j := 0; j < w; j++ {
			zc := z.At(i+1, j+1)
			if zc == nodata {
				f.Set(i, j, 0)
				continue
			}
			var (
				best  grid.Direction
				bestG float64
				found bool
			)
			for k := 0; k < grid.NumDirections; k++ {
				zn := z.At(i+1+grid.CI[k], j+1+grid.CJ[k])
				if zn == nodata {
					continue
				}
				// Single-precision drop, double-precision distance.
				g := float64(zn-zc) / dist[k]
				if !found || g < bestG {
					found = true
					bestG = g
					best = grid.Direction(k)
				}
			}
			if !found {
				f.Set(i, j, 0)
				continue
			}
			f.Set(i, j, best.Code())
		}
	}
	return nil
}

func validResolution(r float64) bool {
	return r > 0 && !math.IsInf(r, 1)
}
