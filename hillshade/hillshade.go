package hillshade

import (
	"math"
	"sync"

	"github.com/arl/math32"

	"github.com/tramebleue/fct-terrain-analysis/grid"
)

// Compute shades every output cell from the padded (H+2)×(W+2)
// elevation grid z. azimuth and altitude are in degrees, azimuth
// clockwise from north; zfactor scales elevations before the gradient.
// Output values lie in [0, 1]; nodata cells propagate unchanged.
func Compute(z *grid.Float32, rx, ry float64, nodata float32, azimuth, altitude, zfactor float64, out *grid.Float32, opts ...Option) error {
	if z == nil || out == nil {
		return ErrNilGrid
	}
	h, w := out.Shape()
	if zh, zw := z.Shape(); zh != h+2 || zw != w+2 {
		return ErrPadding
	}
	if !validPositive(rx) || !validPositive(ry) {
		return ErrResolution
	}
	if !validPositive(zfactor) {
		return ErrZFactor
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// Unit vector pointing at the sun, in (east, north, up) axes.
	az := azimuth * math.Pi / 180
	alt := altitude * math.Pi / 180
	sun := lightVector{
		x: float32(math.Cos(alt) * math.Sin(az)),
		y: float32(math.Cos(alt) * math.Cos(az)),
		z: float32(math.Sin(alt)),
	}
	// Horn kernel denominators, elevation scale folded in.
	sc := shadeConfig{
		sun:    sun,
		denomX: float32(8 * rx / zfactor),
		denomY: float32(8 * ry / zfactor),
	}

	workers := o.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > h {
		workers = h
	}
	if workers == 1 {
		return shadeRows(z, nodata, out, sc, 0, h, o)
	}

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
			errs[wk] = shadeRows(z, nodata, out, sc, lo, hi, o)
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

type lightVector struct{ x, y, z float32 }

type shadeConfig struct {
	sun            lightVector
	denomX, denomY float32
}

// shadeRows shades output rows [lo, hi); cancellation is observed once
// per row.
func shadeRows(z *grid.Float32, nodata float32, out *grid.Float32, sc shadeConfig, lo, hi int, o Options) error {
	_, w := out.Shape()
	for i := lo; i < hi; i++ {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}
		for j := 0; j < w; j++ {
			zc := z.At(i+1, j+1)
			if zc == nodata {
				out.Set(i, j, nodata)
				continue
			}
			// 3×3 neighborhood, nodata replaced by the center value.
			var nb [grid.NumDirections]float32
			for k := 0; k < grid.NumDirections; k++ {
				zn := z.At(i+1+grid.CI[k], j+1+grid.CJ[k])
				if zn == nodata {
					zn = zc
				}
				nb[k] = zn
			}
			// Horn gradient: gx east-positive, gy north-positive
			// (row index grows southward).
			gx := (nb[grid.NorthEast] + 2*nb[grid.East] + nb[grid.SouthEast] -
				nb[grid.NorthWest] - 2*nb[grid.West] - nb[grid.SouthWest]) / sc.denomX
			gy := (nb[grid.NorthWest] + 2*nb[grid.North] + nb[grid.NorthEast] -
				nb[grid.SouthWest] - 2*nb[grid.South] - nb[grid.SouthEast]) / sc.denomY

			shade := (-gx*sc.sun.x - gy*sc.sun.y + sc.sun.z) /
				math32.Sqrt(gx*gx+gy*gy+1)
			if shade < 0 {
				shade = 0
			}
			out.Set(i, j, shade)
		}
	}
	return nil
}

func validPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
