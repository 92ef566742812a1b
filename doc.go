// Package terrain (fct-terrain-analysis) derives hydrological structure
// from digital elevation models held as dense in-memory grids.
//
// What it computes:
//
//   - Sink filling (Wang & Liu priority flood) with a minimum-slope floor
//   - D8 flow direction (steepest descent over the 8-neighborhood)
//   - Upslope watershed delineation from one or many outlet cells
//   - Horton–Strahler stream ordering
//   - Channel-network extraction (outlets, confluences, polyline segments)
//   - D8 flow accumulation and analytical hillshading
//
// The module is a pure library: every entry point is a synchronous,
// CPU-bound function over caller-owned grids. There is no raster or
// vector I/O, no coordinate reference system handling, and no CLI —
// inputs arrive as grids already in memory and results come back as
// grids or lists of grid coordinates.
//
// Everything is organized under per-algorithm subpackages:
//
//	grid/      — shapes, D8 direction tables, distance kernels, typed grids
//	fill/      — depression filling (Wang & Liu 2006)
//	flowdir/   — D8 flow direction classifier
//	watershed/ — upslope basin delineation
//	strahler/  — stream ordering
//	channels/  — channel-network extraction and mask helpers
//	accum/     — D8 flow accumulation
//	hillshade/ — analytical hillshading
//
// All algorithms are deterministic: identical inputs produce
// byte-identical outputs regardless of host or worker count.
//
//	go get github.com/tramebleue/fct-terrain-analysis
package terrain
