// Package hillshade computes analytical hillshading: the illumination
// of the terrain surface by a directional light source.
//
// The sun position is given as an azimuth (degrees clockwise from
// north) and an altitude above the horizon (degrees); zfactor scales
// elevations before the gradient is taken, exaggerating relief. The
// per-cell gradient comes from a Horn 3×3 kernel, with nodata
// neighbors replaced by the center elevation. The result is the dot
// product of the surface normal with the light vector, clamped to
// [0, 1], with nodata propagated.
//
// Like the flow-direction classifier, the elevation input carries a
// one-cell halo: a (H+2)×(W+2) grid shades an H×W output. The
// operation is embarrassingly parallel over cells and row-band
// parallel via WithWorkers.
package hillshade
