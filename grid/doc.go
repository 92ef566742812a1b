// Package grid provides the primitives every terrain algorithm in this
// module is built on: typed dense row-major grids, the D8 direction
// model, and the 2-D distance kernels derived from cell resolution.
//
// # Grids
//
// A Grid[T] is a caller-owned dense 2-D array stored row-major in a flat
// slice. The four instantiations used across the module are aliased as
// Float32 (elevations), Uint8 (flow direction codes, Strahler orders),
// Int32 (basin identifiers) and Bool (channel masks). Grids are plain
// containers: algorithms borrow read-only views of inputs and a writable
// view of the output, and retain no references past the call.
//
// # D8 direction model
//
// The eight directions are enumerated clockwise starting from North:
//
//	NW=128 |   N=1   |  NE=2
//	-------------------------
//	 W=64  |   i,j   |  E=4
//	-------------------------
//	SW=32  |  S=16   |  SE=8
//
// Direction k moves by (CI[k], CJ[k]) and is encoded in a flow grid as
// the single bit 1<<k; code 0 means no flow / nodata. Upward[k] is the
// code a neighbor at offset k must carry to flow into the center cell.
//
// # Distances
//
// Distance2D returns the 3×3 Euclidean distance kernel for a given cell
// resolution; StepDistances the per-direction step lengths. Distances
// are computed and kept in double precision, while elevation arithmetic
// throughout the module stays in single precision.
package grid
