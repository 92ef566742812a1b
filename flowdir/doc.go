// Package flowdir computes D8 flow direction: for every cell of a DEM,
// the direction of the neighbor with the steepest downward gradient.
//
// Directions are numbered clockwise starting from North (N = 0) and
// encoded as powers of two in the output (N = 2^0 = 1):
//
//	NW=128 |   N=1   |  NE=2
//	-------------------------
//	 W=64  |   i,j   |  E=4
//	-------------------------
//	SW=32  |  S=16   |  SE=8
//
// The elevation input carries a one-cell halo on every side, so a
// (H+2)×(W+2) elevation grid produces an H×W direction grid. Pad with
// the nodata value when no real halo data exists; padding is the
// caller's responsibility.
//
// The classifier minimizes (zN − z) / d[k] over the 8 neighbors, where
// d[k] is the 2-D step distance for the cell resolution. Ties choose
// the lowest direction index in the clockwise enumeration; neighbors at
// nodata are skipped, and a cell with no defined neighbor gets code 0,
// as does a nodata cell itself. Flat cells (minimum gradient ≥ 0) still
// receive a direction — sink filling is expected to have removed true
// flat regions beforehand.
//
// The operation is embarrassingly parallel: WithWorkers splits the
// output into disjoint row bands with one-cell read overlap. Output is
// byte-identical regardless of worker count.
//
// Complexity: O(H×W) time, O(1) extra memory.
package flowdir
