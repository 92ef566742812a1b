// Package accum computes D8 flow accumulation: for every cell, the
// number of cells draining through it, itself included.
//
// The sweep is topological: cells with no inflowing neighbor enter a
// queue first, and each resolved cell pushes its count downstream,
// releasing the receiver once all of its inflows have arrived. Cells
// with no flow code (nodata) accumulate nothing and block nothing.
//
// The result comes back as a float64 sparse.DenseArray, ready for
// thresholding into a channel mask (see channels.MaskAccumulation) or
// for reuse in gridded-field models.
//
// Complexity: O(H×W) time and memory.
package accum
