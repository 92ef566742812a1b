// Package fill removes depressions from digital elevation models using
// the priority-flood method of Wang & Liu (2006).
//
// The flood starts from every cell on the grid edge or adjacent to
// nodata, and grows inward through a min-priority queue ordered by
// elevation. Each cell is raised to the minimum elevation that still
// admits a descending path to a boundary outlet, where "descending"
// means a per-step drop of at least minslope × step distance in the
// taken direction. With minslope = 0 depressions become flats; a small
// positive minslope (a tangent, e.g. tan of 0.01°) forces drainage
// through them.
//
// Determinism: queue entries carry a monotonically increasing insertion
// sequence, so equal elevations dequeue FIFO and two runs over the same
// input produce bitwise-identical output.
//
// Filling is inherently sequential — the queue encodes a global
// ordering — and always runs on a single worker.
//
// Reference: Wang, L. & H. Liu (2006), An efficient method for
// identifying and filling surface depressions in digital elevation
// models. Int. J. of Geographical Information Science, 20(2): 193-213.
//
// Complexity: O(H×W log(H×W)) time, O(H×W) memory.
package fill
