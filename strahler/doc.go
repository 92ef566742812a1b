// Package strahler computes Horton–Strahler stream order over a D8
// flow grid.
//
// Every non-nodata source cell has order 1. Where two or more incoming
// streams of equal order s meet, the downstream order becomes s+1;
// otherwise the downstream order is the maximum of the incoming orders.
//
// The reduction processes cells from highest to lowest elevation so
// each cell is finalized before the cell it drains into. The ordering
// is a stable ascending sort of the elevations with ties kept in
// row-major order, which makes the output deterministic; the reduction
// itself is sequential and runs on one worker.
//
// Complexity: O(H×W log(H×W)) time for the sort, O(H×W) memory for the
// permutation and the confluence counters.
package strahler
