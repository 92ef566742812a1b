// Package watershed delineates drainage basins over a D8 flow grid.
//
// Upslope paints, with a caller-chosen identifier, every cell whose
// descent path reaches a given outlet cell. Delineate first walks
// downstream from an arbitrary seed to find that outlet, then floods
// its upslope basin. All labels every basin of the grid in one pass,
// ordering basin identifiers by outlet elevation from lowest to
// highest.
//
// The traversal is an explicit-stack reverse walk of the flow graph:
// a neighbor is upslope when its flow code equals the Upward table
// entry for the search direction. Cells marked 0 (unassigned) or -1
// (the temporary descent-trail marker used by Delineate) are claimed;
// cells already carrying a positive basin id are never reached by the
// reverse walk, so successive calls with distinct identifiers and
// unlabelled seeds partition the grid. The seed cell itself is painted
// whatever it holds. After
// a successful call no -1 marker remains.
//
// The reductions are sequential by nature and run on one worker;
// cancellation is observed once per 2^16 stack pops.
//
// Complexity: O(N) time and O(max antichain) stack memory per basin of
// N cells.
package watershed
