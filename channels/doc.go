// Package channels extracts a channel network — outlets, confluences
// and polyline segments — from a D8 flow grid and a boolean channel
// mask.
//
// On channel cells:
//
//   - a source has no channel neighbor flowing into it;
//   - a confluence has two or more;
//   - an outlet has no flow code, or drains to a non-channel cell or
//     off the grid.
//
// Segments are traced DOWNSTREAM: every source and every confluence
// opens a polyline, which follows the D8 flow cell by cell and closes
// at the next confluence or outlet, endpoints inclusive. Starts are
// visited in row-major order, so outlets, confluences and segments come
// back in a deterministic order. Segments shorter than the minimum
// cell length are discarded; the confluence/outlet status of their
// endpoints is unaffected.
//
// Mask and MaskAccumulation build channel masks by thresholding a
// Strahler-order grid or a flow-accumulation field.
//
// Complexity: O(H×W) time and memory.
package channels
