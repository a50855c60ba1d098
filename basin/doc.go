// Package basin discovers basins on a heightmap: maximal regions of cells
// connected by orthogonal moves and bounded by wall cells (height 9 by
// default, or anything at or above a custom wall) or the grid edge.
//
// The flood fill uses an explicit stack and a visited set keyed by
// coordinate, so its auxiliary memory is bounded by the basin size and
// does not depend on call-stack depth.
//
// Complexity:
//
//   - From:          O(B), Memory: O(B)   (B = cells in the basin).
//   - FromLowPoints: O(W×H + ΣB).
package basin
