// Package voxel represents a polycube as a tight 3-D occupancy grid.
//
// What:
//
//   - Grid wraps a rectangular box of unit cells with a boolean occupancy bit.
//   - Trim finds the tightest bounding box containing all occupied cells.
//   - Pad extends the box on every side, for one-cube growth (see package expand).
//   - Connected/Valid check the two invariants a well-formed shape must satisfy.
//
// Why:
//
//   - The Expander needs Pad to consider positions outside the current box.
//   - The Canonicalizer needs Trim so every rotation re-tightens to the
//     same kind of box before packing, which is what makes Pack injective.
//
// Complexity:
//
//   - Trim, Pad, Connected, Valid: O(dx*dy*dz).
//
// Errors:
//
//   - ErrEmptyGrid: a requested grid has a non-positive dimension.
//   - ErrNoCells: Trim was called on a grid with no occupied cells.
package voxel
