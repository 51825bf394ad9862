// Package rotate enumerates the 24 proper rotations of the cube and applies
// each as an indexed coordinate remap over a voxel.Grid, rather than a
// per-cell 3x3 matrix multiply.
//
// Key properties:
//
//   - Every rotation preserves occupancy count.
//   - Apply(g, r) for all r in All24 is the complete rotation class of g.
//   - The yield order is fixed but carries no meaning; only the resulting
//     set of 24 grids (with multiplicity) matters to callers.
package rotate
