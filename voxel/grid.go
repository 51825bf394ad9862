// Package voxel — trim/pad/iteration operations on Grid.
//
// Trim and Pad together let the Expander grow a shape by one layer and the
// Canonicalizer re-tighten a rotated shape back to a canonical bounding box.
package voxel

// neighborOffsets6 are the six face-adjacent unit steps, in the fixed order
// used by Connected and by the Expander: +Y, +X, +Z, -Y, -X, -Z. This
// order matches the polygraph package's face-direction encoding so callers
// can zip offsets with face codes positionally.
var neighborOffsets6 = [6]Coord{
	{0, 1, 0},
	{1, 0, 0},
	{0, 0, 1},
	{0, -1, 0},
	{-1, 0, 0},
	{0, 0, -1},
}

// NeighborOffsets6 returns the six face-adjacency offsets in the fixed
// +Y,+X,+Z,-Y,-X,-Z order shared by the Expander and the Graph Sorter's
// face-code table.
func NeighborOffsets6() [6]Coord {
	return neighborOffsets6
}

// Coords returns the coordinates of every occupied cell, in the grid's
// fixed iteration order: z outermost, then y, then x innermost.
// Complexity: O(dx*dy*dz).
func (g Grid) Coords() []Coord {
	out := make([]Coord, 0, g.Count())
	for z := 0; z < g.Dims[2]; z++ {
		for y := 0; y < g.Dims[1]; y++ {
			for x := 0; x < g.Dims[0]; x++ {
				if g.Cells[g.Index(x, y, z)] {
					out = append(out, Coord{x, y, z})
				}
			}
		}
	}

	return out
}

// slabOccupied reports whether the slab at fixed value v along axis holds
// at least one occupied cell (used by Trim to find the tight bounding box).
// axis: 0=x, 1=y, 2=z.
func (g Grid) slabOccupied(axis, v int) bool {
	switch axis {
	case 0:
		for z := 0; z < g.Dims[2]; z++ {
			for y := 0; y < g.Dims[1]; y++ {
				if g.Cells[g.Index(v, y, z)] {
					return true
				}
			}
		}
	case 1:
		for z := 0; z < g.Dims[2]; z++ {
			for x := 0; x < g.Dims[0]; x++ {
				if g.Cells[g.Index(x, v, z)] {
					return true
				}
			}
		}
	default:
		for y := 0; y < g.Dims[1]; y++ {
			for x := 0; x < g.Dims[0]; x++ {
				if g.Cells[g.Index(x, y, v)] {
					return true
				}
			}
		}
	}

	return false
}

// Trim removes empty leading/trailing slabs on each of the three axes,
// returning the tightest bounding box that still contains every occupied
// cell. Idempotent; preserves connectivity and occupied-cell count.
// Returns ErrNoCells if g has no occupied cells (there is no tight box).
// Complexity: O(dx*dy*dz).
func (g Grid) Trim() (Grid, error) {
	if g.Count() == 0 {
		return Grid{}, ErrNoCells
	}

	lo := [3]int{0, 0, 0}
	hi := [3]int{g.Dims[0] - 1, g.Dims[1] - 1, g.Dims[2] - 1}
	for axis := 0; axis < 3; axis++ {
		for lo[axis] <= hi[axis] && !g.slabOccupied(axis, lo[axis]) {
			lo[axis]++
		}
		for hi[axis] >= lo[axis] && !g.slabOccupied(axis, hi[axis]) {
			hi[axis]--
		}
	}

	dx, dy, dz := hi[0]-lo[0]+1, hi[1]-lo[1]+1, hi[2]-lo[2]+1
	out, err := NewGrid(dx, dy, dz)
	if err != nil {
		return Grid{}, err
	}
	for z := lo[2]; z <= hi[2]; z++ {
		for y := lo[1]; y <= hi[1]; y++ {
			for x := lo[0]; x <= hi[0]; x++ {
				if g.Cells[g.Index(x, y, z)] {
					out.Cells[out.Index(x-lo[0], y-lo[1], z-lo[2])] = true
				}
			}
		}
	}

	return out, nil
}

// Pad extends every axis by delta on both sides, filling new cells with
// false (unoccupied). delta must be >= 0.
// Complexity: O((dx+2*delta)*(dy+2*delta)*(dz+2*delta)).
func (g Grid) Pad(delta int) (Grid, error) {
	out, err := NewGrid(g.Dims[0]+2*delta, g.Dims[1]+2*delta, g.Dims[2]+2*delta)
	if err != nil {
		return Grid{}, err
	}
	for _, c := range g.Coords() {
		out.Cells[out.Index(c.X+delta, c.Y+delta, c.Z+delta)] = true
	}

	return out, nil
}
