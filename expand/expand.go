// Package expand enumerates every size-(n+1) shape reachable from a
// size-n shape by adding one face-adjacent cube.
//
// Grounded on the pad-then-scan-neighbors shape of gridgraph.ExpandIsland
// (now folded into voxel), generalized from a shortest-path search over a
// 2-D land/water grid to an exhaustive one-cube-growth enumeration over a
// 3-D binary occupancy grid.
package expand

import "github.com/katalvlaran/polycube/voxel"

// Candidates returns every size-(n+1) grid obtainable by adding one cube
// at a position face-adjacent to an occupied cell of g but not itself
// occupied. Results are not deduplicated across rotation-equivalent shapes;
// the canon package handles folding those duplicates.
//
// Algorithm:
//  1. Pad g with one empty layer on every axis, so candidate positions
//     outside the original box are addressable.
//  2. For each occupied cell, and each of its six face neighbors, if the
//     neighbor is unoccupied, emit a grid with that neighbor added.
//  3. Re-trim every emission to its own tight bounding box.
//
// Every emission is connected, has size n+1, and contains g as a
// sub-occupancy after alignment.
// Complexity: O(n) candidates, each O(dx*dy*dz) to build and trim.
func Candidates(g voxel.Grid) ([]voxel.Grid, error) {
	padded, err := g.Pad(1)
	if err != nil {
		return nil, err
	}

	seen := make(map[voxel.Coord]bool)
	var positions []voxel.Coord
	for _, c := range padded.Coords() {
		for _, off := range voxel.NeighborOffsets6() {
			n := c.Add(off)
			if !padded.InBounds(n.X, n.Y, n.Z) {
				continue
			}
			if padded.At(n.X, n.Y, n.Z) {
				continue // already occupied
			}
			if seen[n] {
				continue // dedup candidate *positions* within this one expansion
			}
			seen[n] = true
			positions = append(positions, n)
		}
	}

	out := make([]voxel.Grid, 0, len(positions))
	for _, p := range positions {
		grown := padded.WithCell(p.X, p.Y, p.Z, true)
		trimmed, err := grown.Trim()
		if err != nil {
			return nil, err
		}
		out = append(out, trimmed)
	}

	return out, nil
}
