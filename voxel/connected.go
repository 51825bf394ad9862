package voxel

// Connected reports whether every occupied cell of g is reachable from any
// other via a chain of face-adjacencies. An empty grid is vacuously
// connected. Grounded on the BFS-over-occupied-cells shape of
// gridgraph.ConnectedComponents, specialized to a single yes/no answer over
// 3-D occupancy rather than a map of multi-valued 2-D islands.
// Complexity: O(dx*dy*dz).
func (g Grid) Connected() bool {
	total := g.Count()
	if total == 0 {
		return true
	}

	var start Coord
	found := false
	for z := 0; z < g.Dims[2] && !found; z++ {
		for y := 0; y < g.Dims[1] && !found; y++ {
			for x := 0; x < g.Dims[0] && !found; x++ {
				if g.Cells[g.Index(x, y, z)] {
					start = Coord{x, y, z}
					found = true
				}
			}
		}
	}

	visited := make(map[Coord]bool, total)
	queue := []Coord{start}
	visited[start] = true
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		for _, off := range neighborOffsets6 {
			n := cur.Add(off)
			if !g.InBounds(n.X, n.Y, n.Z) || visited[n] || !g.Cells[g.Index(n.X, n.Y, n.Z)] {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	return len(visited) == total
}

// Valid reports whether g is a well-formed shape: its occupied cells are
// face-connected, and its bounding box touches each of the six faces (Trim
// is a no-op). A zero-occupancy grid is not a valid shape.
func (g Grid) Valid() bool {
	if g.Count() == 0 {
		return false
	}
	if !g.Connected() {
		return false
	}
	trimmed, err := g.Trim()
	if err != nil {
		return false
	}

	return trimmed.Dims == g.Dims
}
