package polygraph

import (
	"strconv"

	"github.com/katalvlaran/polycube/voxel"
)

// AdjacencyGraph is a shape's face-labeled adjacency graph: nodes are cell
// positions, edges are face-adjacencies labeled in both directions. Adj is
// N x N; Adj[i][j] is the Face code from node i to node j (and Adj[j][i]
// its opposite), or 0 if they are not face-adjacent.
type AdjacencyGraph struct {
	N   int
	Adj [][]Face
}

// NewAdjacencyGraph builds the adjacency graph for a set of cell
// positions: every pair exactly one unit apart on a single axis gets a
// labeled edge in both directions.
// Complexity: O(n^2).
func NewAdjacencyGraph(positions []voxel.Coord) AdjacencyGraph {
	n := len(positions)
	adj := make([][]Face, n)
	for i := range adj {
		adj[i] = make([]Face, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := voxel.Coord{
				X: positions[j].X - positions[i].X,
				Y: positions[j].Y - positions[i].Y,
				Z: positions[j].Z - positions[i].Z,
			}
			if f, ok := faceFromDelta(d); ok {
				adj[i][j] = f
				adj[j][i] = Opposite(f)
			}
		}
	}

	return AdjacencyGraph{N: n, Adj: adj}
}

// FromGrid builds the adjacency graph directly from a voxel.Grid's
// occupied cells, in the grid's fixed iteration order.
func FromGrid(g voxel.Grid) AdjacencyGraph {
	return NewAdjacencyGraph(g.Coords())
}

// neighborByFace returns the node reachable from node via face f, if any.
// Complexity: O(n).
func (ag AdjacencyGraph) neighborByFace(node int, f Face) (int, bool) {
	for j, label := range ag.Adj[node] {
		if label == f {
			return j, true
		}
	}

	return 0, false
}

// Connectivity returns node i's degree: the number of face-adjacent
// neighbors, 0-6.
// Complexity: O(n).
func (ag AdjacencyGraph) Connectivity(i int) int {
	deg := 0
	for _, label := range ag.Adj[i] {
		if label != 0 {
			deg++
		}
	}

	return deg
}

// IdentityVector returns the per-node connectivity multiset.
// Complexity: O(n^2).
func (ag AdjacencyGraph) IdentityVector() []int {
	out := make([]int, ag.N)
	for i := range out {
		out[i] = ag.Connectivity(i)
	}

	return out
}

// Tag returns the shape's short canonical string derived from its
// identity vector: "C0" for the lone singleton node, "H<k>" for k nodes
// of connectivity 1, and "_<k>C<c>" for k nodes of connectivity c > 1, in
// ascending order of c.
func Tag(identity []int) string {
	counts := make(map[int]int)
	for _, c := range identity {
		counts[c]++
	}

	tag := ""
	for c := 0; c <= 6; c++ {
		occurrences, ok := counts[c]
		if !ok {
			continue
		}
		switch {
		case c == 0:
			tag = "C0"
		case c == 1:
			tag += "H" + strconv.Itoa(occurrences)
		default:
			tag += "_" + strconv.Itoa(occurrences) + "C" + strconv.Itoa(c)
		}
	}

	return tag
}

