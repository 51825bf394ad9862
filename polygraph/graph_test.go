package polygraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/polycube/polygraph"
	"github.com/katalvlaran/polycube/voxel"
)

func gridFromCoords(coords []voxel.Coord) voxel.Grid {
	minX, minY, minZ := coords[0].X, coords[0].Y, coords[0].Z
	maxX, maxY, maxZ := minX, minY, minZ
	for _, c := range coords {
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Z < minZ {
			minZ = c.Z
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y > maxY {
			maxY = c.Y
		}
		if c.Z > maxZ {
			maxZ = c.Z
		}
	}
	g, _ := voxel.NewGrid(maxX-minX+1, maxY-minY+1, maxZ-minZ+1)
	for _, c := range coords {
		g = g.WithCell(c.X-minX, c.Y-minY, c.Z-minZ, true)
	}

	return g
}

func TestNewAdjacencyGraph_StraightTromino(t *testing.T) {
	g := gridFromCoords([]voxel.Coord{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}})
	ag := polygraph.FromGrid(g)

	assert.Equal(t, 3, ag.N)
	identity := ag.IdentityVector()
	assert.ElementsMatch(t, []int{1, 2, 1}, identity)
}

func TestTag_SingleCube(t *testing.T) {
	assert.Equal(t, "C0", polygraph.Tag([]int{0}))
}

func TestTag_StraightTromino(t *testing.T) {
	// Two endpoints of connectivity 1, one middle node of connectivity 2.
	tag := polygraph.Tag([]int{1, 2, 1})
	assert.Equal(t, "H2_1C2", tag)
}

func TestIdentityVector_FourShapesAtLeastTwoTags(t *testing.T) {
	shapes := []voxel.Grid{
		gridFromCoords([]voxel.Coord{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}}),             // I
		gridFromCoords([]voxel.Coord{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {2, 1, 0}}),             // L
		gridFromCoords([]voxel.Coord{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {2, 1, 0}}),             // S
		gridFromCoords([]voxel.Coord{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}),             // O
	}

	tags := make(map[string]bool)
	for _, s := range shapes {
		ag := polygraph.FromGrid(s)
		tags[polygraph.Tag(ag.IdentityVector())] = true
	}
	// At least the square tetromino (all connectivity 2) is tag-distinct
	// from the others; tags partition shapes, they need not be unique.
	assert.True(t, len(tags) >= 2)
}
