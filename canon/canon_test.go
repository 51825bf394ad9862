package canon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/polycube/canon"
	"github.com/katalvlaran/polycube/rotate"
	"github.com/katalvlaran/polycube/voxel"
)

// An L-tromino and its rotation-equivalent counterpart:
// {(0,0,0),(-1,0,0),(-1,1,0)} and {(0,0,0),(-1,0,0),(0,1,0)}.
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

func TestCanonicalID_RotationInvariance(t *testing.T) {
	a := gridFromCoords([]voxel.Coord{{0, 0, 0}, {-1, 0, 0}, {-1, 1, 0}})
	b := gridFromCoords([]voxel.Coord{{0, 0, 0}, {-1, 0, 0}, {0, 1, 0}})

	idA, err := canon.CanonicalID(a, canon.NewFingerprintSet(0))
	assert.NoError(t, err)
	idB, err := canon.CanonicalID(b, canon.NewFingerprintSet(0))
	assert.NoError(t, err)
	assert.Equal(t, idA, idB)
}

func TestCanonicalID_AllRotationsAgree(t *testing.T) {
	g := gridFromCoords([]voxel.Coord{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}})
	base, err := canon.CanonicalID(g, canon.NewFingerprintSet(0))
	assert.NoError(t, err)

	for _, r := range rotate.All24 {
		rotated := rotate.Apply(g, r)
		id, err := canon.CanonicalID(rotated, canon.NewFingerprintSet(0))
		assert.NoError(t, err)
		assert.Equal(t, base, id)
	}
}

func TestCanonicalID_ShortCircuitReturnsKnownMember(t *testing.T) {
	g := gridFromCoords([]voxel.Coord{{0, 0, 0}, {1, 0, 0}})
	known := canon.NewFingerprintSet(0)
	id1, err := canon.CanonicalID(g, known)
	assert.NoError(t, err)
	known.Add(id1)

	rotated := rotate.Apply(g, rotate.All24[5])
	id2, err := canon.CanonicalID(rotated, known)
	assert.NoError(t, err)
	assert.True(t, known.Has(id2))
}
