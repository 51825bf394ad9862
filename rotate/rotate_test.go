package rotate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/polycube/rotate"
	"github.com/katalvlaran/polycube/voxel"
)

func domino() voxel.Grid {
	g, _ := voxel.NewGrid(2, 1, 1)
	g = g.WithCell(0, 0, 0, true)
	g = g.WithCell(1, 0, 0, true)
	return g
}

func TestAll24_Count(t *testing.T) {
	assert.Len(t, rotate.All24, 24)
}

func TestAll24_NoDuplicates(t *testing.T) {
	seen := make(map[[3]int]map[[3]int]bool)
	for _, r := range rotate.All24 {
		if seen[r.Perm] == nil {
			seen[r.Perm] = make(map[[3]int]bool)
		}
		assert.False(t, seen[r.Perm][r.Sign], "duplicate rotation %+v", r)
		seen[r.Perm][r.Sign] = true
	}
}

func TestApply_PreservesOccupancyCount(t *testing.T) {
	g := domino()
	for _, r := range rotate.All24 {
		rotated := rotate.Apply(g, r)
		assert.Equal(t, g.Count(), rotated.Count())
	}
}

func TestApply_Identity(t *testing.T) {
	g := domino()
	var identity rotate.Rotation
	for _, r := range rotate.All24 {
		if r.Perm == [3]int{0, 1, 2} && r.Sign == [3]int{1, 1, 1} {
			identity = r
		}
	}
	out := rotate.Apply(g, identity)
	assert.True(t, g.Equal(out))
}

func TestAll_YieldsOrbit(t *testing.T) {
	g := domino()
	orbit := rotate.All(g)
	assert.Len(t, orbit, 24)
	for _, o := range orbit {
		assert.Equal(t, g.Count(), o.Count())
	}
}
