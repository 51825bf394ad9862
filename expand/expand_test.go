package expand_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/polycube/expand"
	"github.com/katalvlaran/polycube/voxel"
)

func singleCube() voxel.Grid {
	g, _ := voxel.NewGrid(1, 1, 1)
	return g.WithCell(0, 0, 0, true)
}

func TestCandidates_SingleCube_SixNeighbors(t *testing.T) {
	cands, err := expand.Candidates(singleCube())
	assert.NoError(t, err)
	assert.Len(t, cands, 6)
	for _, c := range cands {
		assert.Equal(t, 2, c.Count())
		assert.True(t, c.Connected())
	}
}

func TestCandidates_AllConnectedAndCorrectSize(t *testing.T) {
	g, _ := voxel.NewGrid(2, 1, 1)
	g = g.WithCell(0, 0, 0, true)
	g = g.WithCell(1, 0, 0, true)

	cands, err := expand.Candidates(g)
	assert.NoError(t, err)
	assert.NotEmpty(t, cands)
	for _, c := range cands {
		assert.Equal(t, 3, c.Count())
		assert.True(t, c.Connected())
		assert.True(t, c.Valid())
	}
}

func TestCandidates_NoDuplicatePositions(t *testing.T) {
	// A straight tromino's three cells expose 14 distinct empty
	// face-neighbor positions once shared (occupied) neighbors are
	// excluded: each end cell has 5 free neighbors, the middle cell 4.
	g, _ := voxel.NewGrid(3, 1, 1)
	g = g.WithCell(0, 0, 0, true)
	g = g.WithCell(1, 0, 0, true)
	g = g.WithCell(2, 0, 0, true)

	cands, err := expand.Candidates(g)
	assert.NoError(t, err)
	assert.Len(t, cands, 14)
	for _, c := range cands {
		assert.Equal(t, 4, c.Count())
		assert.True(t, c.Valid())
	}
}
