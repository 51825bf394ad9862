package voxel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/polycube/voxel"
)

func singleCube() voxel.Grid {
	g, _ := voxel.NewGrid(1, 1, 1)
	return g.WithCell(0, 0, 0, true)
}

func TestNewGrid_InvalidDims(t *testing.T) {
	_, err := voxel.NewGrid(0, 1, 1)
	assert.ErrorIs(t, err, voxel.ErrEmptyGrid)
}

func TestTrim_Idempotent(t *testing.T) {
	g := singleCube()
	t1, err := g.Trim()
	assert.NoError(t, err)
	t2, err := t1.Trim()
	assert.NoError(t, err)
	assert.True(t, t1.Equal(t2))
}

func TestTrim_RemovesEmptySlabs(t *testing.T) {
	g, _ := voxel.NewGrid(3, 3, 3)
	g = g.WithCell(1, 1, 1, true)
	trimmed, err := g.Trim()
	assert.NoError(t, err)
	assert.Equal(t, [3]int{1, 1, 1}, trimmed.Dims)
	assert.Equal(t, 1, trimmed.Count())
}

func TestTrim_NoCells(t *testing.T) {
	g, _ := voxel.NewGrid(2, 2, 2)
	_, err := g.Trim()
	assert.ErrorIs(t, err, voxel.ErrNoCells)
}

func TestPad_ExtendsAndPreservesOccupancy(t *testing.T) {
	g := singleCube()
	padded, err := g.Pad(1)
	assert.NoError(t, err)
	assert.Equal(t, [3]int{3, 3, 3}, padded.Dims)
	assert.Equal(t, 1, padded.Count())
	assert.True(t, padded.At(1, 1, 1))
}

func TestConnected_Domino(t *testing.T) {
	g, _ := voxel.NewGrid(2, 1, 1)
	g = g.WithCell(0, 0, 0, true)
	g = g.WithCell(1, 0, 0, true)
	assert.True(t, g.Connected())
}

func TestConnected_Disconnected(t *testing.T) {
	g, _ := voxel.NewGrid(3, 1, 1)
	g = g.WithCell(0, 0, 0, true)
	g = g.WithCell(2, 0, 0, true)
	assert.False(t, g.Connected())
}

func TestValid_SingleCube(t *testing.T) {
	assert.True(t, singleCube().Valid())
}

func TestValid_UntrimmedIsInvalid(t *testing.T) {
	g, _ := voxel.NewGrid(2, 1, 1)
	g = g.WithCell(0, 0, 0, true)
	assert.False(t, g.Valid())
}

func TestCoords_FixedOrder(t *testing.T) {
	g, _ := voxel.NewGrid(2, 2, 1)
	g = g.WithCell(0, 0, 0, true)
	g = g.WithCell(1, 1, 0, true)
	coords := g.Coords()
	assert.Equal(t, []voxel.Coord{{0, 0, 0}, {1, 1, 0}}, coords)
}

func TestEqual(t *testing.T) {
	a := singleCube()
	b := singleCube()
	assert.True(t, a.Equal(b))
	c, _ := voxel.NewGrid(1, 1, 2)
	assert.False(t, a.Equal(c))
}
