package render_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/polycube/render"
	"github.com/katalvlaran/polycube/voxel"
)

func singleCube() voxel.Grid {
	g, _ := voxel.NewGrid(1, 1, 1)
	return g.WithCell(0, 0, 0, true)
}

func TestPNGRenderer_WritesValidPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	r := render.PNGRenderer{}
	err := r.Render([]voxel.Grid{singleCube()}, path)
	assert.NoError(t, err)

	f, err := os.Open(path)
	assert.NoError(t, err)
	defer f.Close()

	_, err = png.Decode(f)
	assert.NoError(t, err, "output must be a decodable PNG")
}

func TestPNGRenderer_EmptyShapesStillProducesImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	r := render.PNGRenderer{}
	err := r.Render(nil, path)
	assert.NoError(t, err)

	f, err := os.Open(path)
	assert.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	assert.NoError(t, err)
}

func TestPNGRenderer_MultipleShapesMosaic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mosaic.png")
	shapes := []voxel.Grid{singleCube(), singleCube(), singleCube(), singleCube()}
	r := render.PNGRenderer{TileCols: 2}
	err := r.Render(shapes, path)
	assert.NoError(t, err)

	f, err := os.Open(path)
	assert.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	assert.NoError(t, err)
	b := img.Bounds()
	assert.True(t, b.Dx() > 0 && b.Dy() > 0)
}
