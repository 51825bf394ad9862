// Package render turns a generation of shapes into a single image for
// visual inspection, laying each shape out as a top-down voxel-column
// projection on a shared grid.
//
// Grounded on the Z-buffer voxel rasterization in
// voxel_carving/tools/space_carving/render.go, simplified from a
// perspective camera projection to an orthographic top-down projection
// over a flat occupancy grid: there is no camera, no depth test, and
// "color" is just "this column has at least one occupied cell".
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/katalvlaran/polycube/voxel"
)

// cellPixels is the on-screen size, in pixels, of one grid cell.
const cellPixels = 8

// tilePadding separates adjacent shape tiles in the mosaic.
const tilePadding = 4

// Renderer turns a generation of shapes into a persisted visualization.
type Renderer interface {
	Render(shapes []voxel.Grid, path string) error
}

// PNGRenderer lays shapes out as a grid ("mosaic") of top-down voxel-column
// projections and writes the result as a single PNG.
type PNGRenderer struct {
	// TileCols bounds how many shape tiles are placed per row before
	// wrapping to the next row. 0 selects a default based on len(shapes).
	TileCols int
}

// Render writes a PNG mosaic of shapes to path. An empty shapes slice
// still produces a minimal, valid image.
func (r PNGRenderer) Render(shapes []voxel.Grid, path string) error {
	cols := r.TileCols
	if cols <= 0 {
		cols = defaultCols(len(shapes))
	}
	if cols == 0 {
		cols = 1
	}
	rows := (len(shapes) + cols - 1) / cols
	if rows == 0 {
		rows = 1
	}

	tileW, tileH := tileDims(shapes)
	img := image.NewRGBA(image.Rect(0, 0, cols*(tileW+tilePadding)+tilePadding, rows*(tileH+tilePadding)+tilePadding))
	fillBackground(img, color.RGBA{R: 250, G: 250, B: 250, A: 255})

	for i, g := range shapes {
		col, row := i%cols, i/cols
		ox := tilePadding + col*(tileW+tilePadding)
		oy := tilePadding + row*(tileH+tilePadding)
		drawTopDown(img, g, ox, oy)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("render: encoding png: %w", err)
	}

	return nil
}

func defaultCols(n int) int {
	return int(math.Ceil(math.Sqrt(float64(n))))
}

// tileDims returns the pixel size of the largest shape's tile, so every
// tile in the mosaic shares one uniform size.
func tileDims(shapes []voxel.Grid) (int, int) {
	maxDx, maxDz := 1, 1
	for _, g := range shapes {
		if g.Dims[0] > maxDx {
			maxDx = g.Dims[0]
		}
		if g.Dims[2] > maxDz {
			maxDz = g.Dims[2]
		}
	}

	return maxDx * cellPixels, maxDz * cellPixels
}

func fillBackground(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// drawTopDown projects g onto the x-z plane: a cell is "lit" if any y-slice
// at that (x,z) column is occupied. This intentionally discards height
// information; it is a visual index, not a faithful 3-D render.
func drawTopDown(img *image.RGBA, g voxel.Grid, ox, oy int) {
	occupied := color.RGBA{R: 40, G: 90, B: 200, A: 255}
	for z := 0; z < g.Dims[2]; z++ {
		for x := 0; x < g.Dims[0]; x++ {
			lit := false
			for y := 0; y < g.Dims[1] && !lit; y++ {
				lit = g.At(x, y, z)
			}
			if !lit {
				continue
			}
			px0, py0 := ox+x*cellPixels, oy+z*cellPixels
			for py := py0; py < py0+cellPixels-1; py++ {
				for px := px0; px < px0+cellPixels-1; px++ {
					img.SetRGBA(px, py, occupied)
				}
			}
		}
	}
}
