// Package pack encodes a trimmed voxel.Grid into a compact, totally
// ordered byte string and decodes it back.
//
// Layout: three header bytes (dx, dy, dz) followed by the occupancy
// bitstream in the grid's fixed axis-nesting order (z outermost, x
// innermost), MSB-first, zero-padded to a byte boundary: flat, indexed
// storage in place of per-cell structures, the same preference
// matrix.Dense shows for float64 cells, here adapted to single occupancy
// bits.
package pack

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/katalvlaran/polycube/voxel"
)

// Sentinel errors for Unpack.
var (
	// ErrShortInput indicates fewer than 3 header bytes, or a bitstream
	// shorter than the header's declared dimensions require.
	ErrShortInput = errors.New("pack: input too short to contain a valid header and bitstream")
	// ErrBadDims indicates a header declaring a non-positive dimension.
	ErrBadDims = errors.New("pack: header declares non-positive dimension")
)

// Pack encodes g into a byte string. Pack is a pure function of g's
// dimensions and occupancy: distinct trimmed grids yield distinct byte
// strings, and bytes.Compare on the result gives the total order
// canonicalization relies on.
// Complexity: O(dx*dy*dz).
func Pack(g voxel.Grid) ([]byte, error) {
	if g.Dims[0] <= 0 || g.Dims[1] <= 0 || g.Dims[2] <= 0 {
		return nil, fmt.Errorf("pack: %w", ErrBadDims)
	}
	if g.Dims[0] > 255 || g.Dims[1] > 255 || g.Dims[2] > 255 {
		return nil, fmt.Errorf("pack: dimension exceeds single-byte header capacity")
	}

	nBits := len(g.Cells)
	nBytes := (nBits + 7) / 8
	out := make([]byte, 3+nBytes)
	out[0] = byte(g.Dims[0])
	out[1] = byte(g.Dims[1])
	out[2] = byte(g.Dims[2])

	for i, occupied := range g.Cells {
		if !occupied {
			continue
		}
		byteIdx := 3 + i/8
		bitIdx := uint(7 - i%8) // MSB-first within each byte
		out[byteIdx] |= 1 << bitIdx
	}

	return out, nil
}

// Unpack decodes a byte string produced by Pack back into a voxel.Grid.
// Unpack(Pack(g)) == g for any valid trimmed g.
// Complexity: O(dx*dy*dz).
func Unpack(b []byte) (voxel.Grid, error) {
	if len(b) < 3 {
		return voxel.Grid{}, ErrShortInput
	}
	dx, dy, dz := int(b[0]), int(b[1]), int(b[2])
	if dx <= 0 || dy <= 0 || dz <= 0 {
		return voxel.Grid{}, ErrBadDims
	}

	g, err := voxel.NewGrid(dx, dy, dz)
	if err != nil {
		return voxel.Grid{}, err
	}

	nBits := len(g.Cells)
	nBytes := (nBits + 7) / 8
	if len(b) < 3+nBytes {
		return voxel.Grid{}, ErrShortInput
	}

	for i := range g.Cells {
		byteIdx := 3 + i/8
		bitIdx := uint(7 - i%8)
		g.Cells[i] = b[byteIdx]&(1<<bitIdx) != 0
	}

	return g, nil
}

// Less reports whether a sorts strictly before b under the lexicographic
// byte order that canon.CanonicalID relies on.
func Less(a, b []byte) bool {
	return bytes.Compare(a, b) < 0
}

// Max returns whichever of a, b sorts later lexicographically.
func Max(a, b []byte) []byte {
	if bytes.Compare(a, b) >= 0 {
		return a
	}

	return b
}
