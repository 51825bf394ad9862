// Package polygraph implements an alternative, rotation-free identification
// scheme for polycube shapes: instead of enumerating 24 rotations, a shape
// is identified by a depth-first traversal signature ("parse") over its
// face-labeled adjacency graph, and duplicates are collapsed by a
// rotation-aware descent through a radix trie.
//
// Translated into idiomatic Go: a tagged Token variant in place of an
// untyped int-or-string parse element, a fixed 6-slot equivalence array
// passed by value during descent in place of per-branch map clones, and
// the Graph/Edge vocabulary of github.com/katalvlaran/lvlath/core for
// naming conventions (Option-less direct constructors for a small,
// fixed-shape domain object). The package defines no sentinel errors;
// invariant violations panic.
package polygraph

import "github.com/katalvlaran/polycube/voxel"

// Face labels one of the six axis-face directions, using a stable one-hot
// encoding within a 6-bit field: opposite faces sit three bit positions
// apart.
type Face uint8

// The six face codes, one bit each within {1,2,4,8,16,32}: code(-d) is
// code(d) rotated by three bit positions within the 6-bit field.
const (
	FacePlusY  Face = 1
	FacePlusX  Face = 2
	FacePlusZ  Face = 4
	FaceMinusY Face = 8
	FaceMinusX Face = 16
	FaceMinusZ Face = 32
)

// faceOffsets maps each Face to its unit coordinate step.
var faceOffsets = map[Face]voxel.Coord{
	FacePlusY:  {0, 1, 0},
	FacePlusX:  {1, 0, 0},
	FacePlusZ:  {0, 0, 1},
	FaceMinusY: {0, -1, 0},
	FaceMinusX: {-1, 0, 0},
	FaceMinusZ: {0, 0, -1},
}

// faceIndex returns a dense 0..5 index for a Face, matching the bit
// position (log2) of its value.
func faceIndex(f Face) int {
	switch f {
	case FacePlusY:
		return 0
	case FacePlusX:
		return 1
	case FacePlusZ:
		return 2
	case FaceMinusY:
		return 3
	case FaceMinusX:
		return 4
	default: // FaceMinusZ
		return 5
	}
}

var facesByIndex = [6]Face{FacePlusY, FacePlusX, FacePlusZ, FaceMinusY, FaceMinusX, FaceMinusZ}

// Opposite returns the opposite direction, 2^((log2 f + 3) mod 6):
// opposite(opposite(f)) == f for every code (an involution).
func Opposite(f Face) Face {
	return facesByIndex[(faceIndex(f)+3)%6]
}

// faceFromDelta returns the Face corresponding to a single unit step, or
// ok=false if d is not one of the six axis steps.
func faceFromDelta(d voxel.Coord) (Face, bool) {
	for f, off := range faceOffsets {
		if off == d {
			return f, true
		}
	}

	return 0, false
}

// sortOrder is the fixed traversal priority for Parse: labels are visited
// in this order at every node, regardless of the order they appear in the
// adjacency row.
var sortOrder = [6]Face{FacePlusY, FacePlusX, FacePlusZ, FaceMinusY, FaceMinusX, FaceMinusZ}

// TokenKind distinguishes a parse token's two shapes: a traversed face
// label, or a backtrack marker recording how many stack frames were popped
// before the next forward move.
type TokenKind uint8

const (
	// TokenFace marks a forward traversal step across the labeled edge.
	TokenFace TokenKind = iota
	// TokenBacktrack marks a return to an ancestor frame.
	TokenBacktrack
)

// Token is one element of a Parse: either a face label or a backtrack
// count. Token is comparable (no slice/map fields), so it can key the
// Sorter trie's per-node children map directly.
type Token struct {
	Kind      TokenKind
	Face      Face
	Backtrack int
}
