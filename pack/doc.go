// Package pack injectively encodes a trimmed voxel.Grid to a totally
// ordered byte string, and decodes it back.
//
// Contracts:
//
//   - Pack(g) is injective on trimmed grids.
//   - Unpack(Pack(g)) == g for any trimmed g.
//   - bytes.Compare on packed output gives the lexicographic order used by
//     canon.CanonicalID.
//
// Errors:
//
//   - ErrShortInput: the byte string is too short for its declared header.
//   - ErrBadDims: the header declares a non-positive dimension.
package pack
