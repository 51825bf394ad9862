// Package polycube is a thin convenience facade over the module's
// component packages: voxel (grid), rotate, pack, expand, canon (the
// rotation-orbit route to deduplication), polygraph (the parse/trie
// route), cache, render, and growth (the engine tying them together).
//
//	go get github.com/katalvlaran/polycube
//
// Most callers want growth.Generate directly; Generate here just saves an
// import when all you need is "count and return S(n)" with default
// options.
package polycube

import (
	"github.com/katalvlaran/polycube/growth"
	"github.com/katalvlaran/polycube/voxel"
)

// Generate computes S(n), the set of distinct polycubes of size n up to
// rotation, using default options (no cache, no logger). See
// growth.Generate for cache/logger/context configuration.
func Generate(n int) ([]voxel.Grid, error) {
	shapes, _, err := growth.Generate(n)

	return shapes, err
}
