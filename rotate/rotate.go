// Package rotate enumerates the 24 proper rotations of the cube and applies
// them to a voxel.Grid.
//
// A rotation is represented as a signed axis permutation: Perm[i] names
// which source axis maps to output axis i, and Sign[i] is +1 or -1 for
// whether that axis is flipped. Composing a permutation matrix with a
// diagonal sign matrix gives every orthogonal transform of the cube; the
// proper (rotation) subgroup is exactly those with determinant +1, which
// has order 24. The table is built once at init time rather than
// hand-enumerated, favoring a deterministic, precomputed table over ad hoc
// literals.
package rotate

import "github.com/katalvlaran/polycube/voxel"

// Rotation is a signed axis permutation with determinant +1.
type Rotation struct {
	Perm [3]int
	Sign [3]int
}

// All24 is the fixed table of the 24 proper rotations of the cube, computed
// once at package init. Ordering is deterministic but not semantically
// meaningful: callers must treat the set, not the sequence, as canonical.
var All24 = buildRotations()

func permutations3() [][3]int {
	idx := [3]int{0, 1, 2}
	var out [][3]int
	var permute func(k int)
	permute = func(k int) {
		if k == len(idx) {
			out = append(out, idx)
			return
		}
		for i := k; i < len(idx); i++ {
			idx[k], idx[i] = idx[i], idx[k]
			permute(k + 1)
			idx[k], idx[i] = idx[i], idx[k]
		}
	}
	permute(0)

	return out
}

func permSign(p [3]int) int {
	// Parity of a permutation of 3 elements: +1 if it takes an even number
	// of transpositions to reach identity, -1 otherwise.
	inversions := 0
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if p[i] > p[j] {
				inversions++
			}
		}
	}
	if inversions%2 == 0 {
		return 1
	}

	return -1
}

func buildRotations() [24]Rotation {
	var out [24]Rotation
	n := 0
	for _, perm := range permutations3() {
		pSign := permSign(perm)
		for s0 := -1; s0 <= 1; s0 += 2 {
			for s1 := -1; s1 <= 1; s1 += 2 {
				for s2 := -1; s2 <= 1; s2 += 2 {
					det := pSign * s0 * s1 * s2
					if det != 1 {
						continue
					}
					out[n] = Rotation{Perm: perm, Sign: [3]int{s0, s1, s2}}
					n++
				}
			}
		}
	}
	if n != 24 {
		panic("rotate: expected exactly 24 proper rotations")
	}

	return out
}

// axisCoord reads coordinate component a (0=x,1=y,2=z) from c.
func axisCoord(c voxel.Coord, a int) int {
	switch a {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return c.Z
	}
}

// applyToCoord maps a source coordinate of a grid with dimensions dims
// through r. A flipped axis is reflected within the box (dims-1-v), so the
// result always lies inside the output grid and can be indexed directly.
func applyToCoord(r Rotation, c voxel.Coord, dims [3]int) voxel.Coord {
	src := [3]int{c.X, c.Y, c.Z}
	var out [3]int
	for outAxis := 0; outAxis < 3; outAxis++ {
		v := src[r.Perm[outAxis]]
		if r.Sign[outAxis] < 0 {
			v = dims[r.Perm[outAxis]] - 1 - v
		}
		out[outAxis] = v
	}

	return voxel.Coord{X: out[0], Y: out[1], Z: out[2]}
}

// outputDims computes the bounding box dimensions after applying r to a
// grid of dimensions dims: permuting axes permutes the dimension triple.
func outputDims(r Rotation, dims [3]int) [3]int {
	var out [3]int
	for outAxis := 0; outAxis < 3; outAxis++ {
		out[outAxis] = dims[r.Perm[outAxis]]
	}

	return out
}

// Apply returns g rotated by r. The result is not guaranteed trimmed (it
// never needs trimming here, since rotation maps a box onto a box of
// permuted dimensions), but callers in the canon package still call Trim
// for uniformity with freshly-expanded grids.
// Complexity: O(dx*dy*dz).
func Apply(g voxel.Grid, r Rotation) voxel.Grid {
	dims := outputDims(r, g.Dims)
	out, err := voxel.NewGrid(dims[0], dims[1], dims[2])
	if err != nil {
		panic("rotate: Apply produced invalid output dims: " + err.Error())
	}
	for _, c := range g.Coords() {
		oc := applyToCoord(r, c, g.Dims)
		out.Cells[out.Index(oc.X, oc.Y, oc.Z)] = true
	}

	return out
}

// All returns g rotated by each of the 24 proper rotations. Duplicates are
// expected and intentional when g has nontrivial rotational symmetry; the
// Canonicalizer relies on iterating the full orbit, not a deduplicated one.
// Complexity: O(24 * dx*dy*dz).
func All(g voxel.Grid) [24]voxel.Grid {
	var out [24]voxel.Grid
	for i, r := range All24 {
		out[i] = Apply(g, r)
	}

	return out
}
