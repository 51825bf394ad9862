// Package canon computes a rotation-invariant fingerprint for a voxel.Grid,
// with a short-circuited membership test against a set of already-known
// fingerprints.
//
// The lex-max-over-a-symmetry-group technique mirrors dfs.MinimalRotation
// (Booth's algorithm finds the lexicographic minimum over the rotations
// of a string; here we take the maximum over the 24 rotations of a cube)
// and dfs.Compare for the underlying lexicographic ordering
// (dfs/utils.go).
package canon

import (
	"github.com/katalvlaran/polycube/pack"
	"github.com/katalvlaran/polycube/rotate"
	"github.com/katalvlaran/polycube/voxel"
)

// FingerprintSet is a byte-content-keyed set: Go's map[string]struct{}
// hashes by string content, not
// identity, which is exactly what's needed to hold on the order of 10^7
// entries at n=8 without a per-entry wrapper object. Converting a []byte to
// a string key copies it once; no wrapper type is introduced.
type FingerprintSet map[string]struct{}

// NewFingerprintSet returns an empty set sized for the expected cardinality
// hint (callers may pass 0 if unknown).
func NewFingerprintSet(sizeHint int) FingerprintSet {
	return make(FingerprintSet, sizeHint)
}

// Has reports whether id is already present.
func (s FingerprintSet) Has(id []byte) bool {
	_, ok := s[string(id)]
	return ok
}

// Add inserts id.
func (s FingerprintSet) Add(id []byte) {
	s[string(id)] = struct{}{}
}

// Len reports the number of distinct fingerprints.
func (s FingerprintSet) Len() int {
	return len(s)
}

// CanonicalID computes fp(X) = max over the 24 rotations R of
// pack(trim(R·X)), short-circuiting as soon as any rotation's packing is
// already present in known.
//
// Rationale for the short-circuit: if any rotation's packing is already
// known, the orbit is already represented, so there's no need to finish
// computing the true maximum — any representative already in the same
// orbit equivalence class satisfies the dedup set's needs. In that case
// CanonicalID returns that rotation's packing (an arbitrary-but-
// deterministic member of the orbit) rather than the lexicographic max.
//
// Invariant: for X, Y related by rotation, CanonicalID(X,
// known) == CanonicalID(Y, known) whenever known is consistent with both
// calls; in particular if neither is present yet, both return the true
// max and so agree.
// Complexity: O(24 * dx*dy*dz).
func CanonicalID(g voxel.Grid, known FingerprintSet) ([]byte, error) {
	var maxID []byte
	for _, r := range rotate.All24 {
		rotated := rotate.Apply(g, r)
		trimmed, err := rotated.Trim()
		if err != nil {
			return nil, err
		}
		packed, err := pack.Pack(trimmed)
		if err != nil {
			return nil, err
		}
		if known.Has(packed) {
			return packed, nil
		}
		if maxID == nil || pack.Less(maxID, packed) {
			maxID = packed
		}
	}

	return maxID, nil
}
