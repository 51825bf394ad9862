// Package canon computes the canonical rotation fingerprint of a shape and
// performs a short-circuited membership test against a growing set of
// known fingerprints.
//
// Testable properties:
//
//   - Rotation invariance: CanonicalID(R·X, ∅) == CanonicalID(X, ∅) for
//     every shape X and every rotation R.
package canon
