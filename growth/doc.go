// Package growth drives S(n-1) -> S(n) for polycube enumeration: pull the
// prior generation, expand every shape, canonicalize and fold duplicates,
// optionally persist.
//
// Known counts (OEIS A000162); the test suite checks n = 1..7:
//
//	n: 1  2  3  4  5   6    7     8     9
//	   1  1  2  8  29  166  1023  6922  48311
//
// Failure semantics:
//
//   - n < 1: ErrInvalidSize, no mutation.
//   - Cache load failure: non-fatal, recomputes.
//   - Cache store failure: reported via Logger, does not invalidate the
//     returned generation.
//   - Any invariant violation (an Expander/Canonicalizer producing a shape
//     of the wrong size, or an unpack mismatch) panics with a diagnostic:
//     these signal bugs, not runtime conditions.
package growth
