// Package expand enumerates the size-(n+1) shapes one cube-addition away
// from a given size-n shape.
//
// Guarantees:
//
//   - Every emission is connected, size n+1, and face-reachable from the
//     input by one cube addition.
//   - Applying Candidates to every shape of S(n) covers the complete set
//     of size-(n+1) shapes, before rotation dedup.
package expand
