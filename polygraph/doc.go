// Package polygraph provides a second, independent route to the same
// deduplication problem canon solves: instead of taking the lexicographic
// maximum over 24 explicit rotations of a packed grid, it identifies a
// shape by a depth-first traversal signature over its face-labeled
// adjacency graph and folds rotation-equivalent shapes via a rotation-aware
// descent through a radix trie (Sorter).
//
// What:
//
//   - AdjacencyGraph/FromGrid build the labeled graph from a voxel.Grid.
//   - Tag gives a short descriptive bucket from a shape's connectivity
//     profile, useful for partitioning large runs before sorting.
//   - GetParses enumerates DFS traversal signatures from every node at a
//     chosen starting connectivity.
//   - Sorter.TryAdd inserts a shape if no rotation-equivalent one is
//     already recorded, without ever materializing the 24-rotation orbit.
//
// Why:
//
//   - For large n, the per-candidate memory footprint of a radix trie over
//     short token sequences can be smaller than storing 24 packed byte
//     strings and picking a maximum; this package exists to let callers
//     compare the two approaches rather than replace canon outright.
package polygraph
