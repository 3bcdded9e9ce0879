// Package matching computes exact minimum-weight perfect matchings on the
// active vertex set of a weighted graph.
//
// Two engines are provided:
//
//   - Blossom Edmonds' primal-dual blossom algorithm in maximum-cardinality
//     mode. Edge weights w are transformed into maxW - w + 1, so a maximum
//     cardinality, maximum weight matching of the transformed graph is a
//     minimum weight perfect matching of the original.
//
//   - Complexity: O(n³)
//
//   - Exhaustive bitmask dynamic programming over subsets.
//
//   - Complexity: O(n·2ⁿ), n ≤ MaxExhaustiveVertices
//
//   - Tie-break: lexicographic on vertex indices (the lowest vertex takes
//     the lowest partner among optimal choices).
//
// Both engines quantize weights to int64 units (Options.Scale units per
// 1.0 of weight) so that every comparison is exact and runs are
// reproducible.
//
// Missing edges: the Graph view reports an edge as absent (ok==false) when
// it was removed. Absent edges are never used. If no perfect matching exists
// on the present edges, ErrNoPerfectMatching is returned.
package matching
