// Package boundary measures interclass connectivity in a proximity
// graph and filters boundary candidates by their same-class purity
// degree.
//
// What:
//
//   - Interclass extracts the vertices touching at least one
//     different-class neighbor, each annotated with its degree:
//     same-class neighbors / all neighbors, a value in [0, 1).
//   - FilterByDegree reduces a (points, labels, degrees) triple under
//     one of three criteria: ClassAverage, InterclassAverage, Zero.
//
// Why:
//
//   - Interior points (no different-class neighbor) carry no boundary
//     information and are dropped outright; thresholding the remaining
//     degrees separates clean boundary points from noise.
//
// Degree semantics:
//
//   - Neighborless vertices have no degree at all — they are skipped,
//     never reported as zero.
//   - Every extracted vertex therefore has ≥1 neighbor and ≥1
//     differently-labeled neighbor, so its degree is strictly below 1.
//
// Complexity:
//
//   - Interclass:      O(n²) over the adjacency relation, O(n) memory.
//   - FilterByDegree:  O(n) time (one or two sweeps), O(n) memory.
//
// Errors:
//
//   - ErrLengthMismatch: points, labels, degrees or adjacency disagree
//     on length.
//   - ErrUnknownCriterion: FilterByDegree received an unrecognized
//     criterion.
//
// All outputs are freshly allocated, parallel, and compacted to the
// retained set; inputs are never mutated.
package boundary
