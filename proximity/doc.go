// Package proximity builds proximity graphs over real-valued point sets:
// symmetric adjacency relations connecting points that satisfy a
// geometric closeness criterion.
//
// What:
//
//   - Builder is the single capability interface: points in, Adjacency out.
//   - Gabriel connects p,q when the ball with diameter pq is empty.
//   - RelativeNeighborhood connects p,q when no point is closer to both
//     than they are to each other (the "lune" is empty).
//   - Urquhart takes the Delaunay triangulation and drops the longest
//     edge of every triangle.
//   - ByName maps the method names "gabriel", "relative_neighborhood"
//     and "urquhart" to ready Builder values.
//
// Why:
//
//   - Proximity graphs capture local neighborhood structure without a
//     tunable radius or k; edges crossing class boundaries mark the
//     decision boundary for downstream selection (see boundary/).
//
// Complexity:
//
//   - Gabriel:               O(n³) time, O(n²) memory.
//   - RelativeNeighborhood:  O(n³) time, O(n²) memory.
//   - Urquhart:              O(n⁴) time, O(n²) memory (brute-force
//     Delaunay; 2-D points in general position).
//
// Errors:
//
//   - ErrUnknownGraphMethod: ByName received an unrecognized name.
//   - ErrDimension: inconsistent point dimensions, an empty feature
//     vector, or non-2-D input to Urquhart.
//
// Builders never mutate their input and are deterministic for point
// sets without geometric ties.
package proximity
