package proximity

import (
	"fmt"
	"math"
)

// Urquhart builds the Urquhart graph: the Delaunay triangulation with
// the longest edge of every triangle removed. It approximates the
// relative neighborhood graph at a fraction of the exact cost in the
// classic formulation; here the Delaunay step itself is brute force,
// so the value of this builder is its distinct edge set, not speed.
//
// Restricted to 2-D points in general position (no three collinear,
// no four cocircular). Two points yield the single segment between
// them; degenerate all-collinear sets yield no triangles and therefore
// no edges.
//
// Complexity: O(n⁴) time, O(n²) memory.
type Urquhart struct{}

// BuildGraph implements Builder.
func (Urquhart) BuildGraph(points [][]float64) (Adjacency, error) {
	dim, err := pointDim(points)
	if err != nil {
		return nil, err
	}
	n := len(points)
	if n > 0 && dim != 2 {
		return nil, fmt.Errorf("%w: urquhart requires 2-D points, got %d-D", ErrDimension, dim)
	}

	adj := newAdjacency(n)
	if n == 2 {
		adj[0][1], adj[1][0] = true, true

		return adj, nil
	}

	type edge struct{ u, v int }
	longest := make(map[edge]bool)

	// A triangle belongs to the Delaunay triangulation iff its
	// circumcircle contains no other point.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				cx, cy, r2, ok := circumcircle(points[i], points[j], points[k])
				if !ok {
					continue
				}
				empty := true
				for m := 0; m < n && empty; m++ {
					if m == i || m == j || m == k {
						continue
					}
					dx, dy := points[m][0]-cx, points[m][1]-cy
					empty = dx*dx+dy*dy >= r2
				}
				if !empty {
					continue
				}

				adj[i][j], adj[j][i] = true, true
				adj[i][k], adj[k][i] = true, true
				adj[j][k], adj[k][j] = true, true

				dij := sqDist(points[i], points[j])
				dik := sqDist(points[i], points[k])
				djk := sqDist(points[j], points[k])
				switch {
				case dij >= dik && dij >= djk:
					longest[edge{i, j}] = true
				case dik >= djk:
					longest[edge{i, k}] = true
				default:
					longest[edge{j, k}] = true
				}
			}
		}
	}

	for e := range longest {
		adj[e.u][e.v], adj[e.v][e.u] = false, false
	}

	return adj, nil
}

// circumcircle returns the center and squared radius of the circle
// through a, b, c. ok is false for (near-)collinear triples.
func circumcircle(a, b, c []float64) (cx, cy, r2 float64, ok bool) {
	d := 2 * (a[0]*(b[1]-c[1]) + b[0]*(c[1]-a[1]) + c[0]*(a[1]-b[1]))
	if math.Abs(d) < 1e-12 {
		return 0, 0, 0, false
	}
	a2 := a[0]*a[0] + a[1]*a[1]
	b2 := b[0]*b[0] + b[1]*b[1]
	c2 := c[0]*c[0] + c[1]*c[1]
	cx = (a2*(b[1]-c[1]) + b2*(c[1]-a[1]) + c2*(a[1]-b[1])) / d
	cy = (a2*(c[0]-b[0]) + b2*(a[0]-c[0]) + c2*(b[0]-a[0])) / d
	dx, dy := a[0]-cx, a[1]-cy

	return cx, cy, dx*dx + dy*dy, true
}
