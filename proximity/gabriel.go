package proximity

import "gonum.org/v1/gonum/floats"

// Gabriel builds the Gabriel graph: points p and q are connected iff
// the open ball whose diameter is the segment pq contains no other
// point. Equivalently, no point r satisfies d²(p,r)+d²(q,r) < d²(p,q).
//
// Works in any dimension. The Gabriel graph is a supergraph of the
// relative neighborhood graph and a subgraph of the Delaunay
// triangulation.
//
// Complexity: O(n³) time, O(n²) memory.
type Gabriel struct{}

// BuildGraph implements Builder.
func (Gabriel) BuildGraph(points [][]float64) (Adjacency, error) {
	if _, err := pointDim(points); err != nil {
		return nil, err
	}

	n := len(points)
	adj := newAdjacency(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dij := sqDist(points[i], points[j])
			blocked := false
			for k := 0; k < n && !blocked; k++ {
				if k == i || k == j {
					continue
				}
				blocked = sqDist(points[i], points[k])+sqDist(points[j], points[k]) < dij
			}
			if !blocked {
				adj[i][j] = true
				adj[j][i] = true
			}
		}
	}

	return adj, nil
}

// sqDist returns the squared Euclidean distance between a and b.
func sqDist(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)

	return d * d
}
