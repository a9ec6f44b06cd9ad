package proximity

// RelativeNeighborhood builds the relative neighborhood graph (RNG):
// points p and q are connected iff no point r is strictly closer to
// both of them than they are to each other, i.e. the "lune"
// B(p, d(p,q)) ∩ B(q, d(p,q)) contains no other point.
//
// Works in any dimension. The RNG is a subgraph of the Gabriel graph
// and a supergraph of the Euclidean minimum spanning tree, so it is
// connected for any finite point set.
//
// Complexity: O(n³) time, O(n²) memory.
type RelativeNeighborhood struct{}

// BuildGraph implements Builder.
func (RelativeNeighborhood) BuildGraph(points [][]float64) (Adjacency, error) {
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
				blocked = sqDist(points[i], points[k]) < dij && sqDist(points[j], points[k]) < dij
			}
			if !blocked {
				adj[i][j] = true
				adj[j][i] = true
			}
		}
	}

	return adj, nil
}
