package boundary

import (
	"fmt"

	"github.com/katalvlaran/boundsel/proximity"
)

// Interclass returns the vertices of adj that touch at least one
// neighbor with a different label, together with their labels and
// degrees. The degree of a vertex is the fraction of its neighbors
// sharing its label.
//
// Vertices with no neighbors are skipped entirely: an isolated vertex
// has no degree, not a zero degree. Vertices whose neighbors all share
// their label are interior points and are dropped as well.
//
// The three outputs are parallel, freshly allocated, and exactly the
// length of the retained set; index order follows the input. When no
// vertex has an interclass neighbor all three outputs are empty, which
// is a valid "no boundary" result.
func Interclass(points [][]float64, adj proximity.Adjacency, labels []int) ([][]float64, []int, []float64, error) {
	n := len(points)
	if len(labels) != n || adj.Order() != n {
		return nil, nil, nil, fmt.Errorf("%w: %d points, %d labels, order-%d adjacency",
			ErrLengthMismatch, n, len(labels), adj.Order())
	}

	var (
		bPoints [][]float64
		bLabels []int
		degrees []float64
	)
	for i := 0; i < n; i++ {
		var same, total int
		for _, j := range adj.Neighbors(i) {
			total++
			if labels[j] == labels[i] {
				same++
			}
		}
		if total == 0 || same == total {
			continue
		}
		bPoints = append(bPoints, points[i])
		bLabels = append(bLabels, labels[i])
		degrees = append(degrees, float64(same)/float64(total))
	}

	return bPoints, bLabels, degrees, nil
}
