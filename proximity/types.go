// Package proximity defines the Adjacency relation, the Builder
// capability interface, and sentinel errors shared by all graph builders.
package proximity

import (
	"errors"
	"fmt"
)

// Sentinel errors for proximity-graph construction.
var (
	// ErrUnknownGraphMethod is returned by ByName for an unrecognized method name.
	ErrUnknownGraphMethod = errors.New("proximity: unknown graph method")

	// ErrDimension is returned when point dimensions are inconsistent,
	// a point has no features, or a builder does not support the dimension.
	ErrDimension = errors.New("proximity: invalid point dimension")
)

// Method names accepted by ByName.
const (
	MethodGabriel              = "gabriel"
	MethodRelativeNeighborhood = "relative_neighborhood"
	MethodUrquhart             = "urquhart"
)

// Adjacency is a symmetric boolean relation over point indices.
// Adjacency[i][j] reports whether points i and j are connected; the
// diagonal is always false. It is produced by a Builder and consumed
// read-only downstream.
type Adjacency [][]bool

// Order returns the number of vertices in the relation.
func (a Adjacency) Order() int { return len(a) }

// Neighbors returns the indices adjacent to vertex i, in ascending order.
func (a Adjacency) Neighbors(i int) []int {
	var nbrs []int
	for j, connected := range a[i] {
		if connected {
			nbrs = append(nbrs, j)
		}
	}

	return nbrs
}

// Builder constructs a proximity graph over a point set.
// Implementations must return a symmetric relation with a false
// diagonal and must not retain or mutate the input.
type Builder interface {
	// BuildGraph returns the adjacency relation over points.
	BuildGraph(points [][]float64) (Adjacency, error)
}

// ByName resolves a method name to its Builder. Unknown names yield
// ErrUnknownGraphMethod wrapping the offending string.
func ByName(name string) (Builder, error) {
	switch name {
	case MethodGabriel:
		return Gabriel{}, nil
	case MethodRelativeNeighborhood:
		return RelativeNeighborhood{}, nil
	case MethodUrquhart:
		return Urquhart{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGraphMethod, name)
	}
}

// newAdjacency allocates an n×n relation with no edges.
func newAdjacency(n int) Adjacency {
	adj := make(Adjacency, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}

	return adj
}

// pointDim validates that all points share a single dimension ≥ 1 and
// returns it. An empty point set is valid and has dimension 0.
func pointDim(points [][]float64) (int, error) {
	if len(points) == 0 {
		return 0, nil
	}
	dim := len(points[0])
	if dim == 0 {
		return 0, fmt.Errorf("%w: point 0 has no features", ErrDimension)
	}
	for i, p := range points {
		if len(p) != dim {
			return 0, fmt.Errorf("%w: point %d has %d features, want %d", ErrDimension, i, len(p), dim)
		}
	}

	return dim, nil
}
