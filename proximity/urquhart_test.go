package proximity_test

import (
	"testing"

	"github.com/katalvlaran/boundsel/proximity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUrquhart_Triangle verifies that a single triangle loses exactly
// its longest edge.
func TestUrquhart_Triangle(t *testing.T) {
	// Right triangle with legs 4 and 3; the hypotenuse 1-2 is longest.
	points := [][]float64{{0, 0}, {4, 0}, {0, 3}}

	adj, err := proximity.Urquhart{}.BuildGraph(points)
	require.NoError(t, err)

	assert.True(t, adj[0][1], "leg 0-1 survives")
	assert.True(t, adj[0][2], "leg 0-2 survives")
	assert.False(t, adj[1][2], "hypotenuse must be dropped")
}

// TestUrquhart_TwoPoints verifies that a pair yields the single segment.
func TestUrquhart_TwoPoints(t *testing.T) {
	adj, err := proximity.Urquhart{}.BuildGraph([][]float64{{0, 0}, {1, 1}})
	require.NoError(t, err)
	assert.True(t, adj[0][1])
}

// TestUrquhart_RequiresTwoD verifies that non-2-D input is rejected
// with ErrDimension.
func TestUrquhart_RequiresTwoD(t *testing.T) {
	points := [][]float64{{0, 0, 0}, {1, 1, 1}, {2, 0, 1}}

	_, err := proximity.Urquhart{}.BuildGraph(points)
	assert.ErrorIs(t, err, proximity.ErrDimension)
}

// TestUrquhart_SubsetOfDelaunayEdges spot-checks a two-triangle strip:
// points forming two adjacent triangles keep their short edges and drop
// each triangle's longest edge.
func TestUrquhart_SubsetOfDelaunayEdges(t *testing.T) {
	// Strip: 0=(0,0), 1=(2,0), 2=(1,1.5), 3=(3,1.5).
	// Delaunay: triangles {0,1,2} and {1,2,3}? The shared edge is 1-2.
	points := [][]float64{{0, 0}, {2, 0}, {1, 1.5}, {3, 1.5}}

	adj, err := proximity.Urquhart{}.BuildGraph(points)
	require.NoError(t, err)

	// Longest edge of {0,1,2} is 0-1 (length 2 vs. ~1.80); longest of
	// {1,2,3} is 2-3 (length 2 vs. ~1.80). Both must be gone.
	assert.False(t, adj[0][1], "longest edge of left triangle dropped")
	assert.False(t, adj[2][3], "longest edge of right triangle dropped")
	assert.True(t, adj[0][2], "short edge 0-2 survives")
	assert.True(t, adj[1][3], "short edge 1-3 survives")
	assert.True(t, adj[1][2], "shared edge 1-2 survives")
}
