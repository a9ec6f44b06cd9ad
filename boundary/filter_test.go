package boundary_test

import (
	"testing"

	"github.com/katalvlaran/boundsel/boundary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// TestParseCriterion verifies the round trip for every known criterion
// and the failure for an unknown one.
func TestParseCriterion(t *testing.T) {
	for _, want := range []boundary.Criterion{
		boundary.ClassAverage,
		boundary.InterclassAverage,
		boundary.Zero,
	} {
		got, err := boundary.ParseCriterion(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := boundary.ParseCriterion("median")
	assert.ErrorIs(t, err, boundary.ErrUnknownCriterion)
	assert.Contains(t, err.Error(), "median", "error must name the unknown criterion")
}

// TestFilterByDegree_ClassAverage verifies that each class is
// thresholded against its own mean, independently of the others.
func TestFilterByDegree_ClassAverage(t *testing.T) {
	points := [][]float64{{0}, {1}, {2}, {3}, {4}}
	labels := []int{0, 0, 0, 1, 1}
	// Class 0 mean = 0.4: keeps 0.5 and 0.6. Class 1 mean = 0.25:
	// keeps 0.3 despite it being below class 0's survivors.
	degrees := []float64{0.1, 0.5, 0.6, 0.2, 0.3}

	fPoints, fLabels, err := boundary.FilterByDegree(points, labels, degrees, boundary.ClassAverage)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{1}, {2}, {4}}, fPoints)
	assert.Equal(t, []int{0, 0, 1}, fLabels)
}

// TestFilterByDegree_ClassAverage_SingleMember verifies that a class
// with one member trivially equals its class mean and is retained.
func TestFilterByDegree_ClassAverage_SingleMember(t *testing.T) {
	points := [][]float64{{0}, {1}, {2}}
	labels := []int{0, 0, 7}
	degrees := []float64{0.2, 0.8, 0.0}

	_, fLabels, err := boundary.FilterByDegree(points, labels, degrees, boundary.ClassAverage)
	require.NoError(t, err)

	assert.Contains(t, fLabels, 7, "singleton class must survive class-average filtering")
}

// TestFilterByDegree_ClassAverage_RaisesClassMean verifies the
// monotonicity property: the mean degree of retained members of a class
// is at least the mean degree of all its members.
func TestFilterByDegree_ClassAverage_RaisesClassMean(t *testing.T) {
	labels := []int{0, 0, 0, 0, 1, 1, 1}
	degrees := []float64{0.05, 0.3, 0.55, 0.9, 0.15, 0.45, 0.75}
	points := make([][]float64, len(labels))
	for i := range points {
		points[i] = []float64{float64(i)}
	}

	fPoints, fLabels, err := boundary.FilterByDegree(points, labels, degrees, boundary.ClassAverage)
	require.NoError(t, err)
	require.NotEmpty(t, fPoints)

	for _, class := range []int{0, 1} {
		var all, kept []float64
		for i, label := range labels {
			if label == class {
				all = append(all, degrees[i])
			}
		}
		for i, label := range fLabels {
			if label == class {
				// Recover the retained degree via the point's identity.
				idx := int(fPoints[i][0])
				kept = append(kept, degrees[idx])
			}
		}
		require.NotEmpty(t, kept, "class %d must keep at least one member", class)
		assert.GreaterOrEqual(t, stat.Mean(kept, nil), stat.Mean(all, nil),
			"retained mean of class %d may not drop", class)
	}
}

// TestFilterByDegree_InterclassAverage verifies the single global
// threshold: one mean over all vertices, regardless of class. The
// fixture degrees are exact binary fractions so the mean is exactly
// 0.5 and the inclusive ≥ comparison is what keeps the 0.5 member.
func TestFilterByDegree_InterclassAverage(t *testing.T) {
	points := [][]float64{{0}, {1}, {2}}
	labels := []int{0, 0, 1}
	// Global mean = 0.5; 0.5 and 0.75 survive, 0.25 does not.
	degrees := []float64{0.25, 0.5, 0.75}

	fPoints, fLabels, err := boundary.FilterByDegree(points, labels, degrees, boundary.InterclassAverage)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{1}, {2}}, fPoints)
	assert.Equal(t, []int{0, 1}, fLabels)
}

// TestFilterByDegree_Zero verifies that only degrees above the epsilon
// tolerance survive, absorbing floating-point noise around zero.
func TestFilterByDegree_Zero(t *testing.T) {
	points := [][]float64{{0}, {1}, {2}, {3}}
	labels := []int{0, 1, 0, 1}
	degrees := []float64{0, 1e-9, 0.25, 0.5}

	fPoints, fLabels, err := boundary.FilterByDegree(points, labels, degrees, boundary.Zero)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{2}, {3}}, fPoints)
	assert.Equal(t, []int{0, 1}, fLabels)
}

// TestFilterByDegree_Zero_Idempotent verifies that applying the Zero
// filter twice equals applying it once.
func TestFilterByDegree_Zero_Idempotent(t *testing.T) {
	points := [][]float64{{0}, {1}, {2}, {3}, {4}}
	labels := []int{0, 1, 0, 1, 0}
	degrees := []float64{0, 0.4, 1e-12, 0.7, 0.1}

	once, onceLabels, err := boundary.FilterByDegree(points, labels, degrees, boundary.Zero)
	require.NoError(t, err)

	// Degrees of survivors, recovered positionally via point identity.
	var surviving []float64
	for _, p := range once {
		surviving = append(surviving, degrees[int(p[0])])
	}

	twice, twiceLabels, err := boundary.FilterByDegree(once, onceLabels, surviving, boundary.Zero)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	assert.Equal(t, onceLabels, twiceLabels)
}

// TestFilterByDegree_UnknownCriterion verifies the InvalidArgument path.
func TestFilterByDegree_UnknownCriterion(t *testing.T) {
	points := [][]float64{{0}}
	_, _, err := boundary.FilterByDegree(points, []int{0}, []float64{0.5}, boundary.Criterion("harmonic"))
	assert.ErrorIs(t, err, boundary.ErrUnknownCriterion)
	assert.Contains(t, err.Error(), "harmonic")
}

// TestFilterByDegree_LengthMismatch verifies misaligned inputs fail.
func TestFilterByDegree_LengthMismatch(t *testing.T) {
	points := [][]float64{{0}, {1}}
	_, _, err := boundary.FilterByDegree(points, []int{0}, []float64{0.5, 0.5}, boundary.Zero)
	assert.ErrorIs(t, err, boundary.ErrLengthMismatch)
}

// TestFilterByDegree_EmptyInput verifies that an empty triple is valid
// and yields an empty result for every criterion.
func TestFilterByDegree_EmptyInput(t *testing.T) {
	for _, c := range []boundary.Criterion{
		boundary.ClassAverage,
		boundary.InterclassAverage,
		boundary.Zero,
	} {
		fPoints, fLabels, err := boundary.FilterByDegree(nil, nil, nil, c)
		require.NoError(t, err, "criterion %s", c)
		assert.Empty(t, fPoints)
		assert.Empty(t, fLabels)
	}
}
