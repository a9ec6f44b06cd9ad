package selection

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/boundsel/boundary"
	"github.com/katalvlaran/boundsel/proximity"
)

// SupportVectors selects the boundary subset of (points, labels) using
// the given proximity-graph builder and strategy.
//
// Pipeline: build the graph over all points, extract interclass
// vertices with their degrees, then
//
//   - TwoPass: filter by class-average, rebuild the graph over the
//     surviving points alone, and re-extract interclass vertices; the
//     second extraction's points and labels are the result (its degrees
//     are discarded). criterion is ignored.
//   - OnePass: apply criterion (InterclassAverage or Zero) to the first
//     extraction; ClassAverage is rejected with ErrCriterion since it
//     only tightens the boundary inside the two-pass composition.
//
// All argument validation happens before any graph is built. After the
// pipeline runs, the distinct labels of the result must equal the
// distinct labels of the input; otherwise ErrCoverageViolation is
// returned, naming the missing classes.
func SupportVectors(points [][]float64, labels []int, builder proximity.Builder, method FilterMethod, criterion boundary.Criterion) ([][]float64, []int, error) {
	if builder == nil {
		return nil, nil, ErrBuilderNil
	}
	if len(points) != len(labels) {
		return nil, nil, fmt.Errorf("%w: %d points, %d labels", ErrLengthMismatch, len(points), len(labels))
	}
	switch method {
	case TwoPass:
		// criterion is not consulted.
	case OnePass:
		if criterion != boundary.InterclassAverage && criterion != boundary.Zero {
			return nil, nil, fmt.Errorf("%w: got %q", ErrCriterion, string(criterion))
		}
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownFilterMethod, string(method))
	}

	adj, err := builder.BuildGraph(points)
	if err != nil {
		return nil, nil, err
	}
	bPoints, bLabels, degrees, err := boundary.Interclass(points, adj, labels)
	if err != nil {
		return nil, nil, err
	}

	var svPoints [][]float64
	var svLabels []int
	switch method {
	case TwoPass:
		fPoints, fLabels, ferr := boundary.FilterByDegree(bPoints, bLabels, degrees, boundary.ClassAverage)
		if ferr != nil {
			return nil, nil, ferr
		}
		// Edges are a function of the current point set; the shrunken
		// set gets a fresh graph before the second measurement.
		adj, err = builder.BuildGraph(fPoints)
		if err != nil {
			return nil, nil, err
		}
		svPoints, svLabels, _, err = boundary.Interclass(fPoints, adj, fLabels)
		if err != nil {
			return nil, nil, err
		}
	case OnePass:
		svPoints, svLabels, err = boundary.FilterByDegree(bPoints, bLabels, degrees, criterion)
		if err != nil {
			return nil, nil, err
		}
	}

	if missing := missingClasses(labels, svLabels); len(missing) > 0 {
		return nil, nil, fmt.Errorf("%w: missing %v", ErrCoverageViolation, missing)
	}

	return svPoints, svLabels, nil
}

// SupportVectorsByName is the string-keyed adapter over SupportVectors
// for external callers: graphMethod selects the proximity builder,
// filterMethod the strategy, and criterion the one-pass policy
// (ignored for two-pass). All three names are resolved before any
// graph work starts.
func SupportVectorsByName(points [][]float64, labels []int, graphMethod, filterMethod, criterion string) ([][]float64, []int, error) {
	builder, err := proximity.ByName(graphMethod)
	if err != nil {
		return nil, nil, err
	}
	method, err := ParseFilterMethod(filterMethod)
	if err != nil {
		return nil, nil, err
	}
	var c boundary.Criterion
	if method == OnePass {
		if c, err = boundary.ParseCriterion(criterion); err != nil {
			return nil, nil, err
		}
	}

	return SupportVectors(points, labels, builder, method, c)
}

// missingClasses returns the classes present in original but absent
// from selected, in ascending order.
func missingClasses(original, selected []int) []int {
	seen := make(map[int]bool, len(selected))
	for _, label := range selected {
		seen[label] = true
	}
	var missing []int
	reported := make(map[int]bool)
	for _, label := range original {
		if !seen[label] && !reported[label] {
			missing = append(missing, label)
			reported[label] = true
		}
	}
	sort.Ints(missing)

	return missing
}
