package boundary

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// FilterByDegree reduces (points, labels, degrees) to the subset
// retained under the given criterion and returns the surviving points
// and labels.
//
// Degrees are assumed to come from Interclass: every entry belongs to a
// vertex with at least one neighbor. The filter does not re-check that
// contract.
//
// Thresholds are inclusive (degree ≥ mean survives), so a class with a
// single member always keeps it under ClassAverage. Empty input yields
// empty output for every criterion.
func FilterByDegree(points [][]float64, labels []int, degrees []float64, criterion Criterion) ([][]float64, []int, error) {
	if len(labels) != len(points) || len(degrees) != len(points) {
		return nil, nil, fmt.Errorf("%w: %d points, %d labels, %d degrees",
			ErrLengthMismatch, len(points), len(labels), len(degrees))
	}

	var keep []bool
	switch criterion {
	case ClassAverage:
		keep = classAverageMask(labels, degrees)
	case InterclassAverage:
		keep = globalAverageMask(degrees)
	case Zero:
		keep = zeroMask(degrees)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, string(criterion))
	}

	var (
		fPoints [][]float64
		fLabels []int
	)
	for i, ok := range keep {
		if ok {
			fPoints = append(fPoints, points[i])
			fLabels = append(fLabels, labels[i])
		}
	}

	return fPoints, fLabels, nil
}

// classAverageMask keeps entries whose degree is at or above the mean
// degree of their own class.
func classAverageMask(labels []int, degrees []float64) []bool {
	byClass := make(map[int][]float64)
	for i, label := range labels {
		byClass[label] = append(byClass[label], degrees[i])
	}
	means := make(map[int]float64, len(byClass))
	for label, classDegrees := range byClass {
		means[label] = stat.Mean(classDegrees, nil)
	}

	keep := make([]bool, len(labels))
	for i, label := range labels {
		keep[i] = degrees[i] >= means[label]
	}

	return keep
}

// globalAverageMask keeps entries whose degree is at or above the mean
// over all interclass vertices, one uniform threshold.
func globalAverageMask(degrees []float64) []bool {
	keep := make([]bool, len(degrees))
	if len(degrees) == 0 {
		return keep
	}
	mean := stat.Mean(degrees, nil)
	for i, d := range degrees {
		keep[i] = d >= mean
	}

	return keep
}

// zeroMask keeps entries whose degree exceeds DegreeEpsilon.
func zeroMask(degrees []float64) []bool {
	keep := make([]bool, len(degrees))
	for i, d := range degrees {
		keep[i] = d > DegreeEpsilon
	}

	return keep
}
