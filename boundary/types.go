// Package boundary defines the degree-filter criteria and sentinel
// errors shared by extraction and filtering.
package boundary

import (
	"errors"
	"fmt"
)

// Sentinel errors for boundary extraction and filtering.
var (
	// ErrLengthMismatch is returned when parallel inputs disagree on length.
	ErrLengthMismatch = errors.New("boundary: parallel inputs must have equal length")

	// ErrUnknownCriterion is returned for an unrecognized filter criterion.
	ErrUnknownCriterion = errors.New("boundary: unknown filter criterion")
)

// DegreeEpsilon is the tolerance below which a degree is treated as
// numerically zero by the Zero criterion.
const DegreeEpsilon = 1e-6

// Criterion selects the thresholding policy applied by FilterByDegree.
type Criterion string

const (
	// ClassAverage retains vertices whose degree is at or above the mean
	// degree of their own class. The threshold is local to each class.
	ClassAverage Criterion = "class-average"

	// InterclassAverage retains vertices whose degree is at or above the
	// mean degree over all interclass vertices, one global threshold.
	InterclassAverage Criterion = "interclass-average"

	// Zero retains vertices whose degree exceeds DegreeEpsilon, dropping
	// the almost purely cross-class-isolated ones.
	Zero Criterion = "zero"
)

// String returns the criterion's wire name.
func (c Criterion) String() string { return string(c) }

// ParseCriterion maps a criterion name to its Criterion value.
// Unknown names yield ErrUnknownCriterion wrapping the offending string.
func ParseCriterion(name string) (Criterion, error) {
	switch c := Criterion(name); c {
	case ClassAverage, InterclassAverage, Zero:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCriterion, name)
	}
}
