// Package selection defines the strategy enumeration and sentinel
// errors for support-vector selection.
package selection

import (
	"errors"
	"fmt"
)

// Sentinel errors for selection orchestration.
var (
	// ErrUnknownFilterMethod is returned for an unrecognized strategy name.
	ErrUnknownFilterMethod = errors.New("selection: unknown filter method")

	// ErrCriterion is returned when the one-pass criterion is missing or
	// not usable in a single pass.
	ErrCriterion = errors.New("selection: one-pass criterion must be interclass-average or zero")

	// ErrBuilderNil is returned when no graph builder is supplied.
	ErrBuilderNil = errors.New("selection: graph builder is nil")

	// ErrLengthMismatch is returned when points and labels disagree on length.
	ErrLengthMismatch = errors.New("selection: points and labels must have equal length")

	// ErrCoverageViolation is returned when the selected support vectors
	// omit one or more of the original classes. This is a hard failure:
	// the reduced set no longer represents the classification problem.
	ErrCoverageViolation = errors.New("selection: support vectors do not cover all classes")
)

// FilterMethod selects the orchestration strategy.
type FilterMethod string

const (
	// OnePass applies one criterion directly to the first extraction.
	OnePass FilterMethod = "one-pass"

	// TwoPass filters by class-average, rebuilds the graph over the
	// survivors, and re-extracts interclass vertices.
	TwoPass FilterMethod = "two-pass"
)

// String returns the strategy's wire name.
func (m FilterMethod) String() string { return string(m) }

// ParseFilterMethod maps a strategy name to its FilterMethod value.
// Unknown names yield ErrUnknownFilterMethod wrapping the offending string.
func ParseFilterMethod(name string) (FilterMethod, error) {
	switch m := FilterMethod(name); m {
	case OnePass, TwoPass:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFilterMethod, name)
	}
}
