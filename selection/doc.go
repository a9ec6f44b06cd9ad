// Package selection composes proximity graphs, interclass extraction
// and degree filtering into support-vector selection strategies, and
// enforces the class-coverage invariant on the result.
//
// What:
//
//   - SupportVectors runs the typed pipeline: build graph → extract
//     interclass vertices → filter → coverage check.
//   - TwoPass filters by class-average, rebuilds the graph over the
//     survivors alone, and re-extracts interclass vertices; the graph
//     must be rebuilt because edges are a function of the current point
//     set, not inherited from the original.
//   - OnePass applies a single criterion (interclass-average or zero)
//     directly to the first extraction.
//   - SupportVectorsByName is the thin string adapter for external
//     callers: three names in, same pipeline underneath.
//
// Why:
//
//   - Reducing a training set to its boundary points keeps the
//     classification-relevant structure while discarding interior mass.
//   - Coverage is a correctness property: a result that lost an entire
//     class is a hard failure (ErrCoverageViolation), never a silently
//     smaller label set.
//
// Complexity:
//
//	Dominated by the Builder (O(n³)–O(n⁴) for the bundled builders);
//	extraction and filtering add O(n²). Two-pass builds the graph twice.
//
// Errors:
//
//   - ErrUnknownFilterMethod, ErrCriterion, ErrBuilderNil,
//     ErrLengthMismatch: invalid arguments, reported before any graph
//     work starts.
//   - ErrCoverageViolation: the selection dropped one or more classes;
//     raised only after the full pipeline has run.
//
// The pipeline is deterministic and never mutates its inputs; failures
// are not retryable by construction.
package selection
