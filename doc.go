// Package boundsel reduces a labeled point set to its decision-boundary
// subset — the "support vectors" — using proximity-graph connectivity
// between classes as the boundary signal.
//
// 🚀 What is boundsel?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Proximity graphs: Gabriel, relative neighborhood, Urquhart
//		• Boundary analysis: interclass vertices & same-class purity degrees
//		• Degree filters: class-average, interclass-average, zero
//		• Selection strategies: one-pass and two-pass orchestration
//
// ✨ Why choose boundsel?
//
//   - Value pipeline – inputs are never mutated, every stage returns fresh slices
//   - Deterministic – identical inputs always give identical outputs
//   - Explicit errors – sentinel errors per package, matched with errors.Is
//   - Class coverage guaranteed – dropping a whole class is a hard failure
//
// Everything is organized under three subpackages:
//
//	proximity/ — graph builders behind a single Builder interface
//	boundary/  — interclass vertex extraction & degree filtering
//	selection/ — one-pass / two-pass strategies & the coverage invariant
//
// Quick pipeline sketch:
//
//	points+labels ─→ proximity graph ─→ interclass vertices+degrees
//	              ─→ degree filter   ─→ coverage check ─→ support vectors
//
// A "support vector" here is a retained boundary point; the term is a
// loose analogy to SVM margin vectors, not an implementation of them.
package boundsel
