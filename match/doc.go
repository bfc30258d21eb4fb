// Package match builds the rectangular score matrix between the source
// and destination peaks of one skeleton edge and solves the resulting
// minimum-cost rectangular assignment (spec.md §4.3).
//
// EdgeType identifies a directed pair of channel indices; Connection is
// the matched-pair result within one EdgeType. Solve is the one place in
// this module whose core algorithm — a rectangular Hungarian / Jonker-
// Volgenant solver — has no grounding in the retrieved example pack (see
// DESIGN.md); everything else here (the Σ/Φ score matrices, the parallel
// per-edge worker pool, the deterministic tie-break policy) is grounded
// on the teacher and its neighbours.
package match
