// Package assemble implements the predictor assembler (spec.md §4.6): it
// turns a PeakID→instance mapping, together with the channel-bucketed
// peaks/scores and the matched Connections that produced it, into dense
// per-instance tensors (coords, peak_scores, instance_scores) with NaN
// marking unfilled (instance, node) slots, renormalising instance ids to
// consecutive integers 0..M-1 (invariant I5).
package assemble
