// Package paf implements the vector-field sampler and pair scorer that
// operate on Part Affinity Fields: per-edge 2-vector images whose values
// approximate a unit vector along a true skeleton edge's direction.
//
// A Field wraps the reshaped [H][W][E]Vec2 tensor (accepting either the
// [H, W, 2E] or [H, W, E, 2] layout on entry, per spec.md §9) together with
// its output stride. SampleLine draws n_points equally spaced samples
// between two peaks, in PAF grid units; ScorePair reduces a sampled line
// into a distance-penalised alignment score and a fraction-correct
// statistic (spec.md §4.1, §4.2).
package paf
