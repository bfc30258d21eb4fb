// Package instance implements the graph partitioner (spec.md §4.5): it
// assigns PeakIDs to integer instance ids by walking matched edges in
// config order and applying the order-dependent merge rules of §4.5,
// then optionally filters out instances with too few peaks.
//
// The assignment is kept as "a plain mapping plus an on-demand
// per-instance node-set" (spec.md §9's preferred alternative to bare
// union-find): a map[peak.ID]int plus per-instance channel sets, computed
// from that map when a Case 3 connection needs them, used to veto merges that would put two peaks of the same body-part type into
// one instance (invariant I2).
package instance
