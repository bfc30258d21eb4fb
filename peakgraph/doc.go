// Package peakgraph is a small thread-safe graph keyed by peak.ID,
// adapted from lvlath's core.Graph (string-keyed Vertex/Edge with dual
// RWMutex locking). It is not where instance partitioning's merge
// semantics live — those are the order-dependent map-plus-bitset
// algorithm in package instance, per spec.md §9 — this package exists as
// an independent, on-demand introspection and validation substrate:
// this package's own test builds one from the Connections that
// instance.Partition consumed and checks, via BFS, that peaks Partition
// put in one instance are graph-connected. No non-test code in this
// module imports it.
package peakgraph
