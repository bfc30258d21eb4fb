// Package posegroup is a multi-person 2D pose-grouping engine: given a set
// of detected body-part peaks and a Part Affinity Field tensor, it scores
// and matches candidate part pairs along each skeleton edge, partitions
// matched edges into per-person instances, and assembles dense per-
// instance coordinate and score tensors.
//
// Group is the single entry point, wiring together five subpackages:
//
//	peak/          — buckets flat peak arrays by body-part channel
//	paf/           — reshapes and samples the Part Affinity Field,
//	                 scores a candidate (source, destination) pair
//	match/         — builds the rectangular score matrix per edge and
//	                 solves it with a Hungarian/Jonker-Volgenant assignment
//	instance/      — partitions matched edges into instance ids and
//	                 filters out instances with too few peaks
//	assemble/      — renders the final Assignment into dense tensors
//
// posegroupcfg holds the skeleton topology (part names, edges, numeric
// thresholds) Group is configured with; cmd/posegroup wires all of the
// above into a YAML-configured CLI.
//
// Quick shape:
//
//	A───B───C
//
// A skeleton edge (A,B) and a skeleton edge (B,C), each scored
// independently, still merge into one three-part instance because both
// touch B — the partitioner chains them (spec.md §4.5).
package posegroup
