package posegroupcfg

import "github.com/kestrelvision/posegroup/match"

// EdgeName is a skeleton edge expressed as a pair of part names, the form
// a YAML/JSON skeleton definition carries before Validate resolves it to
// channel indices.
type EdgeName struct {
	Src, Dst string
}

// Config is the grouping engine's skeleton-and-threshold definition
// (spec.md §6). Build one with New and the WithX options below, then call
// Validate before passing it to posegroup.Group.
type Config struct {
	PartNames []string
	Edges     []EdgeName

	PAFsStride       int
	MaxEdgeLength    float64
	MinEdgeScore     float64
	NPoints          int
	MinInstancePeaks float64

	// Wiring surface (spec.md §6): the four input keys and three output
	// keys a streaming pipeline addresses this engine by, plus whether
	// the PAF tensor survives in the output record.
	PeaksKey          string
	PeakScoresKey     string
	ChannelsKey       string
	PAFsKey           string
	InstancesKey      string
	PeakScoresOutKey  string
	InstanceScoresKey string
	KeepPAFs          bool

	resolvedEdges []match.EdgeType
	resolved      bool
}

// ResolvedEdges returns the channel-index EdgeTypes Validate computed from
// Edges/PartNames. Calling it before Validate succeeds returns nil.
func (c *Config) ResolvedEdges() []match.EdgeType {
	if !c.resolved {
		return nil
	}

	return c.resolvedEdges
}

// NumParts returns len(PartNames), the N of spec.md's tensors.
func (c *Config) NumParts() int { return len(c.PartNames) }
