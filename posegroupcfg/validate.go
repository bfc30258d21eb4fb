package posegroupcfg

import (
	"math"

	"github.com/kestrelvision/posegroup/match"
)

// Validate resolves Edges against PartNames into channel-index EdgeTypes
// and runs the ConfigError taxonomy of spec.md §7, in the priority order
// documented in errors.go. On success, ResolvedEdges becomes available.
func (c *Config) Validate() error {
	if len(c.PartNames) == 0 {
		return ErrNoPartNames
	}

	index := make(map[string]int, len(c.PartNames))
	for i, name := range c.PartNames {
		index[name] = i
	}

	resolved := make([]match.EdgeType, 0, len(c.Edges))
	seen := make(map[match.EdgeType]struct{}, len(c.Edges))
	for _, e := range c.Edges {
		srcIdx, ok := index[e.Src]
		if !ok {
			return configErrorf(ErrUnknownPartName, "%q", e.Src)
		}
		dstIdx, ok := index[e.Dst]
		if !ok {
			return configErrorf(ErrUnknownPartName, "%q", e.Dst)
		}

		et := match.EdgeType{Src: srcIdx, Dst: dstIdx}
		if _, dup := seen[et]; dup {
			return configErrorf(ErrDuplicateEdge, "(%s, %s)", e.Src, e.Dst)
		}
		seen[et] = struct{}{}
		resolved = append(resolved, et)
	}

	if c.PAFsStride <= 0 {
		return configErrorf(ErrNonPositiveStride, "got %d", c.PAFsStride)
	}
	if c.NPoints <= 0 {
		return configErrorf(ErrNonPositiveNPoints, "got %d", c.NPoints)
	}
	// Whole numbers are absolute counts (<= 0 means no filtering) and
	// values in (0, 1] are fractions of N (instance.ResolveThreshold); a
	// non-integer outside (0, 1] is neither.
	m := c.MinInstancePeaks
	if m != math.Floor(m) && (m < 0 || m > 1) {
		return configErrorf(ErrFractionOutOfRange, "got %v", m)
	}

	c.resolvedEdges = resolved
	c.resolved = true

	return nil
}
