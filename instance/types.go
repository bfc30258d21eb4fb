package instance

import (
	"errors"

	"github.com/kestrelvision/posegroup/match"
	"github.com/kestrelvision/posegroup/peak"
)

// Sentinel errors for the instance package.
var (
	// ErrFractionOutOfRange indicates a fractional min_instance_peaks
	// value outside (0, 1].
	ErrFractionOutOfRange = errors.New("instance: fractional min_instance_peaks must be in (0, 1]")
)

// EdgeGroup pairs an EdgeType with its ordered list of matched
// Connections, as produced by match.MatchAll for one edge. Partition
// processes EdgeGroups, and the Connections within each, in the order
// given — the total ordering spec.md §4.5 requires.
type EdgeGroup struct {
	Type  match.EdgeType
	Conns []match.Connection
}

// Assignment maps PeakID to a non-negative integer instance id. Ids need
// not be contiguous; assemble.Assemble renormalises them (spec.md §3
// InstanceAssignment).
type Assignment struct {
	ids map[peak.ID]int
}

// NewAssignment returns an empty Assignment.
func NewAssignment() *Assignment {
	return &Assignment{ids: make(map[peak.ID]int)}
}

// Lookup reports the instance id assigned to p, if any.
func (a *Assignment) Lookup(p peak.ID) (int, bool) {
	id, ok := a.ids[p]

	return id, ok
}

// Len returns the number of PeakIDs currently assigned.
func (a *Assignment) Len() int { return len(a.ids) }

// Peaks returns every assigned PeakID, in no particular order.
func (a *Assignment) Peaks() []peak.ID {
	out := make([]peak.ID, 0, len(a.ids))
	for p := range a.ids {
		out = append(out, p)
	}

	return out
}

// Clone returns a deep copy of the assignment.
func (a *Assignment) Clone() *Assignment {
	out := NewAssignment()
	for p, id := range a.ids {
		out.ids[p] = id
	}

	return out
}
