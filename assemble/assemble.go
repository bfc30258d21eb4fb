package assemble

import (
	"fmt"
	"math"
	"sort"

	"github.com/kestrelvision/posegroup/instance"
	"github.com/kestrelvision/posegroup/peak"
)

// Assemble turns a finished instance.Assignment, together with the
// channel-bucketed peaks that produced it and the EdgeGroups that scored
// them, into a Result of dense per-instance tensors (spec.md §4.6).
//
// peaks is indexed [channel][index], matching the peak.Bucket output the
// Assignment's PeakIDs were drawn from. groups is the same slice of
// EdgeGroups passed to instance.Partition to build assignment.
//
// Assemble returns ErrInvariantViolation if a scored connection's two
// endpoints are both present in assignment but in different instances
// (spec.md §7 InvariantError). This happens when assignment was not
// produced by instance.Partition over these same groups, and also for
// Partition's own output when a later Case 3 overwrite moved one endpoint
// of an earlier connection into another instance without merging the
// rest of its old instance.
func Assemble(peaks [][]peak.Peak, groups []instance.EdgeGroup, assignment *instance.Assignment) (Result, error) {
	ids := uniqueSortedInstanceIDs(assignment)
	m := len(ids)
	n := len(peaks)

	rho := make(map[int]int, m)
	for i, id := range ids {
		rho[id] = i
	}

	instanceScores := make([]float64, m)
	filledCount := make([]int, m)

	for _, g := range groups {
		for _, c := range g.Conns {
			src := peak.ID{Node: g.Type.Src, Index: c.Src}
			dst := peak.ID{Node: g.Type.Dst, Index: c.Dst}

			srcID, srcOK := assignment.Lookup(src)
			if !srcOK {
				continue
			}
			if dstID, dstOK := assignment.Lookup(dst); dstOK && dstID != srcID {
				return Result{}, fmt.Errorf("%w: src=%v (instance %d), dst=%v (instance %d)",
					ErrInvariantViolation, src, srcID, dst, dstID)
			}

			instanceScores[rho[srcID]] += c.Score
		}
	}

	coords := make([][]Point, m)
	peakScores := make([][]float64, m)
	for i := 0; i < m; i++ {
		coords[i] = make([]Point, n)
		peakScores[i] = make([]float64, n)
		for c := 0; c < n; c++ {
			coords[i][c] = Point{X: math.NaN(), Y: math.NaN()}
			peakScores[i][c] = math.NaN()
		}
	}

	for _, p := range assignment.Peaks() {
		id, _ := assignment.Lookup(p)
		i := rho[id]

		if p.Node < 0 || p.Node >= n || p.Index < 0 || p.Index >= len(peaks[p.Node]) {
			continue
		}
		src := peaks[p.Node][p.Index]

		coords[i][p.Node] = Point{X: src.X, Y: src.Y}
		peakScores[i][p.Node] = src.Score
		filledCount[i]++
	}

	instanceMeans := make([]float64, m)
	for i := 0; i < m; i++ {
		if filledCount[i] > 0 {
			instanceMeans[i] = instanceScores[i] / float64(filledCount[i])
		}
	}

	return Result{
		Coords:         coords,
		PeakScores:     peakScores,
		InstanceScores: instanceScores,
		InstanceMeans:  instanceMeans,
	}, nil
}

// uniqueSortedInstanceIDs returns the distinct instance ids present in a,
// sorted ascending — the position-index function ρ of spec.md §4.6 maps
// each id to its index in this slice, renormalising to consecutive
// 0..M-1 ids (invariant I5).
func uniqueSortedInstanceIDs(a *instance.Assignment) []int {
	seen := make(map[int]struct{})
	for _, p := range a.Peaks() {
		id, _ := a.Lookup(p)
		seen[id] = struct{}{}
	}

	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}
