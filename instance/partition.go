package instance

import "github.com/kestrelvision/posegroup/peak"

// Partition assigns PeakIDs to instance ids by walking groups (and the
// Connections within each, in order) and applying the merge rules of
// spec.md §4.5:
//
//	Case 1 — neither endpoint known: allocate a fresh instance id
//	  = 1 + max(current ids) (-1 if empty) and assign both.
//	Case 2 — exactly one endpoint known: assign the unknown endpoint to
//	  the other's instance.
//	Case 3 — both endpoints known:
//	  (a) Unconditionally reassign v to u's instance id.
//	  (b) Let U be the set of channel indices present in u's instance and
//	      V the set present in v's instance, both read AFTER (a) — so U
//	      includes the channel v just brought over, and V is only what's
//	      left of v's original instance once v has moved out of it. If
//	      U ∩ V = ∅, merge: reassign every remaining PeakID from v's
//	      original instance to u's instance. If U ∩ V ≠ ∅, the overwrite
//	      in (a) stands but other peaks of v's old instance remain on
//	      their old id (spec.md §4.5 rationale: this prevents a merge
//	      that would violate invariant I2, but accepts the single-peak
//	      overwrite as a deliberate, order-dependent heuristic).
//
// Partition does not mutate its input and returns a fresh Assignment. Ids
// need not be contiguous; assemble.Assemble maps them to 0..M-1.
func Partition(groups []EdgeGroup) *Assignment {
	a := NewAssignment()
	maxID := -1

	for _, g := range groups {
		for _, c := range g.Conns {
			u := peak.ID{Node: g.Type.Src, Index: c.Src}
			v := peak.ID{Node: g.Type.Dst, Index: c.Dst}

			uid, uKnown := a.ids[u]
			vid, vKnown := a.ids[v]

			switch {
			case !uKnown && !vKnown:
				maxID++
				a.ids[u] = maxID
				a.ids[v] = maxID

			case uKnown && !vKnown:
				a.ids[v] = uid

			case !uKnown && vKnown:
				a.ids[u] = vid

			default:
				partitionCase3(a, u, uid, v, vid)
			}
		}
	}

	return a
}

// partitionCase3 implements spec.md §4.5 Case 3 (both endpoints already
// assigned) for one connection (u, v).
func partitionCase3(a *Assignment, u peak.ID, uid int, v peak.ID, vid int) {
	if uid == vid {
		// Already the same instance; nothing left to merge.
		return
	}

	// Capture v's original instance membership before the overwrite, so
	// the merge loop below still has the full member list to walk.
	origVMembers := instancePeaks(a, vid)

	// (a) Unconditionally reassign v to u's instance.
	a.ids[v] = uid

	// (b) U and V are read AFTER (a): U is u's instance including the
	// just-moved v, V is whatever remains of v's original instance (v
	// itself has already left it).
	uChannels := channelSet(instancePeaks(a, uid))
	vChannels := channelSet(instancePeaks(a, vid))

	if !intersects(uChannels, vChannels) {
		// Node-disjoint: merge the rest of v's original instance too.
		for _, p := range origVMembers {
			if p == v {
				continue // already moved in step (a)
			}
			a.ids[p] = uid
		}
	}
	// Else: overwrite of v alone stands; other members of vid keep vid.
}

func instancePeaks(a *Assignment, id int) []peak.ID {
	var out []peak.ID
	for p, pid := range a.ids {
		if pid == id {
			out = append(out, p)
		}
	}

	return out
}

func channelSet(peaks []peak.ID) map[int]struct{} {
	set := make(map[int]struct{}, len(peaks))
	for _, p := range peaks {
		set[p.Node] = struct{}{}
	}

	return set
}

func intersects(a, b map[int]struct{}) bool {
	for ch := range a {
		if _, ok := b[ch]; ok {
			return true
		}
	}

	return false
}
