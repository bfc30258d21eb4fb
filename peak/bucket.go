package peak

import "sort"

// Bucket groups a flat list of detected peaks by channel index, producing
// N ordered lists (one per body-part type). Within each channel's list,
// peaks retain their original relative order (a stable sort by channel),
// per spec.md §4.4: "the j-th entry of channel c's list has peak_ind = j
// in any later EdgeConnection touching channel c." This defines the
// identity used by PeakID.
//
// flatX, flatY, flatScores, and flatChannels must all have equal length;
// flatChannels entries must lie in [0, numChannels).
//
// Complexity: O(P log P) for the stable sort, O(P) extra space.
func Bucket(flatX, flatY, flatScores []float64, flatChannels []int, numChannels int) ([][]Peak, error) {
	p := len(flatX)
	if len(flatY) != p || len(flatScores) != p || len(flatChannels) != p {
		return nil, ErrLengthMismatch
	}

	order := make([]int, p)
	for i := range order {
		order[i] = i
	}
	for _, c := range flatChannels {
		if c < 0 || c >= numChannels {
			return nil, ErrChannelOutOfRange
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return flatChannels[order[i]] < flatChannels[order[j]]
	})

	buckets := make([][]Peak, numChannels)
	for _, i := range order {
		c := flatChannels[i]
		buckets[c] = append(buckets[c], Peak{
			X:       flatX[i],
			Y:       flatY[i],
			Score:   flatScores[i],
			Channel: c,
		})
	}

	return buckets, nil
}

// Scores extracts the per-peak detection score slice from a bucketed
// channel list, in the same channel-then-index order as Bucket produced
// it. Useful for callers that want peaks[c][k].Score as a flat []float64
// for a single channel (e.g. the assemble package).
func Scores(bucket []Peak) []float64 {
	out := make([]float64, len(bucket))
	for i, pk := range bucket {
		out[i] = pk.Score
	}

	return out
}
