package instance

import "math"

// ResolveThreshold resolves a configured min_instance_peaks value into an
// absolute peak-count threshold, per spec.md §4.5: if m is fractional
// (0 < m <= 1), the threshold is ⌊m·n⌋ where n is the number of distinct
// node_ind values (channels) configured. Values <= 0 resolve to 0 (no
// filtering); values > 1 are treated as already-absolute integer
// thresholds (floored).
func ResolveThreshold(m float64, n int) (int, error) {
	if m <= 0 {
		return 0, nil
	}
	if m <= 1 {
		return int(math.Floor(m * float64(n))), nil
	}

	return int(math.Floor(m)), nil
}

// Filter drops every PeakID whose instance has strictly fewer than
// threshold peaks, per spec.md §4.5's optional filter. threshold <= 0 is
// a no-op (matches the whole assignment unchanged).
//
// Filter does not mutate its input and returns a fresh Assignment.
func Filter(a *Assignment, threshold int) *Assignment {
	if threshold <= 0 {
		return a.Clone()
	}

	counts := make(map[int]int)
	for _, id := range a.ids {
		counts[id]++
	}

	out := NewAssignment()
	for p, id := range a.ids {
		if counts[id] >= threshold {
			out.ids[p] = id
		}
	}

	return out
}
