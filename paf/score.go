package paf

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// PairScore is the result of reducing a sampled PAF line into a single
// pair-level judgement (spec.md §4.2).
type PairScore struct {
	// FinalScore is mean_score + penalty: the distance-penalised mean
	// alignment of the sampled PAF vectors against the candidate edge
	// direction.
	FinalScore float64

	// FractionCorrect is the fraction of samples whose alignment strictly
	// exceeds the configured min_edge_score threshold.
	FractionCorrect float64
}

// ScorePair reduces nPoints sampled PAF vectors L into a PairScore for the
// candidate edge from source peak (psX, psY) to destination peak (pdX,
// pdY), given the configured max_edge_length D and min_edge_score t.
//
// Let v = p_d - p_s and r = ‖v‖₂. If r = 0 the pair score is undefined
// (spec.md §9 Open Questions): ScorePair returns ErrZeroLengthEdge rather
// than silently dividing by zero; callers must filter zero-length pairs
// before reaching this function, or treat the error as "never matched".
//
// Otherwise u = v / r, alignment a_k = L_k · u, and:
//
//	mean_score  = mean_k a_k
//	penalty     = min(D/r - 1, 0)      // penalises long edges only
//	final_score = mean_score + penalty
//	fraction_correct = fraction of a_k strictly greater than t
//
// Complexity: O(len(samples)) time, O(1) extra space.
func ScorePair(samples []Vec2, psX, psY, pdX, pdY, maxEdgeLength, minEdgeScore float64) (PairScore, error) {
	dx := pdX - psX
	dy := pdY - psY
	r := math.Hypot(dx, dy)
	if r == 0 {
		return PairScore{}, ErrZeroLengthEdge
	}
	ux, uy := dx/r, dy/r

	alignments := make([]float64, len(samples))
	for i, s := range samples {
		alignments[i] = s.X*ux + s.Y*uy
	}

	meanScore := 0.0
	if len(alignments) > 0 {
		meanScore = floats.Sum(alignments) / float64(len(alignments))
	}

	penalty := math.Min(maxEdgeLength/r-1, 0)

	correct := 0
	for _, a := range alignments {
		if a > minEdgeScore {
			correct++
		}
	}
	fractionCorrect := 0.0
	if len(alignments) > 0 {
		fractionCorrect = float64(correct) / float64(len(alignments))
	}

	return PairScore{
		FinalScore:      meanScore + penalty,
		FractionCorrect: fractionCorrect,
	}, nil
}
