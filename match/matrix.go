package match

import "gonum.org/v1/gonum/mat"

// ScoreFunc computes the pair score and fraction_correct for one
// (source-index, destination-index) candidate pair. ok is false when the
// pair is degenerate (e.g. a zero-length edge, spec.md §9) and must be
// excluded from matching entirely.
type ScoreFunc func(srcIdx, dstIdx int) (score, fractionCorrect float64, ok bool)

// BuildScoreMatrices constructs the |S|×|D| score matrix Σ and the
// parallel fraction_correct matrix Φ for one edge type, per spec.md §4.3.
// Excluded pairs (scoreFn ok=false) are written into Σ as the large
// finite negative sentinel negInf, and 0 into Φ; Solve never emits a pair
// holding that sentinel.
//
// Both matrices are *gonum.org/v1/gonum/mat.Dense, the domain-stack
// numeric type used throughout this module for anything matrix-shaped
// (see DESIGN.md).
func BuildScoreMatrices(nSrc, nDst int, scoreFn ScoreFunc) (sigma, phi *mat.Dense, err error) {
	if nSrc < 0 || nDst < 0 {
		return nil, nil, ErrNegativeDimension
	}
	sigma = mat.NewDense(maxInt(nSrc, 1), maxInt(nDst, 1), nil)
	phi = mat.NewDense(maxInt(nSrc, 1), maxInt(nDst, 1), nil)
	if nSrc == 0 || nDst == 0 {
		return mat.NewDense(nSrc, nDst, nil), mat.NewDense(nSrc, nDst, nil), nil
	}

	for i := 0; i < nSrc; i++ {
		for j := 0; j < nDst; j++ {
			score, frac, ok := scoreFn(i, j)
			if !ok {
				sigma.Set(i, j, negInf)
				phi.Set(i, j, 0)
				continue
			}
			sigma.Set(i, j, score)
			phi.Set(i, j, frac)
		}
	}

	return sigma, phi, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
