package paf

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SampleLine draws nPoints equally spaced samples (inclusive of both
// endpoints) along the straight line from source peak (psX, psY) to
// destination peak (pdX, pdY), in image pixel coordinates, and gathers the
// PAF vector for the given edge at each sample.
//
// Procedure (spec.md §4.1):
//  1. Generate nPoints equally spaced coordinates linearly interpolating
//     from p_s to p_d inclusive, in image space.
//  2. Divide both coordinates by the field's output stride to bring them
//     into PAF grid units.
//  3. Round each coordinate to the nearest integer using
//     round-half-away-from-zero, THEN clip to [0, W-1] and [0, H-1]
//     (round-then-clip, not clip-then-round: this matters at the field
//     boundary per spec.md §9).
//  4. Gather the 2-vector at each (row, col) and return the nPoints×2
//     result.
//
// Complexity: O(nPoints) time and space.
func (f *Field) SampleLine(psX, psY, pdX, pdY float64, edge, nPoints int) ([]Vec2, error) {
	if nPoints <= 0 {
		return nil, ErrBadNPoints
	}
	if edge < 0 || edge >= f.E {
		return nil, ErrEdgeOutOfRange
	}

	xs := make([]float64, nPoints)
	ys := make([]float64, nPoints)
	floats.Span(xs, psX, pdX)
	floats.Span(ys, psY, pdY)

	out := make([]Vec2, nPoints)
	for i := 0; i < nPoints; i++ {
		col := roundClip(xs[i]/float64(f.Stride), f.W-1)
		row := roundClip(ys[i]/float64(f.Stride), f.H-1)
		v, err := f.At(row, col, edge)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// roundClip rounds v to the nearest integer, half away from zero, then
// clips the result to [0, max]. max is W-1 or H-1, which is at least 0
// for any Field that NewField or ReshapeHWE2 builds.
func roundClip(v float64, max int) int {
	r := int(math.Round(v))
	if r < 0 {
		return 0
	}
	if r > max {
		return max
	}

	return r
}
