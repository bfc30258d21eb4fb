package match

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// negInf is the sentinel Σ value for an excluded candidate pair (e.g. a
// zero-length edge, spec.md §9). A large finite magnitude is used instead
// of a true ±Inf so the primal-dual potential updates in Solve never
// produce Inf-Inf = NaN when an entire row or column happens to be
// excluded; it is still far outside the range of any real alignment score
// (which lies in roughly [-2, 1] before the distance penalty), so it is
// never preferred by the solver over a real candidate.
var negInf = -1e18

// Pair is one matched (source-index, destination-index) pair returned by
// Solve, together with its Σ/Φ entries.
type Pair struct {
	SrcIdx, DstIdx  int
	Score           float64
	FractionCorrect float64
}

// Solve computes a globally optimal rectangular minimum-cost assignment
// over the score matrix sigma (cost = -Σ), returning min(|S|,|D|) matched
// pairs (spec.md §4.3). phi supplies the parallel fraction_correct value
// for each returned pair.
//
// This is a rectangular generalisation of the Hungarian / Kuhn-Munkres
// algorithm (O(n²·m) for an n×m matrix with n ≤ m, after transposing if
// necessary so the smaller dimension plays the "row" role): no library in
// the retrieved example pack implements a rectangular LSA/Munkres solver,
// so this is hand-written (see DESIGN.md). The algorithm is a primal-dual
// method over row/column potentials; it is deterministic and its result
// is stable across reruns on identical inputs (spec.md §4.3's only
// requirement on tie-breaking), since it contains no randomness and
// always scans rows/columns in index order.
//
// Returns an empty, non-nil slice if either dimension is zero.
func Solve(sigma, phi *mat.Dense) []Pair {
	nSrc, nDst := sigma.Dims()
	if nSrc == 0 || nDst == 0 {
		return []Pair{}
	}

	transposed := nSrc > nDst
	rows, cols := nSrc, nDst
	cost := func(i, j int) float64 {
		if transposed {
			return -sigma.At(j, i)
		}
		return -sigma.At(i, j)
	}
	if transposed {
		rows, cols = nDst, nSrc
	}

	// colOfRow[r] (1-indexed internally) holds the column assigned to
	// augmenting row r; rowOfCol[c] is its inverse, 0 meaning "no row yet".
	const unassigned = -1
	u := make([]float64, rows+1)
	v := make([]float64, cols+1)
	rowOfCol := make([]int, cols+1) // rowOfCol[0] unused sentinel slot
	way := make([]int, cols+1)
	for i := range rowOfCol {
		rowOfCol[i] = 0
	}

	for r := 1; r <= rows; r++ {
		rowOfCol[0] = r
		j0 := 0
		minv := make([]float64, cols+1)
		used := make([]bool, cols+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}

		for {
			used[j0] = true
			i0 := rowOfCol[j0]
			delta := math.Inf(1)
			j1 := -1
			for j := 1; j <= cols; j++ {
				if used[j] {
					continue
				}
				cur := cost(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= cols; j++ {
				if used[j] {
					u[rowOfCol[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if rowOfCol[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			rowOfCol[j0] = rowOfCol[j1]
			j0 = j1
		}
	}

	colOfRow := make([]int, rows+1)
	for i := range colOfRow {
		colOfRow[i] = unassigned
	}
	for j := 1; j <= cols; j++ {
		if rowOfCol[j] > 0 {
			colOfRow[rowOfCol[j]] = j
		}
	}

	pairs := make([]Pair, 0, minInt(nSrc, nDst))
	for r := 1; r <= rows; r++ {
		c := colOfRow[r]
		if c == unassigned {
			continue
		}
		var srcIdx, dstIdx int
		if transposed {
			srcIdx, dstIdx = c-1, r-1
		} else {
			srcIdx, dstIdx = r-1, c-1
		}
		if sigma.At(srcIdx, dstIdx) == negInf {
			// Excluded pair (e.g. zero-length edge): never emitted as a
			// real match even if the padding-free algorithm assigned it
			// for lack of a better option.
			continue
		}
		pairs = append(pairs, Pair{
			SrcIdx:          srcIdx,
			DstIdx:          dstIdx,
			Score:           sigma.At(srcIdx, dstIdx),
			FractionCorrect: phi.At(srcIdx, dstIdx),
		})
	}

	return pairs
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
