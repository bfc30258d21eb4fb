package match

import (
	"context"
	"sync"

	"github.com/kestrelvision/posegroup/paf"
	"github.com/kestrelvision/posegroup/peak"
)

// ScoreEdge builds the rectangular score matrix between all source peaks
// and all destination peaks of one edge type, samples and scores every
// candidate pair via the paf package, and solves the resulting minimum-
// cost rectangular assignment (spec.md §4.3).
//
// If either srcPeaks or dstPeaks is empty, ScoreEdge returns an empty,
// non-nil Connection slice: no EdgeConnection is emitted for this edge.
func ScoreEdge(field *paf.Field, edgeIdx int, srcPeaks, dstPeaks []peak.Peak, maxEdgeLength, minEdgeScore float64, nPoints int) ([]Connection, error) {
	if len(srcPeaks) == 0 || len(dstPeaks) == 0 {
		return []Connection{}, nil
	}

	scoreFn := func(i, j int) (float64, float64, bool) {
		s, d := srcPeaks[i], dstPeaks[j]
		samples, err := field.SampleLine(s.X, s.Y, d.X, d.Y, edgeIdx, nPoints)
		if err != nil {
			return 0, 0, false
		}
		result, err := paf.ScorePair(samples, s.X, s.Y, d.X, d.Y, maxEdgeLength, minEdgeScore)
		if err != nil {
			// ErrZeroLengthEdge: exclude this single candidate pair
			// rather than failing the whole edge (spec.md §9).
			return 0, 0, false
		}

		return result.FinalScore, result.FractionCorrect, true
	}

	sigma, phi, err := BuildScoreMatrices(len(srcPeaks), len(dstPeaks), scoreFn)
	if err != nil {
		return nil, err
	}

	pairs := Solve(sigma, phi)
	conns := make([]Connection, len(pairs))
	for i, p := range pairs {
		conns[i] = Connection{
			Src:             p.SrcIdx,
			Dst:             p.DstIdx,
			Score:           p.Score,
			FractionCorrect: p.FractionCorrect,
		}
	}

	return conns, nil
}

// EdgeSpec pairs an EdgeType with the channel-bucketed peak lists it
// connects, as resolved by the caller (posegroup.Group) from the
// configured part names.
type EdgeSpec struct {
	Type             EdgeType
	SrcPeaks, DstPeaks []peak.Peak
}

// MatchAll scores and matches every configured edge, per spec.md §5: each
// edge's matching is independent of the others and may run in parallel,
// but the returned Connections map is assembled in a deterministic,
// config-declared edge order before the caller proceeds to partitioning —
// the "deterministic gather" spec.md §9 requires. Concurrency is bounded
// by workers (workers <= 0 means len(specs), i.e. unbounded).
//
// ctx is checked once per edge before dispatch; a cancelled context stops
// new edges from starting and returns ctx.Err() without partial results.
func MatchAll(ctx context.Context, specs []EdgeSpec, field *paf.Field, maxEdgeLength, minEdgeScore float64, nPoints, workers int) (map[EdgeType][]Connection, error) {
	results := make([][]Connection, len(specs))
	errs := make([]error, len(specs))

	if workers <= 0 || workers > len(specs) {
		workers = len(specs)
	}
	if workers == 0 {
		return map[EdgeType][]Connection{}, nil
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, spec := range specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sem <- struct{}{}
		wg.Add(1)
		go func(i int, spec EdgeSpec) {
			defer wg.Done()
			defer func() { <-sem }()
			conns, err := ScoreEdge(field, spec.Type.edgeIndex(i), spec.SrcPeaks, spec.DstPeaks, maxEdgeLength, minEdgeScore, nPoints)
			results[i] = conns
			errs[i] = err
		}(i, spec)
	}
	wg.Wait()

	out := make(map[EdgeType][]Connection, len(specs))
	for i, spec := range specs {
		if errs[i] != nil {
			return nil, errs[i]
		}
		out[spec.Type] = results[i]
	}

	return out, nil
}

// edgeIndex is a placeholder identity mapping: the PAF tensor's edge axis
// is indexed in configuration order, so the i-th EdgeSpec in MatchAll's
// input slice corresponds to PAF edge channel i. Kept as a method for a
// single, documented call site rather than passing a bare int around.
func (e EdgeType) edgeIndex(configOrderIdx int) int { return configOrderIdx }
