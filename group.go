package posegroup

import (
	"context"

	"go.uber.org/zap"

	"github.com/kestrelvision/posegroup/assemble"
	"github.com/kestrelvision/posegroup/instance"
	"github.com/kestrelvision/posegroup/match"
	"github.com/kestrelvision/posegroup/paf"
	"github.com/kestrelvision/posegroup/peak"
	"github.com/kestrelvision/posegroup/posegroupcfg"
)

// Frame is one per-frame grouping request: flat peak/score/channel arrays
// plus the flat PAF tensor ([H, W, 2E] or [H, W, E, 2], both accepted by
// paf.ReshapeHWE2) and its grid dimensions.
type Frame struct {
	FlatPeakX, FlatPeakY, FlatPeakScores []float64
	FlatChannels                        []int

	PAFs  []float64
	PAFsH int
	PAFsW int
}

// Group runs the full per-frame pipeline of spec.md §2/§6: bucket peaks by
// channel, reshape the PAF tensor, score and match every configured edge
// (in parallel, bounded by workers; workers <= 0 means unbounded), walk
// matched edges into instance ids, drop instances below
// config.MinInstancePeaks, then assemble the dense output tensors.
//
// cfg must have had Validate called successfully; Group returns
// ErrConfigNotValidated otherwise. logger may be nil (a no-op logger is
// used). Group is a pure function: it performs no I/O of its own and
// allocates a fresh Result on every call.
func Group(ctx context.Context, cfg *posegroupcfg.Config, frame Frame, workers int, logger *zap.Logger) (assemble.Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	edges := cfg.ResolvedEdges()
	if edges == nil {
		return assemble.Result{}, ErrConfigNotValidated
	}
	n := cfg.NumParts()

	peaks, err := peak.Bucket(frame.FlatPeakX, frame.FlatPeakY, frame.FlatPeakScores, frame.FlatChannels, n)
	if err != nil {
		return assemble.Result{}, err
	}

	field, err := paf.ReshapeHWE2(frame.PAFs, frame.PAFsH, frame.PAFsW, len(edges), cfg.PAFsStride)
	if err != nil {
		return assemble.Result{}, err
	}

	specs := make([]match.EdgeSpec, len(edges))
	for i, et := range edges {
		specs[i] = match.EdgeSpec{Type: et, SrcPeaks: peaks[et.Src], DstPeaks: peaks[et.Dst]}
	}

	connsByType, err := match.MatchAll(ctx, specs, field, cfg.MaxEdgeLength, cfg.MinEdgeScore, cfg.NPoints, workers)
	if err != nil {
		return assemble.Result{}, err
	}

	groups := make([]instance.EdgeGroup, len(edges))
	matched := 0
	for i, et := range edges {
		conns := connsByType[et]
		groups[i] = instance.EdgeGroup{Type: et, Conns: conns}
		matched += len(conns)
	}
	logger.Debug("matched edges", zap.Int("edge_types", len(edges)), zap.Int("connections", matched))

	assignment := instance.Partition(groups)
	beforeFilter := countInstances(assignment)

	threshold, err := instance.ResolveThreshold(cfg.MinInstancePeaks, n)
	if err != nil {
		return assemble.Result{}, err
	}
	filtered := instance.Filter(assignment, threshold)
	afterFilter := countInstances(filtered)
	logger.Debug("partitioned instances",
		zap.Int("before_filter", beforeFilter),
		zap.Int("after_filter", afterFilter),
		zap.Int("threshold", threshold),
	)

	result, err := assemble.Assemble(peaks, groups, filtered)
	if err != nil {
		return assemble.Result{}, err
	}

	return result, nil
}

// countInstances returns the number of distinct instance ids present in a,
// used only for diagnostic logging.
func countInstances(a *instance.Assignment) int {
	seen := make(map[int]struct{})
	for _, p := range a.Peaks() {
		id, _ := a.Lookup(p)
		seen[id] = struct{}{}
	}

	return len(seen)
}
