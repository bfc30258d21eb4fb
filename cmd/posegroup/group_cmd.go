package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/kestrelvision/posegroup"
	"github.com/kestrelvision/posegroup/assemble"
	"github.com/kestrelvision/posegroup/posegroupcfg"
)

// groupFlags holds the `group` subcommand's own flags.
type groupFlags struct {
	configPath string
	inputPath  string
	outputPath string
	workers    int
}

func newGroupCmd(root *rootFlags) *cobra.Command {
	flags := &groupFlags{workers: 0}

	cmd := &cobra.Command{
		Use:   "group",
		Short: "Group one frame's peaks into pose instances",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroup(root, flags)
		},
	}
	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to the YAML skeleton definition (required)")
	cmd.Flags().StringVar(&flags.inputPath, "input", "", "path to the JSON input frame (required)")
	cmd.Flags().StringVar(&flags.outputPath, "output", "", "path to write the JSON result (default: stdout)")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "bounded edge-matching worker count (0 = unbounded)")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// nullableFloat marshals NaN as JSON null, since JSON has no native NaN
// representation and spec.md §6 requires unfilled slots to be
// distinguishable from a real zero score.
type nullableFloat float64

func (f nullableFloat) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(f)) {
		return []byte("null"), nil
	}

	return json.Marshal(float64(f))
}

func runGroup(root *rootFlags, flags *groupFlags) error {
	logger, err := newLogger(root.logLevel)
	if err != nil {
		return fmt.Errorf("posegroup: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(flags.inputPath)
	if err != nil {
		return fmt.Errorf("posegroup: reading input %s: %w", flags.inputPath, err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("posegroup: decoding input %s: %w", flags.inputPath, err)
	}

	frame, pafsRaw, err := decodeFrame(cfg, fields)
	if err != nil {
		return fmt.Errorf("posegroup: decoding input %s: %w", flags.inputPath, err)
	}

	res, err := posegroup.Group(context.Background(), cfg, frame, flags.workers, logger)
	if err != nil {
		return fmt.Errorf("posegroup: %w", err)
	}

	encoded, err := json.MarshalIndent(encodeResult(cfg, res, pafsRaw), "", "  ")
	if err != nil {
		return fmt.Errorf("posegroup: encoding result: %w", err)
	}

	if flags.outputPath == "" {
		_, err = os.Stdout.Write(append(encoded, '\n'))
		return err
	}

	return os.WriteFile(flags.outputPath, encoded, 0o644)
}

// decodeFrame reads the four input fields named by cfg's wiring keys
// (spec.md §6) out of the raw JSON object and flattens them into a
// posegroup.Frame. It also returns the PAF field's raw JSON, unparsed, so
// encodeResult can echo it back verbatim when cfg.KeepPAFs is set.
func decodeFrame(cfg *posegroupcfg.Config, fields map[string]json.RawMessage) (posegroup.Frame, json.RawMessage, error) {
	var peaks [][2]float64
	if err := decodeField(fields, cfg.PeaksKey, &peaks); err != nil {
		return posegroup.Frame{}, nil, err
	}
	var peakScores []float64
	if err := decodeField(fields, cfg.PeakScoresKey, &peakScores); err != nil {
		return posegroup.Frame{}, nil, err
	}
	var channels []int
	if err := decodeField(fields, cfg.ChannelsKey, &channels); err != nil {
		return posegroup.Frame{}, nil, err
	}

	pafsRaw, ok := fields[cfg.PAFsKey]
	if !ok {
		return posegroup.Frame{}, nil, fmt.Errorf("missing key %q", cfg.PAFsKey)
	}
	var pafs [][][]float64
	if err := json.Unmarshal(pafsRaw, &pafs); err != nil {
		return posegroup.Frame{}, nil, fmt.Errorf("decoding %q: %w", cfg.PAFsKey, err)
	}

	h := len(pafs)
	w := 0
	if h > 0 {
		w = len(pafs[0])
	}

	flatX := make([]float64, len(peaks))
	flatY := make([]float64, len(peaks))
	for i, p := range peaks {
		flatX[i], flatY[i] = p[0], p[1]
	}

	flatPAFs := make([]float64, 0, h*w*2)
	for _, row := range pafs {
		for _, cell := range row {
			flatPAFs = append(flatPAFs, cell...)
		}
	}

	frame := posegroup.Frame{
		FlatPeakX:      flatX,
		FlatPeakY:      flatY,
		FlatPeakScores: peakScores,
		FlatChannels:   channels,
		PAFs:           flatPAFs,
		PAFsH:          h,
		PAFsW:          w,
	}

	return frame, pafsRaw, nil
}

func decodeField(fields map[string]json.RawMessage, key string, v interface{}) error {
	data, ok := fields[key]
	if !ok {
		return fmt.Errorf("missing key %q", key)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %q: %w", key, err)
	}

	return nil
}

// encodeResult builds the output JSON object under cfg's configured output
// keys (spec.md §6). When cfg.KeepPAFs is set, the input PAF tensor is
// echoed back verbatim under cfg.PAFsKey.
func encodeResult(cfg *posegroupcfg.Config, res assemble.Result, pafsRaw json.RawMessage) map[string]interface{} {
	instances := make([][][2]nullableFloat, len(res.Coords))
	for i, row := range res.Coords {
		instances[i] = make([][2]nullableFloat, len(row))
		for c, pt := range row {
			instances[i][c] = [2]nullableFloat{nullableFloat(pt.X), nullableFloat(pt.Y)}
		}
	}

	peakScores := make([][]nullableFloat, len(res.PeakScores))
	for i, row := range res.PeakScores {
		peakScores[i] = make([]nullableFloat, len(row))
		for c, s := range row {
			peakScores[i][c] = nullableFloat(s)
		}
	}

	out := map[string]interface{}{
		cfg.InstancesKey:      instances,
		cfg.PeakScoresOutKey:  peakScores,
		cfg.InstanceScoresKey: res.InstanceScores,
	}
	if cfg.KeepPAFs {
		out[cfg.PAFsKey] = pafsRaw
	}

	return out
}
