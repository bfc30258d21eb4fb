package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/kestrelvision/posegroup/posegroupcfg"
)

// yamlEdge mirrors one entry of the skeleton file's `edges` list.
type yamlEdge struct {
	Src string `mapstructure:"src"`
	Dst string `mapstructure:"dst"`
}

// yamlSkeleton mirrors the on-disk YAML skeleton definition: the
// part_names/edges topology plus the numeric thresholds and wiring-surface
// keys of spec.md §6, loaded through viper so the same struct could
// equally be bound to environment variables or CLI flags.
type yamlSkeleton struct {
	PartNames         []string   `mapstructure:"part_names"`
	Edges             []yamlEdge `mapstructure:"edges"`
	PAFsStride        int        `mapstructure:"pafs_stride"`
	MaxEdgeLength     float64    `mapstructure:"max_edge_length"`
	MinEdgeScore      float64    `mapstructure:"min_edge_score"`
	NPoints           int        `mapstructure:"n_points"`
	MinInstancePeaks  float64    `mapstructure:"min_instance_peaks"`
	PeaksKey          string     `mapstructure:"peaks_key"`
	PeakScoresKey     string     `mapstructure:"peak_scores_key"`
	ChannelsKey       string     `mapstructure:"channels_key"`
	PAFsKey           string     `mapstructure:"pafs_key"`
	InstancesKey      string     `mapstructure:"instances_key"`
	PeakScoresOutKey  string     `mapstructure:"peak_scores_out_key"`
	InstanceScoresKey string     `mapstructure:"instance_scores_key"`
	KeepPAFs          bool       `mapstructure:"keep_pafs"`
}

// loadConfig reads a YAML skeleton definition at path through viper and
// resolves it into a validated posegroupcfg.Config.
func loadConfig(path string) (*posegroupcfg.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("pafs_stride", 1)
	v.SetDefault("max_edge_length", 128)
	v.SetDefault("min_edge_score", 0.05)
	v.SetDefault("n_points", 10)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("posegroup: reading config %s: %w", path, err)
	}

	var raw yamlSkeleton
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("posegroup: decoding config %s: %w", path, err)
	}

	edges := make([]posegroupcfg.EdgeName, len(raw.Edges))
	for i, e := range raw.Edges {
		edges[i] = posegroupcfg.EdgeName{Src: e.Src, Dst: e.Dst}
	}

	cfg := posegroupcfg.New(
		posegroupcfg.WithPartNames(raw.PartNames),
		posegroupcfg.WithEdges(edges...),
		posegroupcfg.WithStride(raw.PAFsStride),
		posegroupcfg.WithMaxEdgeLength(raw.MaxEdgeLength),
		posegroupcfg.WithMinEdgeScore(raw.MinEdgeScore),
		posegroupcfg.WithNPoints(raw.NPoints),
		posegroupcfg.WithMinInstancePeaks(raw.MinInstancePeaks),
		posegroupcfg.WithWiringKeys(
			raw.PeaksKey, raw.PeakScoresKey, raw.ChannelsKey, raw.PAFsKey,
			raw.InstancesKey, raw.PeakScoresOutKey, raw.InstanceScoresKey,
		),
		posegroupcfg.WithKeepPAFs(raw.KeepPAFs),
	)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
