package posegroupcfg

// Option customizes a Config by mutating it before Validate runs, in the
// teacher's builder.BuilderOption idiom: later options override earlier
// ones, applied in the order given to New.
type Option func(cfg *Config)

// New returns a Config initialized with spec.md §6's defaults
// (max_edge_length=128, min_edge_score=0.05, n_points=10,
// min_instance_peaks=0, the literal wiring-surface key names), then
// applies each Option in order. Validate must be called before the
// Config is used for grouping.
func New(opts ...Option) *Config {
	cfg := &Config{
		MaxEdgeLength:    128,
		MinEdgeScore:     0.05,
		NPoints:          10,
		MinInstancePeaks: 0,

		PeaksKey:          "peaks",
		PeakScoresKey:     "peak_scores",
		ChannelsKey:       "channels",
		PAFsKey:           "pafs",
		InstancesKey:      "instances",
		PeakScoresOutKey:  "peak_scores",
		InstanceScoresKey: "instance_scores",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithPartNames sets the ordered list of N body-part names. Panics if
// names is empty — an option constructor validating a meaningless input,
// per the teacher's WithAmplitude/WithFrequency convention, not a
// user-triggered runtime condition.
func WithPartNames(names []string) Option {
	if len(names) == 0 {
		panic("posegroupcfg: WithPartNames(empty)")
	}
	return func(cfg *Config) {
		cfg.PartNames = append([]string(nil), names...)
	}
}

// WithEdges sets the ordered list of (src, dst) name-pair edges. Resolution
// against PartNames and duplicate-edge rejection happen in Validate, not
// here: whether a name is unknown depends on PartNames, which may be set
// by a later option.
func WithEdges(edges ...EdgeName) Option {
	return func(cfg *Config) {
		cfg.Edges = append([]EdgeName(nil), edges...)
	}
}

// WithStride sets pafs_stride.
func WithStride(stride int) Option {
	return func(cfg *Config) {
		cfg.PAFsStride = stride
	}
}

// WithMaxEdgeLength overrides the default max_edge_length (128).
func WithMaxEdgeLength(d float64) Option {
	return func(cfg *Config) {
		cfg.MaxEdgeLength = d
	}
}

// WithMinEdgeScore overrides the default min_edge_score (0.05).
func WithMinEdgeScore(t float64) Option {
	return func(cfg *Config) {
		cfg.MinEdgeScore = t
	}
}

// WithNPoints overrides the default n_points (10).
func WithNPoints(n int) Option {
	return func(cfg *Config) {
		cfg.NPoints = n
	}
}

// WithMinInstancePeaks overrides the default min_instance_peaks (0): an
// absolute integer count (m > 1) or a fraction of N in (0, 1].
func WithMinInstancePeaks(m float64) Option {
	return func(cfg *Config) {
		cfg.MinInstancePeaks = m
	}
}

// WithWiringKeys overrides the four input and three output keys of the
// streaming wiring surface (spec.md §6). An empty string leaves the
// corresponding default key in place.
func WithWiringKeys(peaks, peakScores, channels, pafs, instances, peakScoresOut, instanceScores string) Option {
	return func(cfg *Config) {
		if peaks != "" {
			cfg.PeaksKey = peaks
		}
		if peakScores != "" {
			cfg.PeakScoresKey = peakScores
		}
		if channels != "" {
			cfg.ChannelsKey = channels
		}
		if pafs != "" {
			cfg.PAFsKey = pafs
		}
		if instances != "" {
			cfg.InstancesKey = instances
		}
		if peakScoresOut != "" {
			cfg.PeakScoresOutKey = peakScoresOut
		}
		if instanceScores != "" {
			cfg.InstanceScoresKey = instanceScores
		}
	}
}

// WithKeepPAFs sets whether the PAF tensor is retained in the output
// record after grouping.
func WithKeepPAFs(keep bool) Option {
	return func(cfg *Config) {
		cfg.KeepPAFs = keep
	}
}
