package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// rootFlags holds the flags shared by every subcommand, bound through
// pflag on the root command's PersistentFlags.
type rootFlags struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{logLevel: "info"}

	root := &cobra.Command{
		Use:   "posegroup",
		Short: "Group PAF-matched body-part peaks into per-person pose instances",
		Long: "posegroup reads a frame of detected body-part peaks and a Part " +
			"Affinity Field tensor, matches candidate part pairs along each " +
			"skeleton edge, partitions matched edges into person instances, and " +
			"emits dense per-instance coordinate and score tensors.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", flags.logLevel,
		"logger level: debug, info, warn, error")

	root.AddCommand(newGroupCmd(flags))

	return root
}

// newLogger builds a zap.Logger at the configured level, console-encoded
// the way the teacher's CLI-adjacent tooling favors human-readable output
// over raw JSON for a terminal-facing command.
func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
