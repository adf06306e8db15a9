// hashlife runs Game of Life patterns on the memoized quadtree simulator.
//
// Usage:
//
//	hashlife run builtin:gosper-gun --generations 1000000
//	hashlife run pattern.rle --generations 4096 --step 1024
//	hashlife check builtin:r-pentomino --generations 200
//	hashlife patterns
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/phroun/hashlife"
	"github.com/phroun/hashlife/config"
	"github.com/phroun/hashlife/pattern"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	rootCmd = &cobra.Command{
		Use:           "hashlife",
		Short:         "Simulate Conway's Game of Life with HashLife",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text, json)")

	rootCmd.AddCommand(runCmd, checkCmd, patternsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, if any, and applies the flags the user set.
func loadConfig(cmd *cobra.Command, args []string) (config.Config, *slog.Logger, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return cfg, nil, err
		}
	}

	if len(args) > 0 {
		cfg.Pattern = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if flags.Changed("generations") {
		cfg.Generations, _ = flags.GetInt64("generations")
	}
	if flags.Changed("step") {
		cfg.Step, _ = flags.GetInt64("step")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("collect-threshold") {
		cfg.CollectThreshold, _ = flags.GetInt("collect-threshold")
	}
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	logger, err := cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logger, nil
}

// loadPattern resolves "builtin:<name>" or reads a pattern file.
func loadPattern(cfg config.Config) (*pattern.Pattern, error) {
	if name, ok := strings.CutPrefix(cfg.Pattern, "builtin:"); ok {
		return pattern.Builtin(name)
	}
	format, err := pattern.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	return pattern.Load(cfg.Pattern, format)
}

// newUniverse builds a universe for p with the configured collection threshold.
func newUniverse(p *pattern.Pattern, cfg config.Config, logger *slog.Logger) (*hashlife.Universe, error) {
	return hashlife.New(p.Rows, p.Cols, p.Cells, hashlife.Options{
		Logger:           logger,
		CollectThreshold: cfg.CollectThreshold,
	})
}

// strides splits total into steps of at most step (one step when step is 0).
func strides(total, step int64) []int64 {
	if step <= 0 || step >= total {
		return []int64{total}
	}
	var out []int64
	for total > 0 {
		n := min(step, total)
		out = append(out, n)
		total -= n
	}
	return out
}
