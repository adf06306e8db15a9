package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/phroun/hashlife"
	"github.com/phroun/hashlife/config"
	"github.com/phroun/hashlife/metrics"
	"github.com/phroun/hashlife/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	runShowMetrics bool
	runNoRender    bool

	runCmd = &cobra.Command{
		Use:   "run [pattern]",
		Short: "Advance a pattern and render the result",
		Long: `Loads a pattern file (or builtin:<name>), advances it by the requested
number of generations and prints the live region. With --step the
universe is rendered after every stride.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRun,
	}

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4"))
)

func init() {
	runCmd.Flags().Int64P("generations", "g", 0, "Generations to simulate")
	runCmd.Flags().Int64P("step", "s", 0, "Render every N generations (0 renders only the end)")
	runCmd.Flags().String("format", "auto", "Pattern format (auto, rle, plaintext)")
	runCmd.Flags().Int("collect-threshold", 0, "Collect the node store above this many nodes (0 disables)")
	runCmd.Flags().String("color", "auto", "Colour output (auto, always, never)")
	runCmd.Flags().BoolVar(&runShowMetrics, "metrics", false, "Print Prometheus metrics after the run")
	runCmd.Flags().BoolVar(&runNoRender, "no-render", false, "Only print the summary line")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	p, err := loadPattern(cfg)
	if err != nil {
		return err
	}
	u, err := newUniverse(p, cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("pattern loaded",
		slog.String("pattern", cfg.Pattern),
		slog.Int("rows", p.Rows),
		slog.Int("cols", p.Cols),
		slog.Int("population", p.Population()))

	color := render.ColorEnabled(cfg.Color, os.Stdout)
	out := cmd.OutOrStdout()

	start := time.Now()
	for _, n := range strides(cfg.Generations, cfg.Step) {
		if err := u.Advance(n); err != nil {
			return err
		}
		if cfg.Step > 0 && !runNoRender {
			printFrame(cmd, u, cfg.Viewport, color)
		}
	}
	elapsed := time.Since(start)

	if cfg.Step == 0 && !runNoRender {
		printFrame(cmd, u, cfg.Viewport, color)
	}
	stats := u.Store().Stats()
	fmt.Fprintf(out, "generation %d  population %d  level %d  nodes %d  results %d  (%v)\n",
		u.Generation(), u.Population(), u.Level(), stats.Nodes, stats.Results, elapsed.Round(time.Microsecond))

	if runShowMetrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(metrics.NewCollector("hashlife", u))
		return metrics.WriteText(out, reg)
	}
	return nil
}

// printFrame renders the configured window, or the live bounding box when the
// window is left to auto.
func printFrame(cmd *cobra.Command, u *hashlife.Universe, vc config.ViewportConfig, color bool) {
	out := cmd.OutOrStdout()
	vp := render.Viewport{Top: vc.Top, Left: vc.Left, Rows: vc.Rows, Cols: vc.Cols}
	if vc.Auto() {
		box, ok := u.BoundingBox()
		if !ok {
			fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("generation %d: empty", u.Generation())))
			return
		}
		vp = render.Fit(box.Top, box.Left, box.Rows, box.Cols, max(vc.MaxRows, 1), max(vc.MaxCols, 1))
	}
	fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("generation %d  rows %d..%d  cols %d..%d",
		u.Generation(), vp.Top, vp.Top+vp.Rows-1, vp.Left, vp.Left+vp.Cols-1)))
	fmt.Fprint(out, render.Text(u, vp, render.Options{Color: color}))
}
