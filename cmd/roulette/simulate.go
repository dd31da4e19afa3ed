package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/reone-boardgame/palette-roulette/internal/core"
	"github.com/reone-boardgame/palette-roulette/internal/host"
	"github.com/reone-boardgame/palette-roulette/internal/platform/tui"
	"github.com/reone-boardgame/palette-roulette/internal/runner"
)

var (
	flagRuns      int
	flagMaxFrames int
	flagWidth     int
	flagHeight    int
	flagSimEvents string
	flagScroll    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless games with the autopilot",
	Long: `Play runs without a terminal UI. A simple autopilot jumps blocks and
pits; each run ends at game over or after --max-frames frames.

Runs are deterministic for a given --seed: run i uses seed+i.

Examples:
  roulette simulate
  roulette simulate --runs 20 --seed 7
  roulette simulate --width 600 --height 400   # mobile layout
  roulette simulate --events - --scroll        # stream every event to stdout`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
	simulateCmd.Flags().IntVar(&flagMaxFrames, "max-frames", 18000, "Frame limit per run")
	simulateCmd.Flags().IntVar(&flagWidth, "width", 960, "Viewport width in world units")
	simulateCmd.Flags().IntVar(&flagHeight, "height", 528, "Viewport height in world units")
	simulateCmd.Flags().StringVar(&flagSimEvents, "events", "", "Write host events as JSON lines to this file (- for stdout)")
	simulateCmd.Flags().BoolVar(&flagScroll, "scroll", false, "Include per-frame scroll updates in --events")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if flagRuns < 1 {
		return fmt.Errorf("--runs must be at least 1")
	}
	if flagWidth <= 0 || flagHeight <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", flagWidth, flagHeight)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	out := cmd.OutOrStdout()

	var events *host.JSONLines
	if flagSimEvents != "" {
		var w io.Writer = out
		if flagSimEvents != "-" {
			f, err := os.Create(flagSimEvents)
			if err != nil {
				return fmt.Errorf("open events file: %w", err)
			}
			defer f.Close()
			w = f
		}
		events = host.NewJSONLines(w)
		events.SkipScroll = !flagScroll
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	theme := tui.DefaultTheme()
	fmt.Fprintf(out, "  %-4s  %-20s  %-7s  %-6s  %-6s  %s\n", "Run", "Seed", "Frames", "Score", "Cause", "Colors")
	fmt.Fprintf(out, "  %-4s  %-20s  %-7s  %-6s  %-6s  %s\n", "---", "----", "------", "-----", "-----", "------")

	best, total := 0, 0
	for i, runs := 0, flagRuns; i < runs; i++ {
		runSeed := seed + int64(i)
		clock := core.NewManualClock(time.Unix(0, 0))

		channels := host.Multi{host.NewLog(logger)}
		if events != nil {
			channels = append(channels, events)
		}
		g := runner.New(cfg, runner.WithClock(clock), runner.WithHost(channels))
		g.Reset(core.RuntimeConfig{
			ViewportW: flagWidth,
			ViewportH: flagHeight,
			TickRate:  flagFPS,
			Seed:      runSeed,
		})

		res := runner.Simulate(g, clock, runner.NewAutopilot(), flagMaxFrames)
		st := res.Status
		colors := "-"
		if st.Phase == runner.PhaseGameOver {
			colors = theme.Swatch("main", st.Theme.Main) + "  " + theme.Swatch("sub", st.Theme.Sub)
		}
		fmt.Fprintf(out, "  %-4d  %-20d  %-7d  %-6d  %-6s  %s\n", i+1, runSeed, res.Frames, st.Score, st.Cause, colors)

		best = max(best, st.Score)
		total += st.Score
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Average: %.1f\n", best, float64(total)/float64(flagRuns))

	if events != nil && events.Err() != nil {
		return events.Err()
	}
	return nil
}
