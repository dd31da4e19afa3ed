package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/reone-boardgame/palette-roulette/internal/core"
	"github.com/reone-boardgame/palette-roulette/internal/host"
	"github.com/reone-boardgame/palette-roulette/internal/platform/tui"
	"github.com/reone-boardgame/palette-roulette/internal/runner"
)

var flagEvents string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the runner in the terminal.

Controls:
  Space/Up/W     - Jump
  Enter          - High jump (held press)
  Mouse          - Press and hold for a high jump
  A/Enter        - Use the colors (after game over)
  R              - Run again
  Esc            - Close
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slower start, gentle speed-up, wider gaps
  normal - Config as loaded
  hard   - Faster start, quicker speed-up, tighter gaps
  fixed  - No speed progression

Examples:
  roulette play
  roulette play --difficulty hard
  roulette play --events ./events.jsonl
  roulette play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagEvents, "events", "", "Write host events as JSON lines to this file")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rows := max(height-2, 1) // footer and help line

	runtime := core.RuntimeConfig{
		ViewportW: int(float64(width) * cfg.Display.CellWidth),
		ViewportH: int(float64(rows) * cfg.Display.CellHeight),
		TickRate:  flagFPS,
		Seed:      flagSeed,
	}

	var extra runner.HostChannel
	var events *host.JSONLines
	if flagEvents != "" {
		f, err := os.Create(flagEvents)
		if err != nil {
			return fmt.Errorf("open events file: %w", err)
		}
		defer f.Close()
		events = host.NewJSONLines(f)
		extra = events
	}

	logger.Info("starting", "viewport", fmt.Sprintf("%dx%d", runtime.ViewportW, runtime.ViewportH), "seed", runtime.Seed)
	res, err := tui.Run(tui.Options{
		Runtime: runtime,
		Runner:  cfg,
		Logger:  logger,
		Host:    extra,
	})
	if err != nil {
		return err
	}
	if events != nil && events.Err() != nil {
		logger.Error("writing events", "error", events.Err())
	}

	out := cmd.OutOrStdout()
	theme := tui.DefaultTheme()
	switch {
	case res.Adopted:
		fmt.Fprintf(out, "Theme adopted (score %d)\n", res.Score)
		fmt.Fprintln(out, theme.Swatch("main", res.Theme.Main))
		fmt.Fprintln(out, theme.Swatch("sub ", res.Theme.Sub))
	case res.Played:
		fmt.Fprintf(out, "Last score: %d\n", res.Score)
	}
	return nil
}
