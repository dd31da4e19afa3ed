package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reone-boardgame/palette-roulette/internal/palette"
	"github.com/reone-boardgame/palette-roulette/internal/platform/tui"
)

var (
	flagRatio  float64
	flagBottom float64
	flagTop    float64
	flagCenter float64
	flagView   float64
	flagHex    string
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Inspect the gradient",
	Long: `Show the rainbow gradient used to pick the game over colors.

Without flags, lists the gradient stops. With --ratio, shows the color at
that point of the gradient. With --bottom/--top, resolves the theme a run
would end with for those scroll distances. With --hex, shows a single color.

Examples:
  roulette palette
  roulette palette --ratio 0.25
  roulette palette --bottom 4200 --top 840 --center 136.8 --width 960
  roulette palette --hex "#ff5300"`,
	Args: cobra.NoArgs,
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().Float64Var(&flagRatio, "ratio", -1, "Gradient position in [0, 1]")
	paletteCmd.Flags().Float64Var(&flagBottom, "bottom", -1, "Bottom layer scroll distance")
	paletteCmd.Flags().Float64Var(&flagTop, "top", -1, "Top layer scroll distance")
	paletteCmd.Flags().Float64Var(&flagCenter, "center", 136.8, "Player center X")
	paletteCmd.Flags().Float64Var(&flagView, "width", 960, "Viewport width")
	paletteCmd.Flags().StringVar(&flagHex, "hex", "", "Show a hex color")
}

func runPalette(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	theme := tui.DefaultTheme()

	switch {
	case flagHex != "":
		c, err := palette.ParseHex(flagHex)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, theme.Swatch("color", c))

	case flagRatio >= 0:
		if flagRatio > 1 {
			return fmt.Errorf("--ratio must be in [0, 1], got %g", flagRatio)
		}
		fmt.Fprintln(out, theme.Swatch(fmt.Sprintf("%.3f", flagRatio), palette.At(flagRatio)))

	case flagBottom >= 0 || flagTop >= 0:
		if flagView <= 0 {
			return fmt.Errorf("--width must be positive")
		}
		t := palette.Resolve(max(flagBottom, 0), max(flagTop, 0), flagCenter, flagView)
		fmt.Fprintln(out, theme.Swatch("main", t.Main))
		fmt.Fprintln(out, theme.Swatch("sub ", t.Sub))

	default:
		last := len(palette.Stops) - 1
		for i, c := range palette.Stops {
			fmt.Fprintln(out, theme.Swatch(fmt.Sprintf("%.1f", float64(i)/float64(last)), c))
		}
	}
	return nil
}
