package main

import (
	"github.com/spf13/cobra"

	"github.com/reone-boardgame/palette-roulette/internal/config"
)

var flagViewport float64

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the runner configuration as YAML after the search order and the
difficulty preset are applied. The output can be saved and edited as a
custom --config file.

With --viewport, prints the values scaled for that viewport width (the
mobile layout halves sizes at or below display.mobile_max_width).

Examples:
  roulette config > my-runner.yaml
  roulette config --difficulty hard
  roulette config --viewport 600`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().Float64Var(&flagViewport, "viewport", 0, "Scale for this viewport width")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagViewport > 0 {
		cfg = cfg.ScaledFor(flagViewport)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
