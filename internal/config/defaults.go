package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:        0.6,
			InitialSpeed:   5,
			SpeedIncrement: 0.5,
			SpeedInterval:  500,
		},
		Player: RunnerPlayer{
			X:           100,
			Height:      120,
			AspectRatio: 920.0 / 1500.0,
			JumpForce:   -12,
			BoostForce:  -16,
			LongPressMS: 150,
		},
		Ground: RunnerGround{
			Height: 80,
		},
		Obstacles: RunnerObstacles{
			MinGap:              250,
			MaxGap:              500,
			MinDistanceFromEdge: 300,
			FirstSpawnOffset:    100,
			BlockWidth:          80,
			BlockHeight:         80,
			ElevatedClearance:   5,
			MinPitWidth:         150,
			MaxPitWidth:         300,
		},
		Background: RunnerBackground{
			CloudSpeedFactor: 0.2,
			CloudSpacing:     400,
			CloudMinSize:     20,
			CloudSizeRange:   20,
			CloudTop:         50,
			SunX:             100,
			SunY:             100,
			SunRadius:        40,
		},
		Display: RunnerDisplay{
			MobileMaxWidth: 768,
			MobileScale:    0.5,
			CellWidth:      12,
			CellHeight:     24,
			ScoreX:         20,
			ScoreY:         40,
			KeyHoldMS:      400,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
