package config

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.InitialSpeed *= 0.8
		cfg.Physics.SpeedIncrement *= 0.5
		cfg.Obstacles.MinGap *= 1.2
		cfg.Obstacles.MaxGap *= 1.2
	case DifficultyHard:
		cfg.Physics.InitialSpeed *= 1.2
		cfg.Physics.SpeedInterval /= 2
		if cfg.Physics.SpeedInterval < 1 {
			cfg.Physics.SpeedInterval = 1
		}
		cfg.Obstacles.MinGap *= 0.9
		cfg.Obstacles.MaxGap *= 0.9
	case DifficultyFixed:
		// No progression: speed stays at its initial value for the whole run
		cfg.Physics.SpeedIncrement = 0
	}
}

// ScaledFor returns a copy of the config adapted to a viewport width.
// Narrow (mobile) viewports shrink every length and velocity by
// display.mobile_scale; durations, frame intervals, ratios and the terminal
// cell size are left alone.
func (c RunnerConfig) ScaledFor(viewportW float64) RunnerConfig {
	if !c.Display.IsMobile(viewportW) {
		return c
	}
	s := c.Display.MobileScale

	c.Physics.Gravity *= s
	c.Physics.InitialSpeed *= s
	c.Physics.SpeedIncrement *= s

	c.Player.X *= s
	c.Player.Height *= s
	c.Player.JumpForce *= s
	c.Player.BoostForce *= s

	c.Ground.Height *= s

	c.Obstacles.MinGap *= s
	c.Obstacles.MaxGap *= s
	c.Obstacles.MinDistanceFromEdge *= s
	c.Obstacles.BlockWidth *= s
	c.Obstacles.BlockHeight *= s
	c.Obstacles.MinPitWidth *= s
	c.Obstacles.MaxPitWidth *= s

	c.Background.SunX *= s
	c.Background.SunY *= s
	c.Background.SunRadius *= s

	c.Display.ScoreX *= s
	c.Display.ScoreY *= s

	return c
}
