package config

import (
	"errors"
	"fmt"
)

// Validate checks that the tunables describe a playable game.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.InitialSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.initial_speed must be positive, got %v", c.Physics.InitialSpeed))
	}
	if c.Physics.SpeedIncrement < 0 {
		errs = append(errs, fmt.Errorf("physics.speed_increment must not be negative, got %v", c.Physics.SpeedIncrement))
	}
	if c.Physics.SpeedInterval <= 0 {
		errs = append(errs, fmt.Errorf("physics.speed_interval must be positive, got %d", c.Physics.SpeedInterval))
	}

	if c.Player.Height <= 0 || c.Player.AspectRatio <= 0 {
		errs = append(errs, errors.New("player.height and player.aspect_ratio must be positive"))
	}
	if c.Player.JumpForce >= 0 || c.Player.BoostForce >= 0 {
		errs = append(errs, errors.New("player.jump_force and player.boost_force must be negative (upward)"))
	}
	if c.Player.LongPressMS < 0 {
		errs = append(errs, fmt.Errorf("player.long_press_ms must not be negative, got %d", c.Player.LongPressMS))
	}

	if c.Ground.Height <= 0 {
		errs = append(errs, fmt.Errorf("ground.height must be positive, got %v", c.Ground.Height))
	}

	o := c.Obstacles
	if o.MinGap < 0 || o.MinGap > o.MaxGap {
		errs = append(errs, fmt.Errorf("obstacles: need 0 <= min_gap <= max_gap, got %v..%v", o.MinGap, o.MaxGap))
	}
	if o.MinPitWidth <= 0 || o.MinPitWidth > o.MaxPitWidth {
		errs = append(errs, fmt.Errorf("obstacles: need 0 < min_pit_width <= max_pit_width, got %v..%v", o.MinPitWidth, o.MaxPitWidth))
	}
	if o.BlockWidth <= 0 || o.BlockHeight <= 0 {
		errs = append(errs, errors.New("obstacles.block_width and obstacles.block_height must be positive"))
	}

	if c.Display.MobileScale <= 0 {
		errs = append(errs, fmt.Errorf("display.mobile_scale must be positive, got %v", c.Display.MobileScale))
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		errs = append(errs, errors.New("display.cell_width and display.cell_height must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}
