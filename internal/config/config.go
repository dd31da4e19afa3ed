// Package config provides YAML-based configuration loading, viewport
// scaling and difficulty presets for the runner.
package config

import "time"

// RunnerConfig contains all tunables for the runner. Lengths are in world
// units (pixels of the logical viewport) before viewport scaling.
type RunnerConfig struct {
	Physics    RunnerPhysics    `yaml:"physics"`
	Player     RunnerPlayer     `yaml:"player"`
	Ground     RunnerGround     `yaml:"ground"`
	Obstacles  RunnerObstacles  `yaml:"obstacles"`
	Background RunnerBackground `yaml:"background"`
	Display    RunnerDisplay    `yaml:"display"`
}

// RunnerPhysics defines gravity and scroll speed progression.
type RunnerPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	InitialSpeed   float64 `yaml:"initial_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	SpeedInterval  int     `yaml:"speed_interval"` // frames between speed steps
}

// RunnerPlayer defines player geometry and jump tuning.
type RunnerPlayer struct {
	X           float64 `yaml:"x"`
	Height      float64 `yaml:"height"`
	AspectRatio float64 `yaml:"aspect_ratio"` // width / height
	JumpForce   float64 `yaml:"jump_force"`   // negative = up
	BoostForce  float64 `yaml:"boost_force"`
	LongPressMS int     `yaml:"long_press_ms"`
}

// Width returns the player width derived from height and aspect ratio.
func (p RunnerPlayer) Width() float64 {
	return p.Height * p.AspectRatio
}

// LongPress returns the hold duration after which a jump is boosted.
func (p RunnerPlayer) LongPress() time.Duration {
	return time.Duration(p.LongPressMS) * time.Millisecond
}

// RunnerGround defines the ground strip at the bottom of the viewport.
type RunnerGround struct {
	Height float64 `yaml:"height"`
}

// RunnerObstacles defines obstacle spawning and geometry.
type RunnerObstacles struct {
	MinGap              float64 `yaml:"min_gap"`
	MaxGap              float64 `yaml:"max_gap"`
	MinDistanceFromEdge float64 `yaml:"min_distance_from_edge"`
	FirstSpawnOffset    float64 `yaml:"first_spawn_offset"` // beyond the right edge
	BlockWidth          float64 `yaml:"block_width"`
	BlockHeight         float64 `yaml:"block_height"`
	ElevatedClearance   float64 `yaml:"elevated_clearance"` // gap above a standing player's head
	MinPitWidth         float64 `yaml:"min_pit_width"`
	MaxPitWidth         float64 `yaml:"max_pit_width"`
}

// RunnerBackground defines the decorative sun and cloud layer.
type RunnerBackground struct {
	CloudSpeedFactor float64 `yaml:"cloud_speed_factor"`
	CloudSpacing     float64 `yaml:"cloud_spacing"` // one cloud per this much viewport width
	CloudMinSize     float64 `yaml:"cloud_min_size"`
	CloudSizeRange   float64 `yaml:"cloud_size_range"`
	CloudTop         float64 `yaml:"cloud_top"`
	SunX             float64 `yaml:"sun_x"`
	SunY             float64 `yaml:"sun_y"`
	SunRadius        float64 `yaml:"sun_radius"`
}

// RunnerDisplay defines viewport-dependent presentation settings.
type RunnerDisplay struct {
	MobileMaxWidth float64 `yaml:"mobile_max_width"` // at or below: touch layout and scaled geometry
	MobileScale    float64 `yaml:"mobile_scale"`
	CellWidth      float64 `yaml:"cell_width"`  // world units per terminal column
	CellHeight     float64 `yaml:"cell_height"` // world units per terminal row
	ScoreX         float64 `yaml:"score_x"`
	ScoreY         float64 `yaml:"score_y"`
	KeyHoldMS      int     `yaml:"key_hold_ms"` // how long a keyboard "hold" keeps the press down
}

// KeyHold returns the synthetic hold duration for keyboard long jumps.
func (d RunnerDisplay) KeyHold() time.Duration {
	return time.Duration(d.KeyHoldMS) * time.Millisecond
}

// IsMobile reports whether a viewport of the given width uses the touch layout.
func (d RunnerDisplay) IsMobile(viewportW float64) bool {
	return viewportW <= d.MobileMaxWidth
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset.
// Returns "" for unknown or empty input, meaning "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
