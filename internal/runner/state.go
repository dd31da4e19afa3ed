// Package runner implements the endless-runner core: player physics,
// procedural obstacles, collision and the frame loop. It has no rendering
// or terminal dependencies; drawing goes through the Renderer port and
// outbound messages through the HostChannel port.
package runner

import (
	"math"
	"time"

	"github.com/reone-boardgame/palette-roulette/internal/config"
	"github.com/reone-boardgame/palette-roulette/internal/core"
	"github.com/reone-boardgame/palette-roulette/internal/palette"
)

// Phase is the run state machine position.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Cause records what ended a run.
type Cause int

const (
	CauseNone  Cause = iota
	CauseBlock       // overlapped a block
	CauseFall        // dropped below the viewport through a pit
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseBlock:
		return "block"
	case CauseFall:
		return "fall"
	default:
		return "none"
	}
}

// Scroll holds the two distance accumulators, one per background layer.
type Scroll struct {
	Top    float64 // cloud layer
	Bottom float64 // ground layer
}

// Cloud is a decorative background element on the slow layer.
type Cloud struct {
	X, Y, Size float64
}

// State is everything a single run owns. It is created fresh by newState and
// never survives a reinitialization.
type State struct {
	Phase     Phase
	Cause     Cause
	Score     int
	Speed     float64
	Frame     int
	Viewport  core.Size
	GroundY   float64
	Player    Player
	Obstacles []Obstacle
	Clouds    []Cloud
	Scroll    Scroll

	// PressStart is when the current jump input went down; zero when released.
	PressStart time.Time

	// Set on game over.
	MarkerX float64
	Theme   palette.Theme
}

// newState builds a run from scratch. Clouds draw from rng before the first
// obstacle is generated.
func newState(cfg config.RunnerConfig, viewport core.Size, gen *Generator, rng Random) *State {
	s := &State{
		Phase:    PhaseStart,
		Speed:    cfg.Physics.InitialSpeed,
		Viewport: viewport,
		GroundY:  viewport.H - cfg.Ground.Height,
		Player:   NewPlayer(cfg.Player, viewport.H),
	}

	bg := cfg.Background
	n := 0
	if bg.CloudSpacing > 0 {
		n = int(math.Ceil(viewport.W / bg.CloudSpacing))
	}
	s.Clouds = make([]Cloud, 0, n)
	for i := 0; i < n; i++ {
		x := rng.Float64() * viewport.W
		y := rng.Float64()*(viewport.H/3) + bg.CloudTop
		size := rng.Float64()*bg.CloudSizeRange + bg.CloudMinSize
		s.Clouds = append(s.Clouds, Cloud{X: x, Y: y, Size: size})
	}

	s.Obstacles = make([]Obstacle, 0, 8)
	s.Obstacles = append(s.Obstacles, gen.Next(nil))
	return s
}

// advanceClouds scrolls the cloud layer and wraps clouds that left the view.
func advanceClouds(s *State, factor float64) {
	dx := s.Speed * factor
	for i := range s.Clouds {
		c := &s.Clouds[i]
		c.X -= dx
		if c.X+c.Size*3 < 0 {
			c.X = s.Viewport.W
		}
	}
}
