package runner

import (
	"time"

	"github.com/reone-boardgame/palette-roulette/internal/config"
	"github.com/reone-boardgame/palette-roulette/internal/core"
	"github.com/reone-boardgame/palette-roulette/internal/palette"
)

// Game owns one runner instance: the current State plus everything needed to
// rebuild it. It is not safe for concurrent use; the front-end drives input
// and frames from a single goroutine.
type Game struct {
	base    config.RunnerConfig // as loaded, before viewport scaling
	cfg     config.RunnerConfig // scaled for the current viewport
	runtime core.RuntimeConfig

	clock     core.Clock
	host      HostChannel
	newRandom func(seed int64) Random

	gen   *Generator
	state *State
	scene scene

	// generation counts rebuilds after the first Reset, so restarts and
	// resizes draw a different course from the same base seed.
	generation    int64
	finalRendered bool
}

// Option configures a Game.
type Option func(*Game)

// WithClock sets the clock used to time long presses.
func WithClock(c core.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithHost sets the channel that receives host events.
func WithHost(h HostChannel) Option {
	return func(g *Game) { g.host = h }
}

// WithRandom replaces the seeded source factory.
func WithRandom(f func(seed int64) Random) Option {
	return func(g *Game) { g.newRandom = f }
}

// New creates a game. Call Reset before use.
func New(cfg config.RunnerConfig, opts ...Option) *Game {
	g := &Game{
		base:      cfg,
		clock:     core.SystemClock{},
		host:      nopHost{},
		newRandom: NewRandom,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Reset rebuilds every entity for the given viewport and returns to the
// start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.generation = 0
	g.rebuild()
}

func (g *Game) rebuild() {
	viewport := g.runtime.Viewport()
	g.cfg = g.base.ScaledFor(viewport.W)

	rng := g.newRandom(g.runtime.Seed + g.generation)
	g.gen = NewGenerator(g.cfg, viewport, rng)
	g.state = newState(g.cfg, viewport, g.gen, rng)
	g.scene = scene{
		sun:       core.Point{X: g.cfg.Background.SunX, Y: g.cfg.Background.SunY},
		sunRadius: g.cfg.Background.SunRadius,
		score:     core.Point{X: g.cfg.Display.ScoreX, Y: g.cfg.Display.ScoreY},
	}
	g.finalRendered = false
}

// Start leaves the start screen. It reports whether a run began.
func (g *Game) Start() bool {
	if g.state.Phase != PhaseStart {
		return false
	}
	g.state.Phase = PhaseRunning
	return true
}

// Dismiss closes the game from the start screen without playing.
func (g *Game) Dismiss() bool {
	if g.state.Phase != PhaseStart {
		return false
	}
	g.host.Send(ModalCloseRequested{})
	return true
}

// PressStart handles the jump input going down. A grounded player jumps
// with the normal force and the press time is latched for the boost.
func (g *Game) PressStart() bool {
	s := g.state
	if s.Phase != PhaseRunning || !s.Player.OnGround {
		return false
	}
	s.Player.Jump(g.cfg.Player.JumpForce)
	s.PressStart = g.clock.Now()
	return true
}

// PressEnd handles the jump input going up.
func (g *Game) PressEnd() {
	if g.state.Phase == PhaseGameOver {
		return
	}
	g.state.PressStart = time.Time{}
}

// Apply dispatches the actions latched in an input frame. A press start and
// end in the same frame act as a tap.
func (g *Game) Apply(in core.InputFrame) {
	if in.Has(core.ActionRestart) {
		g.Restart()
	}
	if in.Has(core.ActionStart) {
		g.Start()
	}
	if in.Has(core.ActionPressStart) {
		g.PressStart()
	}
	if in.Has(core.ActionPressEnd) {
		g.PressEnd()
	}
	if in.Has(core.ActionAdopt) {
		g.AdoptTheme()
	}
	if in.Has(core.ActionClose) {
		if !g.Dismiss() {
			g.Close()
		}
	}
}

// Frame runs one scheduled frame: update and collision while running, then
// render. It returns whether another frame should be requested. Once the run
// is over, exactly one more render (with the death marker) happens and
// Frame returns false from then on.
func (g *Game) Frame(r Renderer) bool {
	switch g.state.Phase {
	case PhaseRunning:
		g.step()
	case PhaseGameOver:
		if g.finalRendered {
			return false
		}
	}

	g.Render(r)

	if g.state.Phase == PhaseGameOver {
		g.finalRendered = true
		return false
	}
	return g.state.Phase == PhaseRunning
}

// Render draws the current state without advancing it.
func (g *Game) Render(r Renderer) {
	drawState(g.state, g.scene, r)
}

// step is the per-frame update of a running game.
func (g *Game) step() {
	s := g.state
	phys := g.cfg.Physics

	if !s.PressStart.IsZero() && !s.Player.OnGround && !s.Player.Boosted &&
		g.clock.Now().Sub(s.PressStart) > g.cfg.Player.LongPress() {
		s.Player.Boost(g.cfg.Player.BoostForce)
	}

	s.Player.Integrate(phys.Gravity, s.GroundY, s.Obstacles)

	factor := g.cfg.Background.CloudSpeedFactor
	advanceClouds(s, factor)

	s.Score += advanceObstacles(s.Obstacles, s.Speed, s.Player.X)
	s.Obstacles = pruneObstacles(s.Obstacles)
	if g.gen.ShouldSpawn(s.Obstacles) {
		last := s.Obstacles[len(s.Obstacles)-1]
		s.Obstacles = append(s.Obstacles, g.gen.Next(&last))
	}

	s.Frame++
	if phys.SpeedInterval > 0 && s.Frame%phys.SpeedInterval == 0 {
		s.Speed += phys.SpeedIncrement
	}

	top := s.Speed * factor
	g.host.Send(ScrollUpdate{BottomSpeed: s.Speed, TopSpeed: top})
	s.Scroll.Bottom += s.Speed
	s.Scroll.Top += top

	if cause := detectCollision(s); cause != CauseNone {
		g.gameOver(cause)
	}
}

// gameOver ends the run and resolves the final colors. Repeated calls are
// no-ops.
func (g *Game) gameOver(cause Cause) bool {
	s := g.state
	if s.Phase == PhaseGameOver {
		return false
	}
	s.Phase = PhaseGameOver
	s.Cause = cause
	s.PressStart = time.Time{}
	s.MarkerX = s.Player.CenterX()
	s.Theme = palette.Resolve(s.Scroll.Bottom, s.Scroll.Top, s.MarkerX, s.Viewport.W)

	g.host.Send(GameEnded{
		Score:   s.Score,
		Main:    s.Theme.Main,
		Sub:     s.Theme.Sub,
		MarkerX: s.MarkerX,
		Cause:   cause,
	})
	return true
}

// Close asks the host to close the game after a run ended, leaving the
// host theme untouched.
func (g *Game) Close() bool {
	if g.state.Phase != PhaseGameOver {
		return false
	}
	g.host.Send(ModalCloseRequested{})
	return true
}

// AdoptTheme sends the final colors to the host and asks it to close the
// game. Only valid after game over.
func (g *Game) AdoptTheme() bool {
	s := g.state
	if s.Phase != PhaseGameOver {
		return false
	}
	g.host.Send(ThemeAdopted{Main: s.Theme.Main, Sub: s.Theme.Sub})
	g.host.Send(ModalCloseRequested{})
	return true
}

// Restart rebuilds the game and begins a new run immediately.
func (g *Game) Restart() {
	g.generation++
	g.rebuild()
	g.Start()
}

// Resize rebuilds the game for a new viewport. Nothing carries over; if a
// run was in progress a fresh one starts right away.
func (g *Game) Resize(viewportW, viewportH int) {
	wasRunning := g.state != nil && g.state.Phase == PhaseRunning
	g.runtime.ViewportW = viewportW
	g.runtime.ViewportH = viewportH
	g.generation++
	g.rebuild()
	if wasRunning {
		g.Start()
	}
}

// JumpButtonVisible reports whether the on-screen jump control should show:
// only during a run on a narrow viewport.
func (g *Game) JumpButtonVisible() bool {
	return g.state.Phase == PhaseRunning && g.cfg.Display.IsMobile(g.state.Viewport.W)
}

// Status is a read-only summary of the current run.
type Status struct {
	Phase    Phase
	Cause    Cause
	Score    int
	Speed    float64
	Frame    int
	Scroll   Scroll
	MarkerX  float64
	Theme    palette.Theme
	Viewport core.Size

	OnGround bool
	Boosted  bool
	Pressed  bool // a jump press is latched for the boost
}

// Status returns a summary of the current run.
func (g *Game) Status() Status {
	s := g.state
	return Status{
		Phase:    s.Phase,
		Cause:    s.Cause,
		Score:    s.Score,
		Speed:    s.Speed,
		Frame:    s.Frame,
		Scroll:   s.Scroll,
		MarkerX:  s.MarkerX,
		Theme:    s.Theme,
		Viewport: s.Viewport,
		OnGround: s.Player.OnGround,
		Boosted:  s.Player.Boosted,
		Pressed:  !s.PressStart.IsZero(),
	}
}

// Config returns the configuration scaled for the current viewport.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Runtime returns the runtime configuration of the current build.
func (g *Game) Runtime() core.RuntimeConfig {
	return g.runtime
}
