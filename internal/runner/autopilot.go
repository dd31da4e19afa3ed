package runner

import (
	"time"

	"github.com/reone-boardgame/palette-roulette/internal/core"
)

// Autopilot is a simple deterministic player used by the headless
// simulator. It long-presses in front of ground blocks and pits, holds until
// the boost fires, and stays grounded under elevated blocks.
type Autopilot struct {
	// Lead distances, in frames of travel at the current speed.
	BlockLead float64
	PitLead   float64

	holding bool
}

// NewAutopilot returns an autopilot tuned for the default physics.
func NewAutopilot() *Autopilot {
	return &Autopilot{BlockLead: 20, PitLead: 2}
}

// Decide returns the input for the next frame.
func (a *Autopilot) Decide(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	s := g.state
	if s.Phase != PhaseRunning {
		a.holding = false
		return in
	}

	p := s.Player
	if a.holding {
		if p.Boosted || p.OnGround {
			in.Set(core.ActionPressEnd)
			a.holding = false
		}
		return in
	}
	if !p.OnGround {
		return in
	}

	target, ok := a.threat(s)
	if !ok {
		return in
	}

	var dist, lead float64
	switch target.Kind {
	case Block:
		dist, lead = target.X-p.X-p.Width, a.BlockLead
	case Pit:
		dist, lead = target.X-p.CenterX(), a.PitLead
	}
	if dist <= s.Speed*lead {
		in.Set(core.ActionPressStart)
		a.holding = true
	}
	return in
}

// threat finds the nearest obstacle ahead that requires a jump. Elevated
// blocks clear a standing player and are skipped.
func (a *Autopilot) threat(s *State) (Obstacle, bool) {
	for _, o := range s.Obstacles {
		if o.X+o.Width <= s.Player.X {
			continue
		}
		if o.Kind == Block && o.Y+o.Height <= s.Player.Y {
			continue
		}
		return o, true
	}
	return Obstacle{}, false
}

// SimResult summarizes a headless run.
type SimResult struct {
	Frames int
	Status Status
}

// Simulate starts a run and drives it with pilot until game over or
// maxFrames. The game must have been created with clock so long presses are
// timed in simulated frames.
func Simulate(g *Game, clock *core.ManualClock, pilot *Autopilot, maxFrames int) SimResult {
	tickRate := g.runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	frameDur := time.Second / time.Duration(tickRate)

	g.Start()
	frames := 0
	for frames < maxFrames {
		if in := pilot.Decide(g); !in.Empty() {
			g.Apply(in)
		}
		more := g.Frame(NopRenderer{})
		frames++
		clock.Advance(frameDur)
		if !more {
			break
		}
	}
	return SimResult{Frames: frames, Status: g.Status()}
}
