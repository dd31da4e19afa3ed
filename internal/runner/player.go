package runner

import (
	"github.com/reone-boardgame/palette-roulette/internal/config"
	"github.com/reone-boardgame/palette-roulette/internal/core"
)

// Player is the runner's physics body. X never changes; Y grows downward.
type Player struct {
	X, Y          float64
	VelocityY     float64
	Width, Height float64
	OnGround      bool
	Boosted       bool // the long-press boost was already used on this jump
}

// NewPlayer places the player at the bottom edge of the viewport, airborne,
// so the first frame settles it onto the ground.
func NewPlayer(cfg config.RunnerPlayer, viewportH float64) Player {
	return Player{
		X:      cfg.X,
		Y:      viewportH,
		Width:  cfg.Width(),
		Height: cfg.Height,
	}
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the horizontal center used for pit detection and the
// game-over marker.
func (p Player) CenterX() float64 {
	return p.X + p.Width/2
}

// Jump launches the player with the given (negative) velocity.
// It does nothing unless the player is standing on the ground.
func (p *Player) Jump(force float64) bool {
	if !p.OnGround {
		return false
	}
	p.VelocityY = force
	p.OnGround = false
	return true
}

// Boost overrides the vertical velocity once per jump.
func (p *Player) Boost(force float64) bool {
	if p.OnGround || p.Boosted {
		return false
	}
	p.VelocityY = force
	p.Boosted = true
	return true
}

// Integrate advances the player by one frame: Euler step while airborne,
// then ground resolution against groundY and the pits in obstacles.
func (p *Player) Integrate(gravity, groundY float64, obstacles []Obstacle) {
	if !p.OnGround {
		p.VelocityY += gravity
		p.Y += p.VelocityY
	}

	if overPit(p.CenterX(), obstacles) {
		p.OnGround = false
		return
	}
	if p.Y+p.Height >= groundY {
		p.Y = groundY - p.Height
		p.VelocityY = 0
		p.OnGround = true
		p.Boosted = false
	}
}

// overPit reports whether x lies strictly inside any pit.
func overPit(x float64, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if o.Kind == Pit && o.Rect().SpansX(x) {
			return true
		}
	}
	return false
}
