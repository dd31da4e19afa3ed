package runner

import "github.com/reone-boardgame/palette-roulette/internal/core"

// Renderer receives draw intents for one frame, back to front. Coordinates
// are world units with the origin at the top-left of the viewport.
type Renderer interface {
	Clear(viewport core.Size)
	Sun(center core.Point, radius float64)
	Cloud(x, y, size float64)
	Ground(r core.Rect)
	Pit(r core.Rect)
	Block(r core.Rect)
	Player(r core.Rect, onGround bool)
	Score(at core.Point, score int)
	Marker(x float64) // vertical line at the player's position at death
}

// NopRenderer discards every draw call.
type NopRenderer struct{}

func (NopRenderer) Clear(core.Size) {}
func (NopRenderer) Sun(core.Point, float64) {}
func (NopRenderer) Cloud(_, _, _ float64) {}
func (NopRenderer) Ground(core.Rect) {}
func (NopRenderer) Pit(core.Rect) {}
func (NopRenderer) Block(core.Rect) {}
func (NopRenderer) Player(core.Rect, bool) {}
func (NopRenderer) Score(core.Point, int) {}
func (NopRenderer) Marker(float64) {}

// scene holds the static decoration positions for a viewport.
type scene struct {
	sun       core.Point
	sunRadius float64
	score     core.Point
}

// drawState emits one frame. Pits are drawn over the ground, blocks over
// pits, the player over everything but the score and the marker.
func drawState(s *State, sc scene, r Renderer) {
	r.Clear(s.Viewport)
	r.Sun(sc.sun, sc.sunRadius)
	for _, c := range s.Clouds {
		r.Cloud(c.X, c.Y, c.Size)
	}
	r.Ground(core.NewRect(0, s.GroundY, s.Viewport.W, s.Viewport.H-s.GroundY))

	for _, o := range s.Obstacles {
		if o.Kind == Pit {
			r.Pit(o.Rect())
		}
	}
	for _, o := range s.Obstacles {
		if o.Kind == Block {
			r.Block(o.Rect())
		}
	}

	r.Player(s.Player.Rect(), s.Player.OnGround)
	r.Score(sc.score, s.Score)

	if s.Phase == PhaseGameOver {
		r.Marker(s.MarkerX)
	}
}
