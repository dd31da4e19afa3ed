package runner

import "github.com/reone-boardgame/palette-roulette/internal/core"

// hitsBlock reports whether the player box overlaps any block. Pits are not
// overlap-tested; falling into one is caught by fellOut.
func hitsBlock(player core.Rect, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if o.Kind == Block && player.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

// fellOut reports whether the player dropped below the viewport.
func fellOut(p Player, viewportH float64) bool {
	return p.Y > viewportH
}

// detectCollision runs both checks in order and returns the first cause.
func detectCollision(s *State) Cause {
	if hitsBlock(s.Player.Rect(), s.Obstacles) {
		return CauseBlock
	}
	if fellOut(s.Player, s.Viewport.H) {
		return CauseFall
	}
	return CauseNone
}
