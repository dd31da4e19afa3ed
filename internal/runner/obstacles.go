package runner

import (
	"math/rand"

	"github.com/reone-boardgame/palette-roulette/internal/config"
	"github.com/reone-boardgame/palette-roulette/internal/core"
)

// Kind tags an obstacle variant.
type Kind int

const (
	Block Kind = iota // solid; touching it ends the run
	Pit               // hole in the ground
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Block:
		return "block"
	case Pit:
		return "pit"
	default:
		return "unknown"
	}
}

// Obstacle is a block or a pit. Passed flips to true once, when the obstacle
// scrolls fully behind the player, and never reverts.
type Obstacle struct {
	Kind          Kind
	X, Y          float64
	Width, Height float64
	Passed        bool
}

// Rect returns the obstacle's bounding box.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Random is the randomness the generator needs. *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// NewRandom returns the default seeded source.
func NewRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}

// Generator produces obstacles to the right of the last one.
type Generator struct {
	rng          Random
	cfg          config.RunnerObstacles
	playerHeight float64
	groundY      float64
	groundHeight float64
	viewportW    float64
}

// NewGenerator creates a generator for a viewport. cfg must already be
// scaled for that viewport.
func NewGenerator(cfg config.RunnerConfig, viewport core.Size, rng Random) *Generator {
	return &Generator{
		rng:          rng,
		cfg:          cfg.Obstacles,
		playerHeight: cfg.Player.Height,
		groundY:      viewport.H - cfg.Ground.Height,
		groundHeight: cfg.Ground.Height,
		viewportW:    viewport.W,
	}
}

// Next generates the obstacle that follows last. With no last obstacle it is
// placed just beyond the right edge.
//
// Draw order is fixed: gap, kind, then block tier or pit width.
func (g *Generator) Next(last *Obstacle) Obstacle {
	gap := g.between(g.cfg.MinGap, g.cfg.MaxGap)

	x := g.viewportW + g.cfg.FirstSpawnOffset
	if last != nil {
		x = last.X + last.Width + gap
	}

	if g.rng.Float64() > 0.5 {
		y := g.groundY - g.cfg.BlockHeight
		if g.rng.Float64() <= 0.5 {
			y = g.ElevatedY()
		}
		return Obstacle{Kind: Block, X: x, Y: y, Width: g.cfg.BlockWidth, Height: g.cfg.BlockHeight}
	}

	width := g.between(g.cfg.MinPitWidth, g.cfg.MaxPitWidth)
	return Obstacle{Kind: Pit, X: x, Y: g.groundY, Width: width, Height: g.groundHeight}
}

// ElevatedY is the top of an upper-tier block: just above a standing
// player's head.
func (g *Generator) ElevatedY() float64 {
	return g.groundY - g.playerHeight - g.cfg.BlockHeight - g.cfg.ElevatedClearance
}

// ShouldSpawn reports whether the rightmost obstacle has moved far enough
// from the right edge to make room for another. obstacles must not be empty.
func (g *Generator) ShouldSpawn(obstacles []Obstacle) bool {
	last := obstacles[len(obstacles)-1]
	return g.viewportW-last.X > g.cfg.MinDistanceFromEdge
}

func (g *Generator) between(lo, hi float64) float64 {
	return g.rng.Float64()*(hi-lo) + lo
}

// advanceObstacles scrolls every obstacle left by speed and returns how many
// were passed for the first time this frame.
func advanceObstacles(obstacles []Obstacle, speed, playerX float64) int {
	scored := 0
	for i := range obstacles {
		o := &obstacles[i]
		o.X -= speed
		if !o.Passed && o.X+o.Width < playerX {
			o.Passed = true
			scored++
		}
	}
	return scored
}

// pruneObstacles drops obstacles that left the viewport on the left. The
// rightmost one is always kept so the list never becomes empty.
func pruneObstacles(obstacles []Obstacle) []Obstacle {
	if len(obstacles) == 0 {
		return obstacles
	}
	last := len(obstacles) - 1
	kept := obstacles[:0]
	for i, o := range obstacles {
		if o.X+o.Width > 0 || i == last {
			kept = append(kept, o)
		}
	}
	return kept
}
