package tui

import (
	"fmt"
	"math"

	"github.com/reone-boardgame/palette-roulette/internal/core"
)

// Glyphs used to rasterize the scene.
const (
	SunChar    = '▒'
	CloudChar  = '~'
	GroundChar = '█'
	GrassChar  = '▀'
	BlockChar  = '▓'
	PlayerChar = '█'
	LegLeft    = '╱'
	LegRight   = '╲'
	MarkerChar = '┃'
)

// ScreenRenderer rasterizes world-space draw intents into a cell buffer.
// One column covers cellW world units and one row covers cellH.
type ScreenRenderer struct {
	screen       *core.Screen
	cellW, cellH float64
}

// NewScreenRenderer creates a renderer drawing into screen.
func NewScreenRenderer(screen *core.Screen, cellW, cellH float64) *ScreenRenderer {
	return &ScreenRenderer{screen: screen, cellW: cellW, cellH: cellH}
}

// Viewport returns the world size covered by the screen.
func (r *ScreenRenderer) Viewport() (w, h int) {
	return int(float64(r.screen.Width()) * r.cellW), int(float64(r.screen.Height()) * r.cellH)
}

// Screen returns the target buffer.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// area converts a world rectangle to the cells it touches, clipped to the
// screen. Anything with positive size covers at least one cell.
func (r *ScreenRenderer) area(rect core.Rect) core.Area {
	x0 := int(math.Floor(rect.X / r.cellW))
	y0 := int(math.Floor(rect.Y / r.cellH))
	x1 := int(math.Ceil(rect.Right() / r.cellW))
	y1 := int(math.Ceil(rect.Bottom() / r.cellH))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0 = core.Clamp(x0, 0, r.screen.Width())
	x1 = core.Clamp(x1, 0, r.screen.Width())
	y0 = core.Clamp(y0, 0, r.screen.Height())
	y1 = core.Clamp(y1, 0, r.screen.Height())
	return core.Area{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (r *ScreenRenderer) col(x float64) int {
	return int(math.Floor(x / r.cellW))
}

func (r *ScreenRenderer) row(y float64) int {
	return int(math.Floor(y / r.cellH))
}

// Clear blanks the buffer.
func (r *ScreenRenderer) Clear(core.Size) {
	r.screen.Clear()
}

// Sun fills the cells whose centers lie inside the circle.
func (r *ScreenRenderer) Sun(center core.Point, radius float64) {
	a := r.area(core.NewRect(center.X-radius, center.Y-radius, 2*radius, 2*radius))
	for y := a.Y; y < a.Bottom(); y++ {
		for x := a.X; x < a.Right(); x++ {
			cx := (float64(x) + 0.5) * r.cellW
			cy := (float64(y) + 0.5) * r.cellH
			if math.Hypot(cx-center.X, cy-center.Y) <= radius {
				r.screen.SetCell(x, y, SunChar, core.ColorYellow)
			}
		}
	}
}

// Cloud draws a flat streak roughly as wide as the cloud outline.
func (r *ScreenRenderer) Cloud(x, y, size float64) {
	y0 := r.row(y)
	x0 := r.col(x)
	x1 := r.col(x + size*2.4)
	for cx := x0; cx <= x1; cx++ {
		r.screen.SetCell(cx, y0, CloudChar, core.ColorGray)
	}
}

// Ground fills the ground strip with a grass edge on top.
func (r *ScreenRenderer) Ground(rect core.Rect) {
	a := r.area(rect)
	r.screen.FillArea(a, GroundChar, core.ColorDarkGray)
	for x := a.X; x < a.Right(); x++ {
		r.screen.SetCell(x, a.Y, GrassChar, core.ColorGreen)
	}
}

// Pit cuts a hole through the ground.
func (r *ScreenRenderer) Pit(rect core.Rect) {
	r.screen.FillArea(r.innerArea(rect), ' ', core.ColorDefault)
}

// innerArea converts a rectangle to the cells fully inside it, so a pit never
// looks wider than the span the player can fall through.
func (r *ScreenRenderer) innerArea(rect core.Rect) core.Area {
	x0 := int(math.Ceil(rect.X / r.cellW))
	x1 := int(math.Floor(rect.Right() / r.cellW))
	if x1 <= x0 {
		return core.Area{}
	}
	a := r.area(rect)
	x0 = core.Clamp(x0, 0, r.screen.Width())
	x1 = core.Clamp(x1, 0, r.screen.Width())
	return core.Area{X: x0, Y: a.Y, W: x1 - x0, H: a.H}
}

// Block fills a solid obstacle.
func (r *ScreenRenderer) Block(rect core.Rect) {
	r.screen.FillArea(r.area(rect), BlockChar, core.ColorGreen)
}

// Player draws the runner; legs show while grounded.
func (r *ScreenRenderer) Player(rect core.Rect, onGround bool) {
	a := r.area(rect)
	r.screen.FillArea(a, PlayerChar, core.ColorBlue)
	if !onGround || a.H < 2 || a.W < 2 {
		return
	}
	legs := a.Bottom() - 1
	for x := a.X; x < a.Right(); x++ {
		r.screen.SetCell(x, legs, ' ', core.ColorDefault)
	}
	r.screen.SetCell(a.X, legs, LegLeft, core.ColorBlue)
	r.screen.SetCell(a.Right()-1, legs, LegRight, core.ColorBlue)
}

// Score writes the score at the given world position (text baseline).
func (r *ScreenRenderer) Score(at core.Point, score int) {
	row := max(r.row(at.Y)-1, 0)
	r.screen.DrawText(r.col(at.X), row, fmt.Sprintf("Score: %d", score), core.ColorBrightWhite)
}

// Marker draws the vertical death line.
func (r *ScreenRenderer) Marker(x float64) {
	r.screen.DrawVLine(r.col(x), 0, r.screen.Height(), MarkerChar, core.ColorBrightRed)
}
