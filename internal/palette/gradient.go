// Package palette maps scroll distance onto a closed, cyclic color gradient.
package palette

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit per channel color.
type RGB struct {
	R, G, B uint8
}

// Stops is the gradient table. The first and last entries are identical so
// the gradient wraps without a seam.
var Stops = [...]RGB{
	{255, 0, 0},     // red
	{255, 165, 0},   // orange
	{255, 255, 0},   // yellow
	{130, 102, 68},  // brown
	{0, 255, 0},     // lime
	{0, 255, 255},   // cyan
	{192, 160, 128}, // light brown
	{0, 0, 255},     // blue
	{255, 0, 255},   // magenta
	{74, 64, 58},    // dark brown
	{255, 0, 0},     // red again
}

// At returns the gradient color for a ratio in [0, 1).
// Ratios outside that range are clamped.
func At(ratio float64) RGB {
	if math.IsNaN(ratio) || ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	pos := ratio * float64(len(Stops)-1)
	lo := int(math.Floor(pos))
	if lo > len(Stops)-1 {
		lo = len(Stops) - 1
	}
	hi := min(lo+1, len(Stops)-1)
	frac := pos - float64(lo)

	a, b := Stops[lo], Stops[hi]
	return RGB{
		R: lerp(a.R, b.R, frac),
		G: lerp(a.G, b.G, frac),
		B: lerp(a.B, b.B, frac),
	}
}

func lerp(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a) + (float64(b)-float64(a))*t)
	return uint8(max(0, min(255, v)))
}

// Ratio folds a scroll distance plus the player's horizontal center into the
// gradient's index space. One full cycle spans twice the viewport width.
func Ratio(scroll, centerX, viewportW float64) float64 {
	band := 2 * viewportW
	if band <= 0 {
		return 0
	}
	return math.Mod(math.Abs(scroll)+centerX, band) / band
}

// ForScroll is At(Ratio(scroll, centerX, viewportW)).
func ForScroll(scroll, centerX, viewportW float64) RGB {
	return At(Ratio(scroll, centerX, viewportW))
}

// CSS formats the color the way the host page expects it.
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.CSS()
}

// Colorful converts to a go-colorful color.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

// ParseHex reads a #rrggbb color.
func ParseHex(s string) (RGB, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("palette: %w", err)
	}
	r, g, b := col.RGB255()
	return RGB{r, g, b}, nil
}

// Luminance returns the YIQ brightness in [0, 255].
func (c RGB) Luminance() float64 {
	return (float64(c.R)*299 + float64(c.G)*587 + float64(c.B)*114) / 1000
}

// ContrastText picks black or white text for use on top of c.
func (c RGB) ContrastText() RGB {
	if c.Luminance() >= 128 {
		return RGB{0, 0, 0}
	}
	return RGB{255, 255, 255}
}

// Theme is a pair of colors resolved at game over.
type Theme struct {
	Main RGB // bottom layer
	Sub  RGB // top layer
}

// Resolve computes the theme for the given scroll totals.
func Resolve(bottomScroll, topScroll, centerX, viewportW float64) Theme {
	return Theme{
		Main: ForScroll(bottomScroll, centerX, viewportW),
		Sub:  ForScroll(topScroll, centerX, viewportW),
	}
}
