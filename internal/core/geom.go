// Package core provides fundamental types and utilities shared by the runner
// and its front-ends. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Point is a position in world units (pixels of the logical viewport).
type Point struct {
	X, Y float64
}

// Size is the extent of the logical viewport in world units.
type Size struct {
	W, H float64
}

// Rect represents an axis-aligned bounding box used for collision detection.
// Y grows downward, as on a canvas.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// SpansX returns true if x lies strictly between the left and right edges.
func (r Rect) SpansX(x float64) bool {
	return x > r.X && x < r.Right()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
