// Package core provides fundamental types and utilities for the arkanoid
// simulation. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Vec2 is an integer 2D vector used for positions, sizes and velocities.
// Units are playfield pixels (or pixels per frame for velocities).
type Vec2 struct {
	X, Y int
}

// V creates a vector from its components.
func V(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect represents an axis-aligned rectangle: top-left position plus size.
// Width and height are never negative when built through NewRect.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
// Negative dimensions are clamped to zero.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: Max(w, 0), H: Max(h, 0)}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() int {
	return r.X
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() int {
	return r.Y
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// HalfW returns half the width, truncated.
func (r Rect) HalfW() int {
	return r.W / 2
}

// HalfH returns half the height, truncated.
func (r Rect) HalfH() int {
	return r.H / 2
}

// CenterX returns the x-coordinate of the center (integer division).
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// CenterY returns the y-coordinate of the center (integer division).
func (r Rect) CenterY() int {
	return r.Y + r.H/2
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Intersects returns true if this rectangle overlaps with another.
// Edges that merely touch do not count; the game's collision detector uses
// inclusive bounds instead, this is for clipping.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
