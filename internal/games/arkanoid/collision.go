package arkanoid

import (
	"fmt"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// Direction is the face of b that a struck, seen from a's center.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Vertical reports whether the impact is on the top or bottom face.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// Collision describes the overlap of two rectangles.
// Depth and Direction are meaningful only when Intersects is true.
type Collision struct {
	Intersects bool
	Depth      core.Vec2
	Direction  Direction
}

// Detect reports whether a and b overlap. Bounds are inclusive, so
// rectangles that share an edge collide.
func Detect(a, b core.Rect) bool {
	return a.Left() <= b.Right() && b.Left() <= a.Right() &&
		a.Top() <= b.Bottom() && b.Top() <= a.Bottom()
}

// Classify computes penetration depth and impact direction for two
// rectangles that Detect reported as overlapping.
//
// The vertical center delta wins over the horizontal one. A dead-center
// overlap (both deltas zero) is classified as DirUp.
//
// Classify panics if the rectangles do not overlap: callers must run
// Detect first.
func Classify(a, b core.Rect) Collision {
	if !Detect(a, b) {
		panic(fmt.Sprintf("arkanoid: Classify called on disjoint rects %+v and %+v", a, b))
	}

	dx := a.CenterX() - b.CenterX()
	dy := a.CenterY() - b.CenterY()

	c := Collision{
		Intersects: true,
		Depth: core.Vec2{
			X: a.HalfW() + b.HalfW() - dx,
			Y: a.HalfH() + b.HalfH() - dy,
		},
	}

	switch {
	case dy < 0:
		c.Direction = DirUp
	case dy > 0:
		c.Direction = DirDown
	case dx < 0:
		c.Direction = DirLeft
	case dx > 0:
		c.Direction = DirRight
	default:
		c.Direction = DirUp
	}
	return c
}

// Collide runs Detect and, on overlap, Classify.
func Collide(a, b core.Rect) Collision {
	if !Detect(a, b) {
		return Collision{}
	}
	return Classify(a, b)
}
