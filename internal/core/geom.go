// Package core provides the geometric primitives shared by the simulation:
// vectors, axis-aligned boxes, and the small capability interfaces entities
// implement. It has no dependency on any game package so collision logic stays
// pure and testable.
package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec2 is a 2D vector of float32 components. Positions live in the normalized
// [0,1]x[0,1] play-field, velocities are in play-field units per second.
type Vec2 = mgl32.Vec2

// V is a shorthand constructor for Vec2.
func V(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Integrate returns pos + vel*dt, component-wise (explicit Euler).
func Integrate(pos, vel Vec2, dt float32) Vec2 {
	return pos.Add(vel.Mul(dt))
}

// Finite reports whether both components are neither NaN nor infinite.
func Finite(v Vec2) bool {
	return finite(v[0]) && finite(v[1])
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// Segment is a closed 1-D interval. Lo must not exceed Hi.
type Segment struct {
	Lo, Hi float32
}

// SegmentsOverlap reports whether two intervals share at least one point.
// Comparison is exact: intervals that merely touch overlap.
func SegmentsOverlap(a, b Segment) bool {
	return a.Hi >= b.Lo && b.Hi >= a.Lo
}

// Box is an axis-aligned bounding box with Left <= Right and Bottom <= Top.
type Box struct {
	Left, Right, Bottom, Top float32
}

// BoxFromCorners builds a box from its bottom-left corner and its size.
func BoxFromCorners(origin, size Vec2) Box {
	return Box{
		Left:   origin[0],
		Right:  origin[0] + size[0],
		Bottom: origin[1],
		Top:    origin[1] + size[1],
	}
}

// Horizontal returns the box's projection on the x axis.
func (b Box) Horizontal() Segment {
	return Segment{Lo: b.Left, Hi: b.Right}
}

// Vertical returns the box's projection on the y axis.
func (b Box) Vertical() Segment {
	return Segment{Lo: b.Bottom, Hi: b.Top}
}

// Width returns Right - Left.
func (b Box) Width() float32 {
	return b.Right - b.Left
}

// Height returns Top - Bottom.
func (b Box) Height() float32 {
	return b.Top - b.Bottom
}

// BoxesOverlap is the separating-axis test specialized to axis-aligned boxes:
// the boxes overlap iff both their horizontal and vertical projections do.
func BoxesOverlap(a, b Box) bool {
	return SegmentsOverlap(a.Horizontal(), b.Horizontal()) &&
		SegmentsOverlap(a.Vertical(), b.Vertical())
}

// Sqrt32 is math.Sqrt for float32.
func Sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
