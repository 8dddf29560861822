package core

// Shape is anything with an axis-aligned bounding box. Broad-phase collision
// detection only ever looks at this.
type Shape interface {
	BoundingBox() Box
}

// Rectangle is an axis-aligned rectangle described by its size and its
// bottom-left corner.
type Rectangle interface {
	Dimensions() Vec2
	Origin() Vec2
}

// Circle is described by its radius and its center.
type Circle interface {
	Radius() float32
	Origin() Vec2
}

// RectLeft returns the x coordinate of the rectangle's left edge.
func RectLeft(r Rectangle) float32 {
	return r.Origin().X()
}

// RectRight returns the x coordinate of the rectangle's right edge.
func RectRight(r Rectangle) float32 {
	return RectLeft(r) + r.Dimensions().X()
}

// RectBottom returns the y coordinate of the rectangle's bottom edge.
func RectBottom(r Rectangle) float32 {
	return r.Origin().Y()
}

// RectTop returns the y coordinate of the rectangle's top edge.
func RectTop(r Rectangle) float32 {
	return RectBottom(r) + r.Dimensions().Y()
}

// RectBounds derives a rectangle's bounding box from its origin and size.
func RectBounds(r Rectangle) Box {
	return BoxFromCorners(r.Origin(), r.Dimensions())
}

// RectCenter returns the midpoint of a rectangle.
func RectCenter(r Rectangle) Vec2 {
	return r.Origin().Add(r.Dimensions().Mul(0.5))
}

// CircleBounds returns [origin-radius, origin+radius] on both axes.
func CircleBounds(c Circle) Box {
	o, r := c.Origin(), c.Radius()
	return Box{
		Left:   o.X() - r,
		Right:  o.X() + r,
		Bottom: o.Y() - r,
		Top:    o.Y() + r,
	}
}

// Overlaps is the broad-phase test between two shapes.
func Overlaps(a, b Shape) bool {
	return BoxesOverlap(a.BoundingBox(), b.BoundingBox())
}
