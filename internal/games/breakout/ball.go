package breakout

import "github.com/vovakirdan/breakout-sim/internal/core"

// Ball is the circle bouncing around the play-field.
type Ball struct {
	radius   float32
	midpoint core.Vec2
	velocity core.Vec2
	spin     float32 // tracked for callers, not applied to motion
}

var (
	_ core.Shape   = Ball{}
	_ core.Circle  = Ball{}
	_ core.Movable = (*Ball)(nil)
)

// NewBall creates a ball with the given radius, center and velocity.
func NewBall(radius float32, midpoint, velocity core.Vec2) Ball {
	return Ball{
		radius:   radius,
		midpoint: midpoint,
		velocity: velocity,
	}
}

// Radius returns the ball's radius.
func (b Ball) Radius() float32 {
	return b.radius
}

// Origin returns the ball's center.
func (b Ball) Origin() core.Vec2 {
	return b.midpoint
}

// Midpoint is an alias for Origin.
func (b Ball) Midpoint() core.Vec2 {
	return b.midpoint
}

// Spin returns the ball's spin.
func (b Ball) Spin() float32 {
	return b.spin
}

// SetSpin sets the ball's spin.
func (b *Ball) SetSpin(spin float32) {
	b.spin = spin
}

// Location returns the ball's center.
func (b Ball) Location() core.Vec2 {
	return b.midpoint
}

// Velocity returns the ball's velocity.
func (b Ball) Velocity() core.Vec2 {
	return b.velocity
}

// SetLocation moves the ball's center.
func (b *Ball) SetLocation(loc core.Vec2) {
	b.midpoint = loc
}

// SetVelocity replaces the ball's velocity.
func (b *Ball) SetVelocity(vel core.Vec2) {
	b.velocity = vel
}

// BoundingBox returns the square enclosing the ball.
func (b Ball) BoundingBox() core.Box {
	return core.CircleBounds(b)
}

// Bottom returns the lowest y the ball reaches.
func (b Ball) Bottom() float32 {
	return b.midpoint.Y() - b.radius
}
