package breakout

import "github.com/vovakirdan/breakout-sim/internal/core"

// Paddle is the player-controlled rectangle at the bottom of the play-field.
type Paddle struct {
	dimensions core.Vec2
	origin     core.Vec2 // bottom-left corner
	velocity   core.Vec2
}

var (
	_ core.Shape     = Paddle{}
	_ core.Rectangle = Paddle{}
	_ core.Movable   = (*Paddle)(nil)
)

// NewPaddle creates a stationary paddle from its size and bottom-left corner.
func NewPaddle(dimensions, origin core.Vec2) Paddle {
	return Paddle{
		dimensions: dimensions,
		origin:     origin,
	}
}

// NewPaddleCentered creates a stationary paddle from its size and midpoint.
func NewPaddleCentered(dimensions, center core.Vec2) Paddle {
	return NewPaddle(dimensions, center.Sub(dimensions.Mul(0.5)))
}

// Dimensions returns the paddle's width and height.
func (p Paddle) Dimensions() core.Vec2 {
	return p.dimensions
}

// Origin returns the paddle's bottom-left corner.
func (p Paddle) Origin() core.Vec2 {
	return p.origin
}

// Midpoint returns the center of the paddle.
func (p Paddle) Midpoint() core.Vec2 {
	return core.RectCenter(p)
}

// Location returns the paddle's bottom-left corner.
func (p Paddle) Location() core.Vec2 {
	return p.origin
}

// Velocity returns the paddle's velocity.
func (p Paddle) Velocity() core.Vec2 {
	return p.velocity
}

// SetLocation moves the paddle's bottom-left corner.
func (p *Paddle) SetLocation(loc core.Vec2) {
	p.origin = loc
}

// SetVelocity replaces the paddle's velocity. Input handlers call this.
func (p *Paddle) SetVelocity(vel core.Vec2) {
	p.velocity = vel
}

// BoundingBox returns the paddle's rectangle.
func (p Paddle) BoundingBox() core.Box {
	return core.RectBounds(p)
}
