package breakout

import "github.com/vovakirdan/breakout-sim/internal/core"

// DefaultPaddleSpeed is the horizontal paddle speed in play-field units per second.
const DefaultPaddleSpeed = 0.40

// Controller turns directional input into paddle velocity.
type Controller struct {
	Speed float32
}

// NewController creates a controller that moves the paddle at speed.
func NewController(speed float32) Controller {
	return Controller{Speed: speed}
}

// Velocity returns the paddle velocity for an input frame. Holding one
// direction moves at Speed, holding both or neither stops.
func (c Controller) Velocity(in core.InputFrame) core.Vec2 {
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && !right:
		return core.V(-c.Speed, 0)
	case right && !left:
		return core.V(c.Speed, 0)
	default:
		return core.Vec2{}
	}
}

// Apply sets the world's paddle velocity from an input frame.
func (c Controller) Apply(w *World, in core.InputFrame) {
	w.PaddleMut().SetVelocity(c.Velocity(in))
}

// Autopilot returns the input that steers the paddle's center toward the
// ball. Within deadZone of the ball it holds still.
func Autopilot(w *World, deadZone float32) core.InputFrame {
	in := core.NewInputFrame()
	paddleX := w.Paddle().Midpoint().X()
	ballX := w.Ball().Midpoint().X()

	switch {
	case ballX < paddleX-deadZone:
		in.Set(core.ActionLeft)
	case ballX > paddleX+deadZone:
		in.Set(core.ActionRight)
	}
	return in
}
