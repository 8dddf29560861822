package breakout

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/breakout-sim/internal/core"
)

// WallSide is a bit set of play-field walls.
type WallSide uint8

const (
	WallTop WallSide = 1 << iota
	WallLeft
	WallRight
)

// Has reports whether side is in the set.
func (w WallSide) Has(side WallSide) bool {
	return w&side != 0
}

// String returns the walls in the set, e.g. "top|left".
func (w WallSide) String() string {
	if w == 0 {
		return "none"
	}
	s := ""
	for _, side := range []struct {
		bit  WallSide
		name string
	}{{WallTop, "top"}, {WallLeft, "left"}, {WallRight, "right"}} {
		if !w.Has(side.bit) {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += side.name
	}
	return s
}

// StepResult describes what happened during one tick.
type StepResult struct {
	Tick          uint64   // tick number just completed, starting at 1
	PaddleHit     bool     // ball bounced off the paddle
	Walls         WallSide // walls the ball bounced off
	PaddleClamped bool     // paddle hit a side wall and was stopped
	Destroyed     []int    // slot indices of blocks destroyed, ascending
	BallLost      bool     // ball is entirely below the play-field
}

// integrate applies one Euler step to everything that moves.
func (w *World) integrate() {
	core.Advance(&w.ball, w.dt)
	core.Advance(&w.paddle, w.dt)
}

// resolveBallPaddle bounces the ball off the paddle's top surface.
//
// The check is deliberately simple: the ball's center must be over the paddle
// and its vertical extent must reach into the paddle. Edge and corner impacts
// are treated like top hits.
func (w *World) resolveBallPaddle() bool {
	if !core.Overlaps(w.ball, w.paddle) {
		return false
	}

	pos := w.ball.Location()
	r := w.ball.Radius()
	pb := w.paddle.BoundingBox()

	if pos.X() < pb.Left || pos.X() > pb.Right {
		return false
	}
	ballSpan := core.Segment{Lo: w.ball.Bottom(), Hi: pos.Y() + r}
	if !core.SegmentsOverlap(ballSpan, pb.Vertical()) {
		return false
	}

	// Push the ball back above the paddle by however far it dipped in.
	dip := pb.Top - ballSpan.Lo
	w.ball.SetLocation(core.V(pos.X(), pb.Top+dip+r))

	speed := core.Speed(&w.ball) * w.tuning.Boost

	// -1 at the left edge, +1 at the right edge.
	halfWidth := pb.Width() * 0.5
	hit := (pos.X() - (pb.Left + halfWidth)) / halfWidth

	vx := hit * w.tuning.MaxDeflection * speed
	vy := core.Sqrt32(max(speed*speed-vx*vx, 0))
	w.ball.SetVelocity(core.V(vx, vy))

	return true
}

// resolveBallWalls keeps the ball inside the top, left and right walls. Each
// wall mirrors the ball back by its penetration depth and sends the matching
// velocity component away from the wall. The bottom is open.
func (w *World) resolveBallWalls() WallSide {
	var hit WallSide
	r := w.ball.Radius()
	lo, hi := r, 1-r

	pos, vel := w.ball.Location(), w.ball.Velocity()
	if pos.Y() >= hi {
		passed := pos.Y() - hi
		pos[1] = hi - passed
		vel[1] = -mgl32.Abs(vel.Y())
		hit |= WallTop
	}

	if pos.X() <= lo {
		passed := lo - pos.X()
		pos[0] = mgl32.Clamp(lo+passed, lo, hi)
		vel[0] = mgl32.Abs(vel.X())
		hit |= WallLeft
	}

	if pos.X() >= hi {
		passed := pos.X() - hi
		pos[0] = mgl32.Clamp(hi-passed, lo, hi)
		vel[0] = -mgl32.Abs(vel.X())
		hit |= WallRight
	}

	if hit != 0 {
		w.ball.SetLocation(pos)
		w.ball.SetVelocity(vel)
	}
	return hit
}

// resolvePaddleWalls stops the paddle at the side walls. It does not bounce.
func (w *World) resolvePaddleWalls() bool {
	clamped := false
	width := w.paddle.Dimensions().X()

	if core.RectRight(w.paddle) >= 1 {
		w.paddle.SetLocation(core.V(1-width, w.paddle.Origin().Y()))
		w.paddle.SetVelocity(core.Vec2{})
		clamped = true
	}

	if core.RectLeft(w.paddle) <= 0 {
		w.paddle.SetLocation(core.V(0, w.paddle.Origin().Y()))
		w.paddle.SetVelocity(core.Vec2{})
		clamped = true
	}

	return clamped
}

// resolveBallBlocks destroys every present block the ball's box touches.
// The ball keeps its velocity.
func (w *World) resolveBallBlocks() []int {
	var destroyed []int
	for i, b := range w.blocks.All() {
		if core.Overlaps(w.ball, b) && w.blocks.destroy(i) {
			destroyed = append(destroyed, i)
		}
	}
	return destroyed
}
