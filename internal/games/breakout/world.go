// Package breakout implements the breakout simulation kernel: a ball, a paddle
// and a set of destructible blocks on the unit play-field, advanced one fixed
// time step at a time.
//
// The package does no rendering, timing or input polling. A driving loop calls
// World.Tick at a fixed cadence, mutates the paddle's velocity in response to
// input, and reads entity geometry back for drawing. World is not safe for
// concurrent use; callers that share one across goroutines must serialize
// every call.
package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/breakout-sim/internal/core"
)

// Tuning holds the constants of the paddle bounce.
type Tuning struct {
	// Boost multiplies the ball's speed on every paddle hit to keep rallies progressing.
	Boost float32 `yaml:"boost"`
	// MaxDeflection is the share of the total speed that may go into the
	// horizontal component when the ball hits the very edge of the paddle.
	MaxDeflection float32 `yaml:"max_deflection"`
}

// DefaultTuning returns the standard bounce constants.
func DefaultTuning() Tuning {
	return Tuning{
		Boost:         1.05,
		MaxDeflection: 0.8,
	}
}

// Builder accumulates the parts of a World. dt, ball and paddle are mandatory;
// blocks default to none and tuning to DefaultTuning.
type Builder struct {
	dt     *float32
	ball   *Ball
	paddle *Paddle
	tuning Tuning
	blocks []Block
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{tuning: DefaultTuning()}
}

// DT sets the fixed time step in simulated seconds.
func (b *Builder) DT(dt float32) *Builder {
	b.dt = &dt
	return b
}

// Ball sets the ball.
func (b *Builder) Ball(ball Ball) *Builder {
	b.ball = &ball
	return b
}

// Paddle sets the paddle.
func (b *Builder) Paddle(paddle Paddle) *Builder {
	b.paddle = &paddle
	return b
}

// Tuning overrides the bounce constants.
func (b *Builder) Tuning(t Tuning) *Builder {
	b.tuning = t
	return b
}

// AddBlock appends one block. Blocks are kept in the order they are added,
// nearest to furthest by convention.
func (b *Builder) AddBlock(block Block) *Builder {
	b.blocks = append(b.blocks, block)
	return b
}

// AddBlocks appends several blocks in order.
func (b *Builder) AddBlocks(blocks ...Block) *Builder {
	b.blocks = append(b.blocks, blocks...)
	return b
}

// Build validates the accumulated parts and returns the world.
func (b *Builder) Build() (*World, error) {
	switch {
	case b.dt == nil:
		return nil, fmt.Errorf("%w: dt", ErrMissingField)
	case b.ball == nil:
		return nil, fmt.Errorf("%w: ball", ErrMissingField)
	case b.paddle == nil:
		return nil, fmt.Errorf("%w: paddle", ErrMissingField)
	}

	dt := *b.dt
	if !(dt > 0) || math.IsInf(float64(dt), 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidDT, dt)
	}
	if err := b.checkGeometry(); err != nil {
		return nil, err
	}

	return &World{
		dt:     dt,
		ball:   *b.ball,
		paddle: *b.paddle,
		tuning: b.tuning,
		blocks: newBlocks(b.blocks),
	}, nil
}

// checkGeometry rejects shapes that would divide by zero or carry NaN into
// the first tick.
func (b *Builder) checkGeometry() error {
	ball, paddle := b.ball, b.paddle
	switch {
	case !(ball.Radius() > 0) || math.IsInf(float64(ball.Radius()), 0):
		return fmt.Errorf("%w: ball radius %v", ErrInvalidGeometry, ball.Radius())
	case !core.Finite(ball.Midpoint()) || !core.Finite(ball.Velocity()):
		return fmt.Errorf("%w: ball midpoint %v velocity %v", ErrInvalidGeometry, ball.Midpoint(), ball.Velocity())
	case !positive(paddle.Dimensions()):
		return fmt.Errorf("%w: paddle dimensions %v", ErrInvalidGeometry, paddle.Dimensions())
	case !core.Finite(paddle.Origin()) || !core.Finite(paddle.Velocity()):
		return fmt.Errorf("%w: paddle origin %v velocity %v", ErrInvalidGeometry, paddle.Origin(), paddle.Velocity())
	}
	for i, blk := range b.blocks {
		if !positive(blk.Dimensions()) || !core.Finite(blk.Origin()) {
			return fmt.Errorf("%w: block %d at %v size %v", ErrInvalidGeometry, i, blk.Origin(), blk.Dimensions())
		}
	}
	return nil
}

// positive reports whether both components are finite and greater than zero.
func positive(v core.Vec2) bool {
	return core.Finite(v) && v.X() > 0 && v.Y() > 0
}

// World is the complete simulation state.
type World struct {
	dt     float32 // fixed time step, immutable
	ball   Ball
	paddle Paddle
	tuning Tuning
	blocks Blocks // nearest to furthest
	ticks  uint64
}

// DT returns the fixed time step.
func (w *World) DT() float32 {
	return w.dt
}

// Ball returns a copy of the ball.
func (w *World) Ball() Ball {
	return w.ball
}

// Paddle returns a copy of the paddle.
func (w *World) Paddle() Paddle {
	return w.paddle
}

// PaddleMut returns the paddle for input handlers to set its velocity.
func (w *World) PaddleMut() *Paddle {
	return &w.paddle
}

// Blocks returns the block arena. Callers must treat it as read-only.
func (w *World) Blocks() *Blocks {
	return &w.blocks
}

// Tuning returns the bounce constants in use.
func (w *World) Tuning() Tuning {
	return w.tuning
}

// Ticks returns how many ticks have run.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Elapsed returns the simulated time in seconds.
func (w *World) Elapsed() float64 {
	return float64(w.ticks) * float64(w.dt)
}

// BallLost reports whether the ball has dropped entirely below the play-field.
// The simulation keeps running either way; acting on it is up to the caller.
func (w *World) BallLost() bool {
	return w.ball.BoundingBox().Top < 0
}

// Tick advances the simulation by exactly one dt. The steps run in a fixed
// order and later steps see positions corrected by earlier ones.
func (w *World) Tick() StepResult {
	var res StepResult

	w.integrate()
	res.PaddleHit = w.resolveBallPaddle()
	res.Walls = w.resolveBallWalls()
	res.PaddleClamped = w.resolvePaddleWalls()
	res.Destroyed = w.resolveBallBlocks()

	w.ticks++
	res.Tick = w.ticks
	res.BallLost = w.BallLost()
	return res
}
