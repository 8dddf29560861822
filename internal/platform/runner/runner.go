// Package runner drives a breakout world headlessly: it feeds input, ticks at a
// fixed step as fast as possible or paced to wall-clock time, and tallies what
// happened.
package runner

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/vovakirdan/breakout-sim/internal/core"
	"github.com/vovakirdan/breakout-sim/internal/games/breakout"
)

// ErrNoLimit is returned for a run that could spin forever without a tick limit.
var ErrNoLimit = errors.New("runner: unpaced run needs a tick limit")

// InputSource decides the held actions for the next tick.
type InputSource interface {
	Next(w *breakout.World) core.InputFrame
}

// InputFunc adapts a function to InputSource.
type InputFunc func(w *breakout.World) core.InputFrame

// Next calls f.
func (f InputFunc) Next(w *breakout.World) core.InputFrame { return f(w) }

// Idle never presses anything.
var Idle = InputFunc(func(*breakout.World) core.InputFrame { return core.NewInputFrame() })

// Autopilot steers the paddle under the ball.
func Autopilot(deadZone float32) InputSource {
	return InputFunc(func(w *breakout.World) core.InputFrame {
		return breakout.Autopilot(w, deadZone)
	})
}

// Options controls a run.
type Options struct {
	Ticks      uint64        // stop after this many ticks; 0 means no limit
	Realtime   bool          // pace ticks to wall-clock time
	TickRate   int           // ticks per second, used for pacing
	MaxCatchUp time.Duration // how far behind the paced loop may fall before it stops catching up
	KeepGoing  bool          // keep ticking after the ball is lost or the field is cleared
}

// Summary tallies a finished run.
type Summary struct {
	RunID           string
	Level           string
	Ticks           uint64
	Elapsed         float64
	PaddleHits      int
	WallHits        int
	BlocksDestroyed int
	BlocksLeft      int
	BallLost        bool
	LostAtTick      uint64
	Cleared         bool
	Interrupted     bool
	Hash            uint64
}

// Runner owns one world for the duration of a run.
type Runner struct {
	world  *breakout.World
	ctrl   breakout.Controller
	input  InputSource
	opts   Options
	logger *log.Logger

	summary Summary
	clamped bool
}

// New creates a runner. A nil input source means Idle.
func New(w *breakout.World, ctrl breakout.Controller, input InputSource, opts Options, logger *log.Logger) *Runner {
	if input == nil {
		input = Idle
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		world:  w,
		ctrl:   ctrl,
		input:  input,
		opts:   opts,
		logger: logger,
	}
}

// World returns the world being driven.
func (r *Runner) World() *breakout.World {
	return r.world
}

// limiter returns the pacing limiter for realtime runs. The burst lets a loop
// that fell behind run MaxCatchUp worth of ticks back to back.
func (r *Runner) limiter() *rate.Limiter {
	interval := max(time.Second/time.Duration(r.opts.TickRate), time.Nanosecond)
	burst := max(int(r.opts.MaxCatchUp/interval), 1)
	return rate.NewLimiter(rate.Every(interval), burst)
}

// Run ticks until the tick limit, a stop condition or ctx cancellation.
// Cancellation is not an error: the summary is returned with Interrupted set.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	if r.opts.Ticks == 0 && !r.opts.Realtime {
		return Summary{}, ErrNoLimit
	}

	var limiter *rate.Limiter
	if r.opts.Realtime {
		if r.opts.TickRate <= 0 {
			return Summary{}, errors.New("runner: realtime mode needs a positive tick rate")
		}
		limiter = r.limiter()
	}

	hadBlocks := r.world.Blocks().Len() > 0
	r.logger.Info("run started",
		"ticks", r.opts.Ticks,
		"realtime", r.opts.Realtime,
		"blocks", r.world.Blocks().Present(),
	)

	for r.opts.Ticks == 0 || r.world.Ticks() < r.opts.Ticks {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				r.summary.Interrupted = true
				break
			}
		} else if ctx.Err() != nil {
			r.summary.Interrupted = true
			break
		}

		r.ctrl.Apply(r.world, r.input.Next(r.world))
		res := r.world.Tick()
		r.record(res)

		if r.opts.KeepGoing {
			continue
		}
		if res.BallLost {
			break
		}
		if hadBlocks && r.world.Blocks().Present() == 0 {
			r.summary.Cleared = true
			r.logger.Info("field cleared", "tick", res.Tick)
			break
		}
	}

	r.summary.Ticks = r.world.Ticks()
	r.summary.Elapsed = r.world.Elapsed()
	r.summary.BlocksLeft = r.world.Blocks().Present()
	snap := r.world.Snapshot()
	r.summary.Hash = snap.Hash()

	r.logger.Info("run finished",
		"ticks", r.summary.Ticks,
		"paddle_hits", r.summary.PaddleHits,
		"blocks_left", r.summary.BlocksLeft,
		"interrupted", r.summary.Interrupted,
	)
	return r.summary, nil
}

// record folds one tick's events into the summary.
func (r *Runner) record(res breakout.StepResult) {
	if res.PaddleHit {
		r.summary.PaddleHits++
		r.logger.Debug("paddle hit", "tick", res.Tick, "velocity", r.world.Ball().Velocity())
	}
	if res.Walls != 0 {
		r.summary.WallHits++
		r.logger.Debug("wall bounce", "tick", res.Tick, "walls", res.Walls)
	}
	if res.PaddleClamped && !r.clamped {
		r.logger.Debug("paddle clamped", "tick", res.Tick)
	}
	r.clamped = res.PaddleClamped
	if n := len(res.Destroyed); n > 0 {
		r.summary.BlocksDestroyed += n
		r.logger.Debug("blocks destroyed", "tick", res.Tick, "slots", res.Destroyed)
	}
	if res.BallLost && !r.summary.BallLost {
		r.summary.BallLost = true
		r.summary.LostAtTick = res.Tick
		r.logger.Info("ball lost", "tick", res.Tick)
	}
}
