package runner

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/breakout-sim/internal/core"
	"github.com/vovakirdan/breakout-sim/internal/games/breakout"
)

const testDT = float32(1.0 / 120)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func referenceWorld(t *testing.T) *breakout.World {
	t.Helper()
	w, err := breakout.NewBuilder().
		DT(testDT).
		Ball(breakout.NewBall(0.02, core.V(0.5, 0.24), core.V(0, -0.1))).
		Paddle(breakout.NewPaddleCentered(core.V(0.1, 0.04), core.V(0.5, 0.2))).
		Tuning(breakout.Tuning{Boost: 1, MaxDeflection: 0.8}).
		Build()
	require.NoError(t, err)
	return w
}

func newRunner(w *breakout.World, input InputSource, opts Options) *Runner {
	return New(w, breakout.NewController(breakout.DefaultPaddleSpeed), input, opts, quietLogger())
}

func TestRunNeedsLimit(t *testing.T) {
	r := newRunner(referenceWorld(t), nil, Options{})
	_, err := r.Run(context.Background())
	assert.ErrorIs(t, err, ErrNoLimit)
}

func TestRunTickLimit(t *testing.T) {
	w := referenceWorld(t)
	r := newRunner(w, nil, Options{Ticks: 120})

	sum, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(120), sum.Ticks)
	assert.Equal(t, 1, sum.PaddleHits)
	assert.False(t, sum.BallLost)
	assert.False(t, sum.Interrupted)
	assert.InDelta(t, 1.0, sum.Elapsed, 1e-6)
	assert.InDelta(t, 0.34, w.Ball().Location().Y(), 1e-3)

	assert.Same(t, w, r.World())
	assert.Equal(t, w.Snapshot().Hash(), sum.Hash)
}

func TestRunStopsWhenBallLost(t *testing.T) {
	w, err := breakout.NewBuilder().
		DT(testDT).
		Ball(breakout.NewBall(0.02, core.V(0.1, 0.5), core.V(0, -1))).
		Paddle(breakout.NewPaddleCentered(core.V(0.1, 0.02), core.V(0.8, 0.05))).
		Build()
	require.NoError(t, err)

	sum, err := newRunner(w, Idle, Options{Ticks: 1000}).Run(context.Background())
	require.NoError(t, err)

	assert.True(t, sum.BallLost)
	assert.Equal(t, sum.LostAtTick, sum.Ticks)
	assert.Less(t, sum.Ticks, uint64(1000))
}

func TestRunKeepGoingAfterLoss(t *testing.T) {
	w, err := breakout.NewBuilder().
		DT(testDT).
		Ball(breakout.NewBall(0.02, core.V(0.1, 0.5), core.V(0, -1))).
		Paddle(breakout.NewPaddleCentered(core.V(0.1, 0.02), core.V(0.8, 0.05))).
		Build()
	require.NoError(t, err)

	sum, err := newRunner(w, Idle, Options{Ticks: 200, KeepGoing: true}).Run(context.Background())
	require.NoError(t, err)

	assert.True(t, sum.BallLost)
	assert.Equal(t, uint64(200), sum.Ticks)
	assert.Less(t, sum.LostAtTick, sum.Ticks)
}

func TestRunStopsWhenCleared(t *testing.T) {
	w, err := breakout.NewBuilder().
		DT(testDT).
		Ball(breakout.NewBall(0.02, core.V(0.5, 0.5), core.V(0, 0.5))).
		Paddle(breakout.NewPaddleCentered(core.V(0.1, 0.02), core.V(0.5, 0.05))).
		AddBlock(breakout.NewBlock(core.V(0.2, 0.05), core.V(0.4, 0.7))).
		Build()
	require.NoError(t, err)

	sum, err := newRunner(w, Idle, Options{Ticks: 1000}).Run(context.Background())
	require.NoError(t, err)

	assert.True(t, sum.Cleared)
	assert.Equal(t, 1, sum.BlocksDestroyed)
	assert.Equal(t, 0, sum.BlocksLeft)
	assert.Less(t, sum.Ticks, uint64(100))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := newRunner(referenceWorld(t), nil, Options{Ticks: 100}).Run(ctx)
	require.NoError(t, err)
	assert.True(t, sum.Interrupted)
	assert.Equal(t, uint64(0), sum.Ticks)
}

func TestRunRealtime(t *testing.T) {
	opts := Options{Ticks: 30, Realtime: true, TickRate: 1000, KeepGoing: true}

	start := time.Now()
	sum, err := newRunner(referenceWorld(t), nil, opts).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(30), sum.Ticks)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond, "ticks are paced")
}

func TestRunRealtimeUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	opts := Options{Realtime: true, TickRate: 500, KeepGoing: true}
	sum, err := newRunner(referenceWorld(t), nil, opts).Run(ctx)
	require.NoError(t, err)

	assert.True(t, sum.Interrupted)
	assert.Positive(t, sum.Ticks)
}

func TestRunRealtimeNeedsTickRate(t *testing.T) {
	_, err := newRunner(referenceWorld(t), nil, Options{Realtime: true}).Run(context.Background())
	assert.Error(t, err)
}

func TestLimiterBurst(t *testing.T) {
	r := newRunner(referenceWorld(t), nil, Options{TickRate: 960, MaxCatchUp: time.Second / 15})
	assert.Equal(t, 64, r.limiter().Burst())

	r = newRunner(referenceWorld(t), nil, Options{TickRate: 60})
	assert.Equal(t, 1, r.limiter().Burst())

	r = newRunner(referenceWorld(t), nil, Options{TickRate: 2_000_000_000, MaxCatchUp: time.Microsecond})
	assert.NotPanics(t, func() { r.limiter() })
	assert.Equal(t, 1000, r.limiter().Burst())
}

func TestAutopilotInput(t *testing.T) {
	w, err := breakout.NewBuilder().
		DT(testDT).
		Ball(breakout.NewBall(0.02, core.V(0.9, 0.6), core.Vec2{})).
		Paddle(breakout.NewPaddleCentered(core.V(0.1, 0.02), core.V(0.5, 0.05))).
		Build()
	require.NoError(t, err)

	in := Autopilot(0.01).Next(w)
	assert.True(t, in.Has(core.ActionRight))
}

func TestRenderSummary(t *testing.T) {
	sum := Summary{
		RunID:           "abc",
		Level:           "wall",
		Ticks:           960,
		Elapsed:         1,
		PaddleHits:      2,
		BlocksDestroyed: 5,
		BlocksLeft:      35,
		BallLost:        true,
		LostAtTick:      960,
		Hash:            0xdeadbeef,
	}

	plain := RenderSummary(sum, false)
	assert.True(t, strings.HasPrefix(plain, "result  ball lost at tick 960\n"))
	assert.Contains(t, plain, "5 destroyed, 35 left")
	assert.Contains(t, plain, "00000000deadbeef")
	assert.NotContains(t, plain, "\x1b[")

	styled := RenderSummary(sum, true)
	assert.Contains(t, styled, "breakout")
	assert.Contains(t, styled, "wall")
}
