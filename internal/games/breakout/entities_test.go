package breakout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/breakout-sim/internal/core"
)

// recoverErr runs f and returns the error it panicked with, if any.
func recoverErr(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		err = e
	}()
	f()
	return nil
}

func TestBallGeometry(t *testing.T) {
	b := NewBall(0.02, core.V(0.5, 0.24), core.V(0, -0.1))

	assert.Equal(t, float32(0.02), b.Radius())
	assert.Equal(t, core.V(0.5, 0.24), b.Origin())
	assert.Equal(t, b.Origin(), b.Location())
	assert.Equal(t, core.V(0, -0.1), b.Velocity())

	box := b.BoundingBox()
	assert.InDelta(t, 0.48, box.Left, 1e-6)
	assert.InDelta(t, 0.52, box.Right, 1e-6)
	assert.InDelta(t, 0.22, box.Bottom, 1e-6)
	assert.InDelta(t, 0.26, box.Top, 1e-6)
}

func TestBallSetters(t *testing.T) {
	b := NewBall(0.02, core.V(0.5, 0.5), core.Vec2{})

	b.SetLocation(core.V(0.1, 0.2))
	b.SetVelocity(core.V(0.3, -0.4))
	b.SetSpin(2)

	assert.Equal(t, core.V(0.1, 0.2), b.Midpoint())
	assert.Equal(t, core.V(0.3, -0.4), b.Velocity())
	assert.Equal(t, float32(2), b.Spin())
	assert.Equal(t, float32(0.02), b.Radius(), "radius never changes")
}

func TestPaddleCentered(t *testing.T) {
	p := NewPaddleCentered(core.V(0.1, 0.04), core.V(0.5, 0.2))

	assert.InDelta(t, 0.45, p.Origin().X(), 1e-6)
	assert.InDelta(t, 0.18, p.Origin().Y(), 1e-6)
	assert.InDelta(t, 0.5, p.Midpoint().X(), 1e-6)
	assert.InDelta(t, 0.2, p.Midpoint().Y(), 1e-6)
	assert.Equal(t, core.Vec2{}, p.Velocity(), "new paddles are at rest")

	box := p.BoundingBox()
	assert.InDelta(t, 0.22, box.Top, 1e-6)
	assert.InDelta(t, 0.55, box.Right, 1e-6)
}

func TestPaddleIsMovable(t *testing.T) {
	p := NewPaddle(core.V(0.1, 0.02), core.V(0.2, 0.05))
	p.SetVelocity(core.V(0.4, 0))

	core.Advance(&p, 0.5)

	assert.InDelta(t, 0.4, p.Origin().X(), 1e-6)
	assert.InDelta(t, 0.05, p.Origin().Y(), 1e-6)
	assert.Equal(t, core.V(0.1, 0.02), p.Dimensions(), "dimensions never change")
}

func TestBlockIsImmovable(t *testing.T) {
	b := NewBlock(core.V(0.1, 0.05), core.V(0.15, 0.725))

	t.Run("zero velocity is a no-op", func(t *testing.T) {
		err := recoverErr(t, func() { b.SetVelocity(core.Vec2{}) })
		assert.NoError(t, err)
		assert.Equal(t, core.Vec2{}, b.Velocity())
	})

	t.Run("same location is a no-op", func(t *testing.T) {
		err := recoverErr(t, func() { b.SetLocation(b.Origin()) })
		assert.NoError(t, err)
	})

	t.Run("non-zero velocity panics", func(t *testing.T) {
		err := recoverErr(t, func() { b.SetVelocity(core.V(0, 0.1)) })
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrImmovable))
	})

	t.Run("new location panics", func(t *testing.T) {
		err := recoverErr(t, func() { b.SetLocation(core.V(0.2, 0.725)) })
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrImmovable))
		assert.Equal(t, core.V(0.15, 0.725), b.Origin(), "block must stay put")
	})
}

func TestBlockCentered(t *testing.T) {
	b := NewBlockCentered(core.V(0.1, 0.05), core.V(0.2, 0.75))

	box := b.BoundingBox()
	assert.InDelta(t, 0.15, box.Left, 1e-6)
	assert.InDelta(t, 0.25, box.Right, 1e-6)
	assert.InDelta(t, 0.725, box.Bottom, 1e-6)
	assert.InDelta(t, 0.775, box.Top, 1e-6)
}

func TestBlocksArena(t *testing.T) {
	bs := newBlocks([]Block{
		NewBlock(core.V(0.1, 0.05), core.V(0.1, 0.7)),
		NewBlock(core.V(0.1, 0.05), core.V(0.3, 0.7)),
		NewBlock(core.V(0.1, 0.05), core.V(0.5, 0.7)),
	})

	assert.Equal(t, 3, bs.Len())
	assert.Equal(t, 3, bs.Present())

	assert.True(t, bs.destroy(1))
	assert.False(t, bs.destroy(1), "second destroy is a no-op")
	assert.False(t, bs.destroy(7), "out of range is a no-op")

	assert.Equal(t, 3, bs.Len(), "slots are never compacted")
	assert.Equal(t, 2, bs.Present())

	_, ok := bs.At(1)
	assert.False(t, ok)

	b, ok := bs.At(2)
	require.True(t, ok)
	assert.InDelta(t, 0.5, b.Origin().X(), 1e-6, "indices stay stable after destruction")

	_, ok = bs.At(-1)
	assert.False(t, ok)

	var seen []int
	for i := range bs.All() {
		seen = append(seen, i)
	}
	assert.Equal(t, []int{0, 2}, seen)
}

func TestBlocksAllStopsEarly(t *testing.T) {
	bs := newBlocks([]Block{
		NewBlock(core.V(0.1, 0.05), core.V(0.1, 0.7)),
		NewBlock(core.V(0.1, 0.05), core.V(0.3, 0.7)),
	})

	n := 0
	for range bs.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}
