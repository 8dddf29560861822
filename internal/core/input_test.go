package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFrame(t *testing.T) {
	in := NewInputFrame()
	assert.False(t, in.Has(ActionLeft))

	in.Set(ActionLeft)
	assert.True(t, in.Has(ActionLeft))
	assert.False(t, in.Has(ActionRight))

	in.Set(ActionRight)
	assert.True(t, in.Has(ActionLeft), "actions accumulate within a frame")
	assert.True(t, in.Has(ActionRight))

	var zero InputFrame
	assert.False(t, zero.Has(ActionRight))
	zero.Set(ActionRight)
	assert.True(t, zero.Has(ActionRight))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Left", ActionLeft.String())
	assert.Equal(t, "Right", ActionRight.String())
	assert.Equal(t, "None", ActionNone.String())
	assert.Equal(t, "Unknown", Action(42).String())
}

func TestRuntimeConfigDT(t *testing.T) {
	assert.Equal(t, float32(1.0/960), DefaultConfig().DT())
	assert.Equal(t, float32(1.0/120), RuntimeConfig{TickRate: 120}.DT())
	assert.Equal(t, float32(0), RuntimeConfig{}.DT())
}
