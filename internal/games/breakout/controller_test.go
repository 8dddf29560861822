package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/breakout-sim/internal/core"
)

func TestControllerVelocity(t *testing.T) {
	ctrl := NewController(0.4)

	tests := []struct {
		name    string
		actions []core.Action
		want    core.Vec2
	}{
		{"idle", nil, core.Vec2{}},
		{"left", []core.Action{core.ActionLeft}, core.V(-0.4, 0)},
		{"right", []core.Action{core.ActionRight}, core.V(0.4, 0)},
		{"both cancel", []core.Action{core.ActionLeft, core.ActionRight}, core.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := core.NewInputFrame()
			for _, a := range tt.actions {
				in.Set(a)
			}
			assert.Equal(t, tt.want, ctrl.Velocity(in))
		})
	}
}

func TestControllerApply(t *testing.T) {
	w := mustBuild(t, NewBuilder().
		DT(testDT).
		Ball(NewBall(0.02, core.V(0.5, 0.5), core.Vec2{})).
		Paddle(bottomPaddle()))

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	NewController(DefaultPaddleSpeed).Apply(w, in)
	w.Tick()

	assert.Equal(t, core.V(DefaultPaddleSpeed, 0), w.Paddle().Velocity())
	assert.InDelta(t, 0.425+DefaultPaddleSpeed*float64(testDT), w.Paddle().Origin().X(), 1e-6)
}

func TestAutopilot(t *testing.T) {
	tests := []struct {
		name  string
		ballX float32
		want  core.Action
	}{
		{"ball to the left", 0.2, core.ActionLeft},
		{"ball to the right", 0.8, core.ActionRight},
		{"inside dead zone", 0.505, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := mustBuild(t, NewBuilder().
				DT(testDT).
				Ball(NewBall(0.02, core.V(tt.ballX, 0.5), core.Vec2{})).
				Paddle(bottomPaddle()))

			in := Autopilot(w, 0.01)
			switch tt.want {
			case core.ActionNone:
				assert.False(t, in.Has(core.ActionLeft))
				assert.False(t, in.Has(core.ActionRight))
			default:
				assert.True(t, in.Has(tt.want))
			}
		})
	}
}

func TestAutopilotKeepsRallyGoing(t *testing.T) {
	w := newRallyWorld(t)
	ctrl := NewController(DefaultPaddleSpeed)

	hits := 0
	for range 3000 {
		ctrl.Apply(w, Autopilot(w, 0.01))
		res := w.Tick()
		if res.PaddleHit {
			hits++
		}
		if res.BallLost {
			break
		}
	}

	assert.Positive(t, hits)
}
