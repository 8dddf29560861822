package breakout

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/breakout-sim/internal/core"
)

// Snapshot contains the complete mutable world state for replay and diffing.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick uint64  `yaml:"tick"`
	DT   float32 `yaml:"dt"`

	BallRadius   float32    `yaml:"ball_radius"`
	BallMidpoint [2]float32 `yaml:"ball_midpoint,flow"`
	BallVelocity [2]float32 `yaml:"ball_velocity,flow"`
	BallSpin     float32    `yaml:"ball_spin"`

	PaddleDimensions [2]float32 `yaml:"paddle_dimensions,flow"`
	PaddleOrigin     [2]float32 `yaml:"paddle_origin,flow"`
	PaddleVelocity   [2]float32 `yaml:"paddle_velocity,flow"`

	// Presence flag per block slot, in insertion order.
	Blocks        []bool `yaml:"blocks,flow"`
	BlocksPresent int    `yaml:"blocks_present"`
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	present := make([]bool, w.blocks.Len())
	for i := range w.blocks.Len() {
		_, present[i] = w.blocks.At(i)
	}

	return Snapshot{
		Tick: w.ticks,
		DT:   w.dt,

		BallRadius:   w.ball.Radius(),
		BallMidpoint: w.ball.Midpoint(),
		BallVelocity: w.ball.Velocity(),
		BallSpin:     w.ball.Spin(),

		PaddleDimensions: w.paddle.Dimensions(),
		PaddleOrigin:     w.paddle.Origin(),
		PaddleVelocity:   w.paddle.Velocity(),

		Blocks:        present,
		BlocksPresent: w.blocks.Present(),
	}
}

// ApplySnapshot restores world state from a snapshot taken from a world built
// from the same level. Geometry that is immutable after construction (dt, ball
// radius, paddle size, block layout) must match.
func (w *World) ApplySnapshot(snap Snapshot) error {
	switch {
	case snap.DT != w.dt:
		return fmt.Errorf("%w: dt %v, world has %v", ErrSnapshotMismatch, snap.DT, w.dt)
	case snap.BallRadius != w.ball.Radius():
		return fmt.Errorf("%w: ball radius %v, world has %v", ErrSnapshotMismatch, snap.BallRadius, w.ball.Radius())
	case core.Vec2(snap.PaddleDimensions) != w.paddle.Dimensions():
		return fmt.Errorf("%w: paddle dimensions %v, world has %v", ErrSnapshotMismatch, snap.PaddleDimensions, w.paddle.Dimensions())
	case len(snap.Blocks) != w.blocks.Len():
		return fmt.Errorf("%w: %d block slots, world has %d", ErrSnapshotMismatch, len(snap.Blocks), w.blocks.Len())
	}
	for _, v := range []core.Vec2{snap.BallMidpoint, snap.BallVelocity, snap.PaddleOrigin, snap.PaddleVelocity} {
		if !core.Finite(v) {
			return fmt.Errorf("%w: non-finite vector %v", ErrSnapshotMismatch, v)
		}
	}

	w.ticks = snap.Tick
	w.ball.SetLocation(snap.BallMidpoint)
	w.ball.SetVelocity(snap.BallVelocity)
	w.ball.SetSpin(snap.BallSpin)
	w.paddle.SetLocation(snap.PaddleOrigin)
	w.paddle.SetVelocity(snap.PaddleVelocity)
	w.blocks.restore(snap.Blocks)
	return nil
}

// Hash returns an xxhash digest of the snapshot for determinism checks.
func (snap Snapshot) Hash() uint64 {
	buf := make([]byte, 0, 96+len(snap.Blocks))
	buf = binary.LittleEndian.AppendUint64(buf, snap.Tick)

	for _, f := range []float32{
		snap.DT,
		snap.BallRadius,
		snap.BallMidpoint[0], snap.BallMidpoint[1],
		snap.BallVelocity[0], snap.BallVelocity[1],
		snap.BallSpin,
		snap.PaddleDimensions[0], snap.PaddleDimensions[1],
		snap.PaddleOrigin[0], snap.PaddleOrigin[1],
		snap.PaddleVelocity[0], snap.PaddleVelocity[1],
	} {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}

	for _, present := range snap.Blocks {
		if present {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}

	return xxhash.Sum64(buf)
}
