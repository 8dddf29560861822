// Package config provides YAML-based simulation configuration loading and
// difficulty presets for the breakout simulator.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/breakout-sim/internal/games/breakout"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// MaxTickRate bounds simulation.tick_rate so one tick still spans a
// measurable wall-clock interval in realtime mode.
const MaxTickRate = 1_000_000

// BreakoutConfig contains all configuration for the breakout simulator.
type BreakoutConfig struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Physics    PhysicsConfig    `yaml:"physics"`
}

// SimulationConfig defines the fixed-step loop parameters.
type SimulationConfig struct {
	TickRate   int     `yaml:"tick_rate"`    // Ticks per simulated second; dt = 1/tick_rate
	MaxCatchUp float64 `yaml:"max_catch_up"` // Seconds of real time the driving loop may fall behind before dropping ticks
}

// PhysicsConfig defines paddle bounce and input parameters.
type PhysicsConfig struct {
	Boost         float32 `yaml:"boost"`          // Speed multiplier on every paddle hit
	MaxDeflection float32 `yaml:"max_deflection"` // Share of speed that may go horizontal on an edge hit
	PaddleSpeed   float32 `yaml:"paddle_speed"`   // Paddle speed while a direction is held
}

// DT returns the fixed time step.
func (c BreakoutConfig) DT() float32 {
	if c.Simulation.TickRate <= 0 {
		return 0
	}
	return 1 / float32(c.Simulation.TickRate)
}

// Tuning returns the bounce constants for the world builder.
func (c BreakoutConfig) Tuning() breakout.Tuning {
	return breakout.Tuning{
		Boost:         c.Physics.Boost,
		MaxDeflection: c.Physics.MaxDeflection,
	}
}

// Validate rejects settings the simulation cannot run with.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Simulation.TickRate <= 0:
		return fmt.Errorf("%w: simulation.tick_rate must be positive, got %d", ErrInvalidConfig, c.Simulation.TickRate)
	case c.Simulation.TickRate > MaxTickRate:
		return fmt.Errorf("%w: simulation.tick_rate must be at most %d, got %d", ErrInvalidConfig, MaxTickRate, c.Simulation.TickRate)
	case c.Simulation.MaxCatchUp < 0:
		return fmt.Errorf("%w: simulation.max_catch_up must not be negative, got %v", ErrInvalidConfig, c.Simulation.MaxCatchUp)
	case c.Physics.Boost < 1:
		return fmt.Errorf("%w: physics.boost must be at least 1, got %v", ErrInvalidConfig, c.Physics.Boost)
	case !(c.Physics.MaxDeflection > 0) || c.Physics.MaxDeflection >= 1:
		return fmt.Errorf("%w: physics.max_deflection must be in (0, 1), got %v", ErrInvalidConfig, c.Physics.MaxDeflection)
	case c.Physics.PaddleSpeed < 0:
		return fmt.Errorf("%w: physics.paddle_speed must not be negative, got %v", ErrInvalidConfig, c.Physics.PaddleSpeed)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset maps a CLI value to a preset. The empty string means
// no preset.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}
