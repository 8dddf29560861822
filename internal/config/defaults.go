package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Simulation: SimulationConfig{
			TickRate:   960,
			MaxCatchUp: 1.0 / 15, // Drop ticks once the loop is 4 frames behind at 60fps
		},
		Physics: PhysicsConfig{
			Boost:         1.05,
			MaxDeflection: 0.8,
			PaddleSpeed:   0.40,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBreakoutYAML
}
