package core

// RuntimeConfig contains the parameters the driving loop hands to level
// factories. The simulation itself only ever sees the derived time step.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per simulated second
	Seed     int64 // RNG seed for levels with a randomized serve
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 960,
		Seed:     0, // 0 means use current time in the CLI
	}
}

// DT returns the fixed time step implied by TickRate.
// A non-positive tick rate yields 0, which the world builder rejects.
func (c RuntimeConfig) DT() float32 {
	if c.TickRate <= 0 {
		return 0
	}
	return 1 / float32(c.TickRate)
}
