package config

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Normal and the empty preset leave the config as loaded.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		// Gentler speed-up and a quicker paddle
		cfg.Physics.Boost = 1.02
		cfg.Physics.MaxDeflection = 0.6
		cfg.Physics.PaddleSpeed = 0.55
	case DifficultyHard:
		cfg.Physics.Boost = 1.08
		cfg.Physics.MaxDeflection = 0.9
		cfg.Physics.PaddleSpeed = 0.30
	}
}
