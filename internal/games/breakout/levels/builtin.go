// Package levels provides the built-in breakout levels and YAML level files.
// This package depends on breakout but breakout does not depend on levels.
package levels

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/breakout-sim/internal/core"
	"github.com/vovakirdan/breakout-sim/internal/games/breakout"
	"github.com/vovakirdan/breakout-sim/internal/registry"
)

// Standard paddle for the block levels: 0.15 wide, centered near the bottom.
func standardPaddle() breakout.Paddle {
	return breakout.NewPaddleCentered(core.V(0.15, 0.02), core.V(0.5, 0.075))
}

// Reference is the regression scenario: a ball dropping straight onto a
// stationary paddle whose top edge sits right under it.
func Reference(core.RuntimeConfig) breakout.Level {
	return breakout.Level{
		ID:     "reference",
		Name:   "Reference drop",
		Ball:   breakout.NewBall(0.02, core.V(0.5, 0.24), core.V(0, -0.1)),
		Paddle: breakout.NewPaddleCentered(core.V(0.1, 0.04), core.V(0.5, 0.20)),
	}
}

// Classic is four blocks in a row above a fast falling ball.
func Classic(core.RuntimeConfig) breakout.Level {
	size := core.V(0.10, 0.05)
	blocks := make([]breakout.Block, 0, 4)
	for i := range 4 {
		blocks = append(blocks, breakout.NewBlockCentered(size, core.V(0.2*float32(i+1), 0.75)))
	}

	return breakout.Level{
		ID:     "classic",
		Name:   "Classic",
		Ball:   breakout.NewBall(0.015, core.V(0.5, 0.7), core.V(0, -0.5)),
		Paddle: standardPaddle(),
		Blocks: blocks,
	}
}

// Wall is a solid wall of blocks across the top of the play-field.
func Wall(core.RuntimeConfig) breakout.Level {
	return breakout.Level{
		ID:     "wall",
		Name:   "Wall",
		Ball:   breakout.NewBall(0.015, core.V(0.5, 0.3), core.V(0.15, 0.45)),
		Paddle: standardPaddle(),
		Blocks: breakout.ParseLayout([]string{
			"##########",
			"##########",
			"##########",
			"##########",
		}, core.Box{Left: 0.05, Right: 0.95, Bottom: 0.65, Top: 0.9}, 0.005),
	}
}

// Pyramid stacks blocks in a triangle.
func Pyramid(core.RuntimeConfig) breakout.Level {
	return breakout.Level{
		ID:     "pyramid",
		Name:   "Pyramid",
		Ball:   breakout.NewBall(0.015, core.V(0.3, 0.3), core.V(-0.2, 0.4)),
		Paddle: standardPaddle(),
		Blocks: breakout.ParseLayout([]string{
			"....##....",
			"...####...",
			"..######..",
			".########.",
			"##########",
		}, core.Box{Left: 0.05, Right: 0.95, Bottom: 0.55, Top: 0.9}, 0.005),
	}
}

// Serve is an empty field with the ball launched from the center in a random
// downward direction at 0.1 units per second. The direction is drawn from
// cfg.Seed.
func Serve(cfg core.RuntimeConfig) breakout.Level {
	rng := rand.New(rand.NewSource(cfg.Seed)) //#nosec G404 -- gameplay randomness, not security
	xSpeed := rng.Float32() - 0.5
	ySpeed := float32(math.Sqrt(float64(1 - xSpeed*xSpeed)))

	return breakout.Level{
		ID:     "serve",
		Name:   "Random serve",
		Ball:   breakout.NewBall(0.02, core.V(0.5, 0.5), core.V(xSpeed*0.1, -ySpeed*0.1)),
		Paddle: breakout.NewPaddleCentered(core.V(0.1, 0.04), core.V(0.5, 0.05)),
	}
}

// Register the built-in levels with the registry
func init() {
	registry.Register("reference", Reference)
	registry.Register("classic", Classic)
	registry.Register("wall", Wall)
	registry.Register("pyramid", Pyramid)
	registry.Register("serve", Serve)
}
