package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/breakout-sim/internal/core"
	"github.com/vovakirdan/breakout-sim/internal/games/breakout"
)

// ErrInvalidLevel is returned for level files that parse but describe an unplayable level.
var ErrInvalidLevel = errors.New("invalid level")

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID     string       `yaml:"id"`
	Name   string       `yaml:"name"`
	Ball   YAMLBall     `yaml:"ball"`
	Paddle YAMLPaddle   `yaml:"paddle"`
	Blocks YAMLBlockSet `yaml:"blocks"`
}

// YAMLBall describes the ball.
type YAMLBall struct {
	Radius   float32    `yaml:"radius"`
	Midpoint [2]float32 `yaml:"midpoint,flow"`
	Velocity [2]float32 `yaml:"velocity,flow"`
}

// YAMLPaddle describes the paddle by size and center.
type YAMLPaddle struct {
	Size   [2]float32 `yaml:"size,flow"`
	Center [2]float32 `yaml:"center,flow"`
}

// YAMLBlockSet holds an ASCII layout tiled over an area, explicit blocks, or both.
// Layout blocks come first in the resulting order.
type YAMLBlockSet struct {
	Area   YAMLArea    `yaml:"area"`
	Gap    float32     `yaml:"gap,omitempty"`
	Layout []string    `yaml:"layout,omitempty"`
	List   []YAMLBlock `yaml:"list,omitempty"`
}

// YAMLArea is the region a layout is tiled over.
type YAMLArea struct {
	Left   float32 `yaml:"left"`
	Right  float32 `yaml:"right"`
	Bottom float32 `yaml:"bottom"`
	Top    float32 `yaml:"top"`
}

// YAMLBlock is one explicitly placed block.
type YAMLBlock struct {
	Size   [2]float32 `yaml:"size,flow"`
	Origin [2]float32 `yaml:"origin,flow"`
}

// Parse parses a YAML level document.
func Parse(data []byte) (breakout.Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return breakout.Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := yl.validate(); err != nil {
		return breakout.Level{}, err
	}

	level := breakout.Level{
		ID:     yl.ID,
		Name:   yl.Name,
		Ball:   breakout.NewBall(yl.Ball.Radius, yl.Ball.Midpoint, yl.Ball.Velocity),
		Paddle: breakout.NewPaddleCentered(yl.Paddle.Size, yl.Paddle.Center),
	}
	if level.Name == "" {
		level.Name = level.ID
	}

	if len(yl.Blocks.Layout) > 0 {
		area := core.Box(yl.Blocks.Area)
		level.Blocks = breakout.ParseLayout(yl.Blocks.Layout, area, yl.Blocks.Gap)
	}
	for _, b := range yl.Blocks.List {
		level.Blocks = append(level.Blocks, breakout.NewBlock(b.Size, b.Origin))
	}

	return level, nil
}

func (yl *YAMLLevel) validate() error {
	switch {
	case yl.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidLevel)
	case !(yl.Ball.Radius > 0):
		return fmt.Errorf("%w: ball radius must be positive, got %v", ErrInvalidLevel, yl.Ball.Radius)
	case !(yl.Paddle.Size[0] > 0) || !(yl.Paddle.Size[1] > 0):
		return fmt.Errorf("%w: paddle size must be positive, got %v", ErrInvalidLevel, yl.Paddle.Size)
	case !core.Finite(yl.Ball.Midpoint) || !core.Finite(yl.Ball.Velocity) || !core.Finite(yl.Paddle.Center):
		return fmt.Errorf("%w: non-finite coordinates", ErrInvalidLevel)
	}

	a := yl.Blocks.Area
	if len(yl.Blocks.Layout) > 0 && (a.Left >= a.Right || a.Bottom >= a.Top) {
		return fmt.Errorf("%w: layout area is empty", ErrInvalidLevel)
	}
	for i, b := range yl.Blocks.List {
		if !(b.Size[0] > 0) || !(b.Size[1] > 0) {
			return fmt.Errorf("%w: block %d size must be positive, got %v", ErrInvalidLevel, i, b.Size)
		}
	}
	return nil
}

// LoadFile loads a single level file.
func LoadFile(path string) (breakout.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return breakout.Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	level, err := Parse(data)
	if err != nil {
		return breakout.Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return level, nil
}

// LoadDir loads every .yaml/.yml level under root, sorted by ID.
// Invalid files are skipped.
func LoadDir(root string) ([]breakout.Level, error) {
	var levels []breakout.Level

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		level, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}
