package breakout

import (
	"fmt"

	"github.com/vovakirdan/breakout-sim/internal/core"
)

// Level is a starting layout: one ball, one paddle and the blocks, nearest to
// furthest.
type Level struct {
	ID     string
	Name   string
	Ball   Ball
	Paddle Paddle
	Blocks []Block
}

// Builder returns a builder pre-filled with the level's entities.
func (l Level) Builder(dt float32) *Builder {
	return NewBuilder().
		DT(dt).
		Ball(l.Ball).
		Paddle(l.Paddle).
		AddBlocks(l.Blocks...)
}

// Build creates a world for the level with the given time step and tuning.
func (l Level) Build(dt float32, tuning Tuning) (*World, error) {
	w, err := l.Builder(dt).Tuning(tuning).Build()
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return w, nil
}

// ParseLayout creates blocks from an ASCII map tiled over area.
// Characters:
//
//	'#' = block
//	'.' = empty (any other character is empty too)
//
// Lines are listed top to bottom, as they read on screen. Every cell is
// area.Width()/columns wide and area.Height()/rows tall, shrunk by gap on each
// axis so neighbours do not touch. Blocks are returned nearest first: bottom row
// before top row, left to right within a row.
func ParseLayout(lines []string, area core.Box, gap float32) []Block {
	if len(lines) == 0 {
		return nil
	}

	// Find max width
	cols := 0
	for _, line := range lines {
		if len(line) > cols {
			cols = len(line)
		}
	}
	if cols == 0 {
		return nil
	}

	rows := len(lines)
	cellW := area.Width() / float32(cols)
	cellH := area.Height() / float32(rows)
	size := core.V(max(cellW-gap, 0), max(cellH-gap, 0))

	var blocks []Block
	for r := rows - 1; r >= 0; r-- {
		line := lines[r]
		// Row 0 is the top of the area.
		bottom := area.Top - float32(r+1)*cellH
		for c := range cols {
			if c >= len(line) || line[c] != '#' {
				continue
			}
			origin := core.V(area.Left+float32(c)*cellW+gap/2, bottom+gap/2)
			blocks = append(blocks, NewBlock(size, origin))
		}
	}
	return blocks
}
