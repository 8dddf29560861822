package runner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/breakout-sim/internal/core"
	"github.com/vovakirdan/breakout-sim/internal/games/breakout"
)

// MapKey translates a key name to a paddle action.
// Reports false for keys with no binding.
func MapKey(key string) (core.Action, bool) {
	switch strings.ToLower(key) {
	case "a", "h", "left":
		return core.ActionLeft, true
	case "d", "l", "right":
		return core.ActionRight, true
	case "-", "none", "idle":
		return core.ActionNone, true
	}
	return core.ActionNone, false
}

// step holds one action for a number of ticks.
type step struct {
	action core.Action
	ticks  int
}

// Script replays a fixed sequence of held keys, one step after another.
// Once exhausted it holds nothing.
type Script struct {
	steps []step
	pos   int // index into steps
	held  int // ticks spent in steps[pos]
}

// ParseScript parses a comma-separated list of key:ticks pairs, e.g.
// "right:120,none:30,left:60". A bare key holds for a single tick.
func ParseScript(s string) (*Script, error) {
	sc := &Script{}
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		key, count, found := strings.Cut(part, ":")
		action, ok := MapKey(key)
		if !ok {
			return nil, fmt.Errorf("script: unknown key %q", key)
		}

		ticks := 1
		if found {
			n, err := strconv.Atoi(count)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("script: bad tick count in %q", part)
			}
			ticks = n
		}
		sc.steps = append(sc.steps, step{action: action, ticks: ticks})
	}
	return sc, nil
}

// Len returns the total number of scripted ticks.
func (sc *Script) Len() int {
	n := 0
	for _, st := range sc.steps {
		n += st.ticks
	}
	return n
}

// Next returns the frame for the next tick.
func (sc *Script) Next(*breakout.World) core.InputFrame {
	frame := core.NewInputFrame()
	if sc.pos >= len(sc.steps) {
		return frame
	}

	st := sc.steps[sc.pos]
	if st.action != core.ActionNone {
		frame.Set(st.action)
	}

	sc.held++
	if sc.held >= st.ticks {
		sc.pos++
		sc.held = 0
	}
	return frame
}
