package core

// Action represents a semantic input action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, Left arrow - push paddle left
	ActionRight        // D, Right arrow - push paddle right
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// InputFrame represents the actions held during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}
