package breakout

import "errors"

var (
	// ErrMissingField is returned by Builder.Build when dt, ball or paddle was never supplied.
	ErrMissingField = errors.New("breakout: missing required field")

	// ErrInvalidDT is returned by Builder.Build for a non-positive or non-finite time step.
	ErrInvalidDT = errors.New("breakout: time step must be positive and finite")

	// ErrInvalidGeometry is returned by Builder.Build for non-positive sizes or non-finite vectors.
	ErrInvalidGeometry = errors.New("breakout: invalid geometry")

	// ErrImmovable is the panic value raised when something tries to move a block.
	ErrImmovable = errors.New("breakout: blocks cannot move")

	// ErrSnapshotMismatch is returned when a snapshot does not fit the world it is applied to.
	ErrSnapshotMismatch = errors.New("breakout: snapshot does not match world")
)
