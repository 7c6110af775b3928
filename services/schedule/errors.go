package schedule

import "errors"

var (
	// ErrInvalidTimeFormat reports a wall-clock string that is not "HH:MM"
	// (or "HH:MM:SS") within valid bounds.
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrInvalidRange reports a proposed slot whose end is not after its start.
	ErrInvalidRange = errors.New("invalid time range")

	// ErrAvailabilityCheck reports that the underlying entry fetch failed.
	// Callers must treat this as "cannot confirm availability", never as
	// available.
	ErrAvailabilityCheck = errors.New("availability check failed")
)
