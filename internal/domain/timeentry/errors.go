package timeentry

import "errors"

// Time entry domain errors
var (
	ErrTimeEntryNotFound = errors.New("time entry not found")

	// ErrAlreadyClockedOut rejects a second clock-out on a closed entry.
	// The first clock-out's total hours are never overwritten.
	ErrAlreadyClockedOut = errors.New("time entry is already clocked out")
)
