package schedule

import (
	"errors"
	"fmt"
)

// Schedule domain errors
var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrScheduleConflict = errors.New("schedule conflict detected")
)

// ConflictError carries the first conflicting schedule found by the conflict
// guard so the caller can render a specific message. It wraps
// ErrScheduleConflict for errors.Is checks.
type ConflictError struct {
	ScheduleID string
	SiteName   string
	StartTime  string
	EndTime    string
}

func (e *ConflictError) Error() string {
	site := e.SiteName
	if site == "" {
		site = "another site"
	}
	return fmt.Sprintf("crew member is already scheduled at %s from %s to %s", site, e.StartTime, e.EndTime)
}

func (e *ConflictError) Unwrap() error {
	return ErrScheduleConflict
}
