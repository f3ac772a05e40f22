package timeentry

import "context"

// TimeTrackingService drives the work-session state machine:
// not started -> clocked in -> clocked out (terminal).
type TimeTrackingService interface {
	// ClockIn creates a new time entry, runs the geofence verification
	// policy, moves the referenced schedule to in_progress and raises an
	// off-site alert when verification fails. Missing site or device
	// coordinates fail open: the entry is verified.
	ClockIn(ctx context.Context, req ClockInRequest) (TimeEntryResponse, error)

	// ClockOut closes an open entry, computing total hours as the
	// wall-clock difference in fractional hours, and moves the referenced
	// schedule to completed. A closed entry is rejected with
	// ErrAlreadyClockedOut.
	ClockOut(ctx context.Context, req ClockOutRequest) (TimeEntryResponse, error)

	// ListTimeEntries returns entries for the tenant, filtered.
	ListTimeEntries(ctx context.Context, req ListTimeEntriesRequest) ([]TimeEntryResponse, error)

	// GetMyTimeEntries returns one crew member's entries.
	GetMyTimeEntries(ctx context.Context, companyID string, crewMemberID string, filter TimeEntryFilter) ([]TimeEntryResponse, error)
}
