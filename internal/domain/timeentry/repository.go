package timeentry

import "context"

// TimeEntryFilter narrows List results.
type TimeEntryFilter struct {
	CrewMemberID *string
	SiteID       *string
	StartDate    *string
	EndDate      *string
}

type TimeEntryRepository interface {
	Create(ctx context.Context, e TimeEntry) (TimeEntry, error)

	// GetByIDForCrewMember scopes the lookup to one crew member within one
	// tenant; a session is only ever mutated by the worker who owns it.
	GetByIDForCrewMember(ctx context.Context, id string, crewMemberID string, companyID string) (TimeEntry, error)

	Update(ctx context.Context, e TimeEntry) (TimeEntry, error)
	List(ctx context.Context, filter TimeEntryFilter, companyID string) ([]TimeEntry, error)

	// HasEntryForSchedule reports whether any time entry references the
	// schedule. The missed-shift sweeper uses it to tell a late crew member
	// from an absent one.
	HasEntryForSchedule(ctx context.Context, scheduleID string, companyID string) (bool, error)
}
