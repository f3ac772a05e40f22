package schedule

import (
	"context"
	"time"
)

// ScheduleFilter narrows List results. All fields are optional.
type ScheduleFilter struct {
	StartDate    *string
	EndDate      *string
	CrewMemberID *string
	SiteID       *string
	Status       *string
}

// ScheduleRepository defines data access for schedules. Every method takes
// companyID so no query can cross a tenant boundary.
type ScheduleRepository interface {
	Create(ctx context.Context, s Schedule) (Schedule, error)
	GetByID(ctx context.Context, id string, companyID string) (Schedule, error)
	List(ctx context.Context, filter ScheduleFilter, companyID string) ([]Schedule, error)
	Update(ctx context.Context, s Schedule) (Schedule, error)
	UpdateStatus(ctx context.Context, id string, companyID string, status Status) error

	// LockCrewDate serializes scheduling for one crew member on one date.
	// Must run inside a transaction; the lock is held until commit. Row
	// locks cannot do this: with no existing rows there is nothing to
	// lock, and a row inserted by a concurrent transaction is invisible
	// to an already-running statement.
	LockCrewDate(ctx context.Context, crewMemberID string, date time.Time, companyID string) error

	// ListForCrewOnDate returns all non-canceled schedules for one crew
	// member on one date, with site names joined. Callers running the
	// conflict guard take LockCrewDate first so the read stays stable
	// against concurrent inserts.
	ListForCrewOnDate(ctx context.Context, crewMemberID string, date time.Time, companyID string) ([]Schedule, error)

	// ListOverdueScheduled returns schedules still in status "scheduled"
	// whose start time is more than the company's no-show threshold in the
	// past and which have no time entry. Used by the missed-shift sweeper.
	ListOverdueScheduled(ctx context.Context, now time.Time) ([]Schedule, error)
}
