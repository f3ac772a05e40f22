package schedule

import "time"

// Status lifecycle of a schedule. Transitions to InProgress and Completed are
// driven by the time-tracking service; Missed is set by the sweeper job.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCanceled   Status = "canceled"
	StatusMissed     Status = "missed"
)

var StatusValues = []string{
	string(StatusScheduled),
	string(StatusInProgress),
	string(StatusCompleted),
	string(StatusCanceled),
	string(StatusMissed),
}

// Schedule is a planned visit: a site, an optional crew member, a calendar
// date and a [start, end) time-of-day window. Start and end are zero-padded
// "HH:MM" strings so they compare lexically in clock order.
type Schedule struct {
	ID             string
	CompanyID      string
	SiteID         *string
	CrewMemberID   *string
	ScheduledDate  time.Time // date only, time part zero
	StartTime      string    // "HH:MM"
	EndTime        string    // "HH:MM"
	IsRecurring    bool
	RecurrenceRule *string // opaque descriptor, never expanded here
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined for responses
	SiteName       *string
	CrewMemberName *string
}
