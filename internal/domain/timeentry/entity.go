package timeentry

import "time"

// TimeEntry records one clock-in/clock-out pair. An entry with a nil
// ClockOut is an open session; once ClockOut is set the entry is terminal
// and never mutated again.
type TimeEntry struct {
	ID               string
	CompanyID        string
	ScheduleID       *string // sessions can exist without a backing schedule
	CrewMemberID     string
	SiteID           *string
	ClockIn          *time.Time
	ClockInLatitude  *float64
	ClockInLongitude *float64
	ClockInVerified  *bool

	ClockOut          *time.Time
	ClockOutLatitude  *float64
	ClockOutLongitude *float64
	// ClockOutVerified is always true once set. Clock-out never runs a
	// geofence check; only entry onto the site is verified.
	ClockOutVerified *bool

	TotalHours *float64 // wall-clock hours, set exactly once at clock-out
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for responses
	CrewMemberName *string
	SiteName       *string
}
