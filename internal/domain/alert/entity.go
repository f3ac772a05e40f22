package alert

import "time"

// AlertType tags what raised the alert.
type AlertType string

const (
	TypeOffSiteClockIn AlertType = "off_site_clockin"
	TypeMissedShift    AlertType = "missed_shift"
)

// Alert is an unread-by-default notice for the tenant's dashboard. Alerts
// are never deleted, only marked read.
type Alert struct {
	ID           string
	CompanyID    string
	Type         AlertType
	ScheduleID   *string
	CrewMemberID *string
	SiteID       *string
	Message      string
	IsRead       bool
	CreatedAt    time.Time

	// Joined for responses
	CrewMemberName *string
	SiteName       *string
}
