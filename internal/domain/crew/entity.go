package crew

import "time"

type CrewMember struct {
	ID         string
	CompanyID  string
	UserID     *string // link to the external auth system, if the member has a login
	Name       string
	Phone      *string
	Email      *string
	Language   string
	HourlyRate *float64
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
