package timeentry

import (
	"github.com/crewfield/crewfield-backend-go/internal/pkg/validator"
)

type TimeEntryResponse struct {
	ID                string   `json:"id"`
	ScheduleID        *string  `json:"schedule_id,omitempty"`
	CrewMemberID      string   `json:"crew_member_id"`
	CrewMemberName    *string  `json:"crew_member_name,omitempty"`
	SiteID            *string  `json:"site_id,omitempty"`
	SiteName          *string  `json:"site_name,omitempty"`
	ClockIn           *string  `json:"clock_in,omitempty"`
	ClockInLatitude   *float64 `json:"clock_in_latitude,omitempty"`
	ClockInLongitude  *float64 `json:"clock_in_longitude,omitempty"`
	ClockInVerified   *bool    `json:"clock_in_verified,omitempty"`
	ClockOut          *string  `json:"clock_out,omitempty"`
	ClockOutLatitude  *float64 `json:"clock_out_latitude,omitempty"`
	ClockOutLongitude *float64 `json:"clock_out_longitude,omitempty"`
	ClockOutVerified  *bool    `json:"clock_out_verified,omitempty"`
	TotalHours        *float64 `json:"total_hours,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
}

// ClockInRequest starts a work session. CompanyID and CrewMemberID come from
// the verified access token and are threaded explicitly; coordinates are
// whatever the device supplied, possibly nothing.
type ClockInRequest struct {
	CompanyID    string   `json:"-"`
	CrewMemberID string   `json:"-"`
	ScheduleID   *string  `json:"schedule_id,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}
	if validator.IsEmpty(r.CrewMemberID) {
		errs = append(errs, validator.ValidationError{
			Field:   "crew_member_id",
			Message: "crew_member_id is required",
		})
	}
	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}
	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be set together",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	CompanyID    string   `json:"-"`
	CrewMemberID string   `json:"-"`
	TimeEntryID  string   `json:"time_entry_id"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}
	if validator.IsEmpty(r.CrewMemberID) {
		errs = append(errs, validator.ValidationError{
			Field:   "crew_member_id",
			Message: "crew_member_id is required",
		})
	}
	if validator.IsEmpty(r.TimeEntryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "time_entry_id",
			Message: "time_entry_id is required",
		})
	}
	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListTimeEntriesRequest struct {
	CompanyID string `json:"-"`
	Filter    TimeEntryFilter
}
