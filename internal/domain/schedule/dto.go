package schedule

import (
	"github.com/crewfield/crewfield-backend-go/internal/pkg/validator"
)

type ScheduleResponse struct {
	ID             string  `json:"id"`
	SiteID         *string `json:"site_id,omitempty"`
	SiteName       *string `json:"site_name,omitempty"`
	CrewMemberID   *string `json:"crew_member_id,omitempty"`
	CrewMemberName *string `json:"crew_member_name,omitempty"`
	ScheduledDate  string  `json:"scheduled_date"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	IsRecurring    bool    `json:"is_recurring"`
	RecurrenceRule *string `json:"recurrence_rule,omitempty"`
	Status         string  `json:"status"`
}

// CreateScheduleRequest creates a schedule. SiteID and CrewMemberID are both
// optional: a visit can be planned before anyone is assigned to it, and the
// conflict guard only runs for fully specified assignments.
type CreateScheduleRequest struct {
	CompanyID      string  `json:"-"`
	SiteID         *string `json:"site_id,omitempty"`
	CrewMemberID   *string `json:"crew_member_id,omitempty"`
	ScheduledDate  string  `json:"scheduled_date"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	IsRecurring    bool    `json:"is_recurring,omitempty"`
	RecurrenceRule *string `json:"recurrence_rule,omitempty"`
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.ScheduledDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_date",
			Message: "scheduled_date must be in YYYY-MM-DD format",
		})
	}
	if !validator.IsValidTimeOfDay(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if !validator.IsValidTimeOfDay(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}
	// Inverted and zero-width windows are rejected at the boundary; the
	// overlap test would silently accept them otherwise.
	if validator.IsValidTimeOfDay(r.StartTime) && validator.IsValidTimeOfDay(r.EndTime) && r.StartTime >= r.EndTime {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateScheduleRequest struct {
	ID             string  `json:"-"`
	CompanyID      string  `json:"-"`
	SiteID         *string `json:"site_id,omitempty"`
	CrewMemberID   *string `json:"crew_member_id,omitempty"`
	ScheduledDate  *string `json:"scheduled_date,omitempty"`
	StartTime      *string `json:"start_time,omitempty"`
	EndTime        *string `json:"end_time,omitempty"`
	IsRecurring    *bool   `json:"is_recurring,omitempty"`
	RecurrenceRule *string `json:"recurrence_rule,omitempty"`
	Status         *string `json:"status,omitempty"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.ScheduledDate != nil {
		if _, ok := validator.IsValidDate(*r.ScheduledDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "scheduled_date",
				Message: "scheduled_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.StartTime != nil && !validator.IsValidTimeOfDay(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if r.EndTime != nil && !validator.IsValidTimeOfDay(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is not a valid schedule status",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListSchedulesRequest struct {
	CompanyID string `json:"-"`
	Filter    ScheduleFilter
}
