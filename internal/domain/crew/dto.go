package crew

import (
	"github.com/crewfield/crewfield-backend-go/internal/pkg/validator"
)

type CrewMemberResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Phone      *string  `json:"phone,omitempty"`
	Email      *string  `json:"email,omitempty"`
	Language   string   `json:"language"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
	IsActive   bool     `json:"is_active"`
}

type CreateCrewMemberRequest struct {
	CompanyID  string   `json:"-"`
	Name       string   `json:"name"`
	Phone      *string  `json:"phone,omitempty"`
	Email      *string  `json:"email,omitempty"`
	Language   string   `json:"language,omitempty"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
}

func (r *CreateCrewMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is invalid",
		})
	}
	if r.HourlyRate != nil && *r.HourlyRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCrewMemberRequest struct {
	ID         string   `json:"-"`
	CompanyID  string   `json:"-"`
	Name       *string  `json:"name,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Email      *string  `json:"email,omitempty"`
	Language   *string  `json:"language,omitempty"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
	IsActive   *bool    `json:"is_active,omitempty"`
}

func (r *UpdateCrewMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
