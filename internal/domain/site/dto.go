package site

import (
	"github.com/crewfield/crewfield-backend-go/internal/pkg/validator"
)

type SiteResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	GeofenceRadius   *int     `json:"geofence_radius,omitempty"`
	ClientName       *string  `json:"client_name,omitempty"`
	ClientEmail      *string  `json:"client_email,omitempty"`
	ClientPhone      *string  `json:"client_phone,omitempty"`
	BudgetHours      *float64 `json:"budget_hours,omitempty"`
	ServiceFrequency *string  `json:"service_frequency,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
	IsActive         bool     `json:"is_active"`
}

type CreateSiteRequest struct {
	CompanyID        string   `json:"-"`
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	GeofenceRadius   *int     `json:"geofence_radius,omitempty"`
	ClientName       *string  `json:"client_name,omitempty"`
	ClientEmail      *string  `json:"client_email,omitempty"`
	ClientPhone      *string  `json:"client_phone,omitempty"`
	BudgetHours      *float64 `json:"budget_hours,omitempty"`
	ServiceFrequency *string  `json:"service_frequency,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
}

func (r *CreateSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address is required",
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
	if r.GeofenceRadius != nil && *r.GeofenceRadius <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "geofence_radius",
			Message: "geofence_radius must be positive",
		})
	}
	if r.ClientEmail != nil && *r.ClientEmail != "" && !validator.IsValidEmail(*r.ClientEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_email",
			Message: "client_email is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSiteRequest struct {
	ID               string   `json:"-"`
	CompanyID        string   `json:"-"`
	Name             *string  `json:"name,omitempty"`
	Address          *string  `json:"address,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	GeofenceRadius   *int     `json:"geofence_radius,omitempty"`
	ClientName       *string  `json:"client_name,omitempty"`
	ClientEmail      *string  `json:"client_email,omitempty"`
	ClientPhone      *string  `json:"client_phone,omitempty"`
	BudgetHours      *float64 `json:"budget_hours,omitempty"`
	ServiceFrequency *string  `json:"service_frequency,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
	IsActive         *bool    `json:"is_active,omitempty"`
}

func (r *UpdateSiteRequest) Validate() error {
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
	if r.GeofenceRadius != nil && *r.GeofenceRadius <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "geofence_radius",
			Message: "geofence_radius must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
