package company

import (
	"github.com/crewfield/crewfield-backend-go/internal/pkg/validator"
)

type CompanyResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Phone              *string `json:"phone,omitempty"`
	Email              *string `json:"email,omitempty"`
	Address            *string `json:"address,omitempty"`
	GeofenceRadius     int     `json:"geofence_radius"`
	NoShowAlertMinutes int     `json:"noshow_alert_minutes"`
	SubscriptionStatus string  `json:"subscription_status"`
	SubscriptionTier   *string `json:"subscription_tier,omitempty"`
}

// UpdateCompanyRequest updates tenant settings. CompanyID comes from the
// access token, never from the body.
type UpdateCompanyRequest struct {
	CompanyID          string  `json:"-"`
	Name               *string `json:"name,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	Email              *string `json:"email,omitempty"`
	Address            *string `json:"address,omitempty"`
	GeofenceRadius     *int    `json:"geofence_radius,omitempty"`
	NoShowAlertMinutes *int    `json:"noshow_alert_minutes,omitempty"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
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
	if r.GeofenceRadius != nil && *r.GeofenceRadius <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "geofence_radius",
			Message: "geofence_radius must be positive",
		})
	}
	if r.NoShowAlertMinutes != nil && *r.NoShowAlertMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "noshow_alert_minutes",
			Message: "noshow_alert_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
