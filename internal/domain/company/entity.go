package company

import "time"

// DefaultGeofenceRadiusMeters applies when neither the site nor the company
// carries an explicit radius.
const DefaultGeofenceRadiusMeters = 100

type Company struct {
	ID                 string
	Name               string
	Phone              *string
	Email              *string
	Address            *string
	GeofenceRadius     int // meters
	NoShowAlertMinutes int
	SubscriptionStatus string
	SubscriptionTier   *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
