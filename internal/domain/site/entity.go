package site

import "time"

type Site struct {
	ID               string
	CompanyID        string
	Name             string
	Address          string
	Latitude         *float64
	Longitude        *float64
	GeofenceRadius   *int // meters; nil falls back to the company default
	ClientName       *string
	ClientEmail      *string
	ClientPhone      *string
	BudgetHours      *float64
	ServiceFrequency *string
	Notes            *string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasCoordinates reports whether the site can anchor a geofence check at all.
// Sites without coordinates fail open: clock-ins against them are verified.
func (s Site) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// EffectiveGeofenceRadius resolves the radius for this site given the
// company-level default.
func (s Site) EffectiveGeofenceRadius(companyDefault int) int {
	if s.GeofenceRadius != nil {
		return *s.GeofenceRadius
	}
	return companyDefault
}
