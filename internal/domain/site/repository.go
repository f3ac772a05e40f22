package site

import "context"

// SiteRepository defines data access for sites. Every method takes companyID
// to keep lookups scoped to the calling tenant.
type SiteRepository interface {
	Create(ctx context.Context, s Site) (Site, error)
	GetByID(ctx context.Context, id string, companyID string) (Site, error)
	List(ctx context.Context, companyID string, activeOnly bool) ([]Site, error)
	Update(ctx context.Context, s Site) (Site, error)

	// Deactivate soft-deletes: the site stays referenced by old schedules
	// and time entries.
	Deactivate(ctx context.Context, id string, companyID string) error
}
