package crew

import "context"

// CrewRepository defines data access for crew members, always scoped by
// companyID to prevent cross-tenant reads.
type CrewRepository interface {
	Create(ctx context.Context, m CrewMember) (CrewMember, error)
	GetByID(ctx context.Context, id string, companyID string) (CrewMember, error)
	List(ctx context.Context, companyID string, activeOnly bool) ([]CrewMember, error)
	Update(ctx context.Context, m CrewMember) (CrewMember, error)
	Deactivate(ctx context.Context, id string, companyID string) error
}
