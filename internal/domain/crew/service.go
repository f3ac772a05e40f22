package crew

import "context"

type CrewService interface {
	CreateCrewMember(ctx context.Context, req CreateCrewMemberRequest) (CrewMemberResponse, error)
	GetCrewMember(ctx context.Context, companyID string, id string) (CrewMemberResponse, error)
	ListCrewMembers(ctx context.Context, companyID string, activeOnly bool) ([]CrewMemberResponse, error)
	UpdateCrewMember(ctx context.Context, req UpdateCrewMemberRequest) (CrewMemberResponse, error)
	DeactivateCrewMember(ctx context.Context, companyID string, id string) error
}
