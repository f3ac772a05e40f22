package site

import "context"

type SiteService interface {
	CreateSite(ctx context.Context, req CreateSiteRequest) (SiteResponse, error)
	GetSite(ctx context.Context, companyID string, id string) (SiteResponse, error)
	ListSites(ctx context.Context, companyID string, activeOnly bool) ([]SiteResponse, error)
	UpdateSite(ctx context.Context, req UpdateSiteRequest) (SiteResponse, error)
	DeactivateSite(ctx context.Context, companyID string, id string) error
}
