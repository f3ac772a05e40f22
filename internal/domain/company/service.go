package company

import "context"

// CompanyService exposes tenant settings. Billing and subscription state are
// written by an external payment integration; this service only reads them.
type CompanyService interface {
	GetCompany(ctx context.Context, companyID string) (CompanyResponse, error)
	UpdateCompany(ctx context.Context, req UpdateCompanyRequest) (CompanyResponse, error)
}
