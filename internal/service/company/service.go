package company

import (
	"context"

	"github.com/crewfield/crewfield-backend-go/internal/domain/company"
)

type CompanyServiceImpl struct {
	company.CompanyRepository
}

func NewCompanyService(companyRepo company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{
		CompanyRepository: companyRepo,
	}
}

// GetCompany implements company.CompanyService.
func (s *CompanyServiceImpl) GetCompany(ctx context.Context, companyID string) (company.CompanyResponse, error) {
	found, err := s.CompanyRepository.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return toCompanyResponse(found), nil
}

// UpdateCompany implements company.CompanyService. Subscription fields are
// never touched here.
func (s *CompanyServiceImpl) UpdateCompany(ctx context.Context, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	current, err := s.CompanyRepository.GetByID(ctx, req.CompanyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Phone != nil {
		current.Phone = req.Phone
	}
	if req.Email != nil {
		current.Email = req.Email
	}
	if req.Address != nil {
		current.Address = req.Address
	}
	if req.GeofenceRadius != nil {
		current.GeofenceRadius = *req.GeofenceRadius
	}
	if req.NoShowAlertMinutes != nil {
		current.NoShowAlertMinutes = *req.NoShowAlertMinutes
	}

	updated, err := s.CompanyRepository.Update(ctx, current)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return toCompanyResponse(updated), nil
}

func toCompanyResponse(c company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Phone:              c.Phone,
		Email:              c.Email,
		Address:            c.Address,
		GeofenceRadius:     c.GeofenceRadius,
		NoShowAlertMinutes: c.NoShowAlertMinutes,
		SubscriptionStatus: c.SubscriptionStatus,
		SubscriptionTier:   c.SubscriptionTier,
	}
}
