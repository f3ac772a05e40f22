package site

import (
	"context"
	"fmt"

	"github.com/crewfield/crewfield-backend-go/internal/domain/site"
)

type SiteServiceImpl struct {
	site.SiteRepository
}

func NewSiteService(siteRepo site.SiteRepository) site.SiteService {
	return &SiteServiceImpl{
		SiteRepository: siteRepo,
	}
}

// CreateSite implements site.SiteService.
func (s *SiteServiceImpl) CreateSite(ctx context.Context, req site.CreateSiteRequest) (site.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return site.SiteResponse{}, err
	}

	created, err := s.SiteRepository.Create(ctx, site.Site{
		CompanyID:        req.CompanyID,
		Name:             req.Name,
		Address:          req.Address,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		GeofenceRadius:   req.GeofenceRadius,
		ClientName:       req.ClientName,
		ClientEmail:      req.ClientEmail,
		ClientPhone:      req.ClientPhone,
		BudgetHours:      req.BudgetHours,
		ServiceFrequency: req.ServiceFrequency,
		Notes:            req.Notes,
		IsActive:         true,
	})
	if err != nil {
		return site.SiteResponse{}, fmt.Errorf("failed to create site: %w", err)
	}

	return toSiteResponse(created), nil
}

// GetSite implements site.SiteService.
func (s *SiteServiceImpl) GetSite(ctx context.Context, companyID string, id string) (site.SiteResponse, error) {
	found, err := s.SiteRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return site.SiteResponse{}, err
	}
	return toSiteResponse(found), nil
}

// ListSites implements site.SiteService.
func (s *SiteServiceImpl) ListSites(ctx context.Context, companyID string, activeOnly bool) ([]site.SiteResponse, error) {
	sites, err := s.SiteRepository.List(ctx, companyID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}

	responses := make([]site.SiteResponse, 0, len(sites))
	for _, st := range sites {
		responses = append(responses, toSiteResponse(st))
	}
	return responses, nil
}

// UpdateSite implements site.SiteService.
func (s *SiteServiceImpl) UpdateSite(ctx context.Context, req site.UpdateSiteRequest) (site.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return site.SiteResponse{}, err
	}

	current, err := s.SiteRepository.GetByID(ctx, req.ID, req.CompanyID)
	if err != nil {
		return site.SiteResponse{}, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Address != nil {
		current.Address = *req.Address
	}
	if req.Latitude != nil {
		current.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		current.Longitude = req.Longitude
	}
	if req.GeofenceRadius != nil {
		current.GeofenceRadius = req.GeofenceRadius
	}
	if req.ClientName != nil {
		current.ClientName = req.ClientName
	}
	if req.ClientEmail != nil {
		current.ClientEmail = req.ClientEmail
	}
	if req.ClientPhone != nil {
		current.ClientPhone = req.ClientPhone
	}
	if req.BudgetHours != nil {
		current.BudgetHours = req.BudgetHours
	}
	if req.ServiceFrequency != nil {
		current.ServiceFrequency = req.ServiceFrequency
	}
	if req.Notes != nil {
		current.Notes = req.Notes
	}
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}

	updated, err := s.SiteRepository.Update(ctx, current)
	if err != nil {
		return site.SiteResponse{}, err
	}
	return toSiteResponse(updated), nil
}

// DeactivateSite implements site.SiteService.
func (s *SiteServiceImpl) DeactivateSite(ctx context.Context, companyID string, id string) error {
	if err := s.SiteRepository.Deactivate(ctx, id, companyID); err != nil {
		return err
	}
	return nil
}

func toSiteResponse(s site.Site) site.SiteResponse {
	return site.SiteResponse{
		ID:               s.ID,
		Name:             s.Name,
		Address:          s.Address,
		Latitude:         s.Latitude,
		Longitude:        s.Longitude,
		GeofenceRadius:   s.GeofenceRadius,
		ClientName:       s.ClientName,
		ClientEmail:      s.ClientEmail,
		ClientPhone:      s.ClientPhone,
		BudgetHours:      s.BudgetHours,
		ServiceFrequency: s.ServiceFrequency,
		Notes:            s.Notes,
		IsActive:         s.IsActive,
	}
}
