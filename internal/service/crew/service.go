package crew

import (
	"context"
	"fmt"

	"github.com/crewfield/crewfield-backend-go/internal/domain/crew"
)

type CrewServiceImpl struct {
	crew.CrewRepository
}

func NewCrewService(crewRepo crew.CrewRepository) crew.CrewService {
	return &CrewServiceImpl{
		CrewRepository: crewRepo,
	}
}

// CreateCrewMember implements crew.CrewService.
func (s *CrewServiceImpl) CreateCrewMember(ctx context.Context, req crew.CreateCrewMemberRequest) (crew.CrewMemberResponse, error) {
	if err := req.Validate(); err != nil {
		return crew.CrewMemberResponse{}, err
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	created, err := s.CrewRepository.Create(ctx, crew.CrewMember{
		CompanyID:  req.CompanyID,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Language:   language,
		HourlyRate: req.HourlyRate,
		IsActive:   true,
	})
	if err != nil {
		return crew.CrewMemberResponse{}, fmt.Errorf("failed to create crew member: %w", err)
	}

	return toCrewMemberResponse(created), nil
}

// GetCrewMember implements crew.CrewService.
func (s *CrewServiceImpl) GetCrewMember(ctx context.Context, companyID string, id string) (crew.CrewMemberResponse, error) {
	found, err := s.CrewRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return crew.CrewMemberResponse{}, err
	}
	return toCrewMemberResponse(found), nil
}

// ListCrewMembers implements crew.CrewService.
func (s *CrewServiceImpl) ListCrewMembers(ctx context.Context, companyID string, activeOnly bool) ([]crew.CrewMemberResponse, error) {
	members, err := s.CrewRepository.List(ctx, companyID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list crew members: %w", err)
	}

	responses := make([]crew.CrewMemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, toCrewMemberResponse(m))
	}
	return responses, nil
}

// UpdateCrewMember implements crew.CrewService.
func (s *CrewServiceImpl) UpdateCrewMember(ctx context.Context, req crew.UpdateCrewMemberRequest) (crew.CrewMemberResponse, error) {
	if err := req.Validate(); err != nil {
		return crew.CrewMemberResponse{}, err
	}

	current, err := s.CrewRepository.GetByID(ctx, req.ID, req.CompanyID)
	if err != nil {
		return crew.CrewMemberResponse{}, err
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
	if req.Language != nil {
		current.Language = *req.Language
	}
	if req.HourlyRate != nil {
		current.HourlyRate = req.HourlyRate
	}
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}

	updated, err := s.CrewRepository.Update(ctx, current)
	if err != nil {
		return crew.CrewMemberResponse{}, err
	}
	return toCrewMemberResponse(updated), nil
}

// DeactivateCrewMember implements crew.CrewService.
func (s *CrewServiceImpl) DeactivateCrewMember(ctx context.Context, companyID string, id string) error {
	if err := s.CrewRepository.Deactivate(ctx, id, companyID); err != nil {
		return err
	}
	return nil
}

func toCrewMemberResponse(m crew.CrewMember) crew.CrewMemberResponse {
	return crew.CrewMemberResponse{
		ID:         m.ID,
		Name:       m.Name,
		Phone:      m.Phone,
		Email:      m.Email,
		Language:   m.Language,
		HourlyRate: m.HourlyRate,
		IsActive:   m.IsActive,
	}
}
