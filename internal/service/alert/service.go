package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/crewfield/crewfield-backend-go/internal/domain/alert"
)

type AlertServiceImpl struct {
	alert.AlertRepository
}

func NewAlertService(alertRepo alert.AlertRepository) alert.AlertService {
	return &AlertServiceImpl{
		AlertRepository: alertRepo,
	}
}

// Emit implements alert.AlertService. Every call creates a row; duplicates
// are the dashboard's problem, not the emitter's.
func (s *AlertServiceImpl) Emit(ctx context.Context, req alert.EmitAlertRequest) error {
	_, err := s.AlertRepository.Create(ctx, alert.Alert{
		CompanyID:    req.CompanyID,
		Type:         req.Type,
		ScheduleID:   req.ScheduleID,
		CrewMemberID: req.CrewMemberID,
		SiteID:       req.SiteID,
		Message:      req.Message,
		IsRead:       false,
	})
	if err != nil {
		return fmt.Errorf("failed to emit alert: %w", err)
	}
	return nil
}

// ListAlerts implements alert.AlertService.
func (s *AlertServiceImpl) ListAlerts(ctx context.Context, req alert.ListAlertsRequest) ([]alert.AlertResponse, error) {
	alerts, err := s.AlertRepository.List(ctx, req.CompanyID, req.UnreadOnly, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	responses := make([]alert.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		responses = append(responses, toAlertResponse(a))
	}
	return responses, nil
}

// MarkAlertRead implements alert.AlertService.
func (s *AlertServiceImpl) MarkAlertRead(ctx context.Context, companyID string, id string, isRead bool) (alert.AlertResponse, error) {
	updated, err := s.AlertRepository.MarkRead(ctx, id, companyID, isRead)
	if err != nil {
		return alert.AlertResponse{}, err
	}
	return toAlertResponse(updated), nil
}

// MarkAllAlertsRead implements alert.AlertService.
func (s *AlertServiceImpl) MarkAllAlertsRead(ctx context.Context, companyID string) error {
	if err := s.AlertRepository.MarkAllRead(ctx, companyID); err != nil {
		return err
	}
	return nil
}

// UnreadCount implements alert.AlertService.
func (s *AlertServiceImpl) UnreadCount(ctx context.Context, companyID string) (int, error) {
	count, err := s.AlertRepository.CountUnread(ctx, companyID)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func toAlertResponse(a alert.Alert) alert.AlertResponse {
	return alert.AlertResponse{
		ID:             a.ID,
		Type:           string(a.Type),
		ScheduleID:     a.ScheduleID,
		CrewMemberID:   a.CrewMemberID,
		CrewMemberName: a.CrewMemberName,
		SiteID:         a.SiteID,
		SiteName:       a.SiteName,
		Message:        a.Message,
		IsRead:         a.IsRead,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
}
