package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/crewfield/crewfield-backend-go/internal/domain/schedule"
	"github.com/crewfield/crewfield-backend-go/internal/pkg/database"
	"github.com/crewfield/crewfield-backend-go/internal/pkg/validator"
	"github.com/crewfield/crewfield-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type ScheduleServiceImpl struct {
	schedule.ScheduleRepository
	withTx func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewScheduleService(db *database.DB, scheduleRepo schedule.ScheduleRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		ScheduleRepository: scheduleRepo,
		withTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// CreateSchedule implements schedule.ScheduleService. The conflict guard and
// the insert run inside one transaction that first takes the advisory lock
// for (company, crew member, date): two concurrent requests for the same
// crew member serialize on it, so the second one's check sees the first
// one's committed schedule.
func (s *ScheduleServiceImpl) CreateSchedule(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.ScheduledDate)

	newSchedule := schedule.Schedule{
		CompanyID:      req.CompanyID,
		SiteID:         req.SiteID,
		CrewMemberID:   req.CrewMemberID,
		ScheduledDate:  date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		IsRecurring:    req.IsRecurring,
		RecurrenceRule: req.RecurrenceRule,
		Status:         schedule.StatusScheduled,
	}

	// The guard only runs for a fully specified assignment. An unassigned
	// visit cannot double-book anyone.
	if req.CrewMemberID == nil {
		created, err := s.ScheduleRepository.Create(ctx, newSchedule)
		if err != nil {
			return schedule.ScheduleResponse{}, fmt.Errorf("failed to create schedule: %w", err)
		}
		return toScheduleResponse(created), nil
	}

	var created schedule.Schedule
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.ScheduleRepository.LockCrewDate(txCtx, *req.CrewMemberID, date, req.CompanyID); err != nil {
			return err
		}

		existing, err := s.ScheduleRepository.ListForCrewOnDate(txCtx, *req.CrewMemberID, date, req.CompanyID)
		if err != nil {
			return fmt.Errorf("failed to check existing schedules: %w", err)
		}

		if conflict := findConflict(existing, req.StartTime, req.EndTime, ""); conflict != nil {
			return conflict
		}

		created, err = s.ScheduleRepository.Create(txCtx, newSchedule)
		if err != nil {
			return fmt.Errorf("failed to create schedule: %w", err)
		}
		return nil
	})
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	return toScheduleResponse(created), nil
}

// findConflict returns the first schedule overlapping [start, end), skipping
// excludeID so an update never conflicts with itself.
func findConflict(existing []schedule.Schedule, start, end string, excludeID string) *schedule.ConflictError {
	for _, other := range existing {
		if other.ID == excludeID {
			continue
		}
		if schedule.Overlaps(start, end, other.StartTime, other.EndTime) {
			siteName := ""
			if other.SiteName != nil {
				siteName = *other.SiteName
			}
			return &schedule.ConflictError{
				ScheduleID: other.ID,
				SiteName:   siteName,
				StartTime:  other.StartTime,
				EndTime:    other.EndTime,
			}
		}
	}
	return nil
}

// GetSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetSchedule(ctx context.Context, companyID string, id string) (schedule.ScheduleResponse, error) {
	found, err := s.ScheduleRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	return toScheduleResponse(found), nil
}

// ListSchedules implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListSchedules(ctx context.Context, req schedule.ListSchedulesRequest) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.ScheduleRepository.List(ctx, req.Filter, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, sch := range schedules {
		responses = append(responses, toScheduleResponse(sch))
	}
	return responses, nil
}

// UpdateSchedule implements schedule.ScheduleService. Changing the crew
// member, date or window re-runs the conflict guard against the updated
// values, excluding the schedule itself.
func (s *ScheduleServiceImpl) UpdateSchedule(ctx context.Context, req schedule.UpdateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	current, err := s.ScheduleRepository.GetByID(ctx, req.ID, req.CompanyID)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	if req.SiteID != nil {
		current.SiteID = req.SiteID
	}
	if req.CrewMemberID != nil {
		current.CrewMemberID = req.CrewMemberID
	}
	if req.ScheduledDate != nil {
		date, _ := time.Parse("2006-01-02", *req.ScheduledDate)
		current.ScheduledDate = date
	}
	if req.StartTime != nil {
		current.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		current.EndTime = *req.EndTime
	}
	if current.StartTime >= current.EndTime {
		return schedule.ScheduleResponse{}, validator.ValidationErrors{{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		}}
	}
	if req.IsRecurring != nil {
		current.IsRecurring = *req.IsRecurring
	}
	if req.RecurrenceRule != nil {
		current.RecurrenceRule = req.RecurrenceRule
	}
	if req.Status != nil {
		current.Status = schedule.Status(*req.Status)
	}

	if current.CrewMemberID == nil || current.Status == schedule.StatusCanceled {
		updated, err := s.ScheduleRepository.Update(ctx, current)
		if err != nil {
			return schedule.ScheduleResponse{}, err
		}
		return toScheduleResponse(updated), nil
	}

	var updated schedule.Schedule
	err = s.withTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.ScheduleRepository.LockCrewDate(txCtx, *current.CrewMemberID, current.ScheduledDate, req.CompanyID); err != nil {
			return err
		}

		existing, err := s.ScheduleRepository.ListForCrewOnDate(txCtx, *current.CrewMemberID, current.ScheduledDate, req.CompanyID)
		if err != nil {
			return fmt.Errorf("failed to check existing schedules: %w", err)
		}

		if conflict := findConflict(existing, current.StartTime, current.EndTime, current.ID); conflict != nil {
			return conflict
		}

		updated, err = s.ScheduleRepository.Update(txCtx, current)
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	updated.SiteName = current.SiteName
	updated.CrewMemberName = current.CrewMemberName
	return toScheduleResponse(updated), nil
}

// CancelSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) CancelSchedule(ctx context.Context, companyID string, id string) error {
	if err := s.ScheduleRepository.UpdateStatus(ctx, id, companyID, schedule.StatusCanceled); err != nil {
		return err
	}
	return nil
}

func toScheduleResponse(s schedule.Schedule) schedule.ScheduleResponse {
	return schedule.ScheduleResponse{
		ID:             s.ID,
		SiteID:         s.SiteID,
		SiteName:       s.SiteName,
		CrewMemberID:   s.CrewMemberID,
		CrewMemberName: s.CrewMemberName,
		ScheduledDate:  s.ScheduledDate.Format("2006-01-02"),
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		IsRecurring:    s.IsRecurring,
		RecurrenceRule: s.RecurrenceRule,
		Status:         string(s.Status),
	}
}
