package sweeper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/crewfield/crewfield-backend-go/internal/domain/alert"
	"github.com/crewfield/crewfield-backend-go/internal/domain/schedule"
	"github.com/crewfield/crewfield-backend-go/internal/domain/timeentry"
)

// MissedShiftSweeper periodically marks overdue schedules as missed and
// raises a no-show alert for each. A schedule counts as overdue once its
// start time is more than the company's configured threshold in the past with
// no clock-in recorded against it.
type MissedShiftSweeper struct {
	schedule.ScheduleRepository
	timeentry.TimeEntryRepository
	alertService alert.AlertService
	now          func() time.Time
}

func NewMissedShiftSweeper(scheduleRepo schedule.ScheduleRepository, timeEntryRepo timeentry.TimeEntryRepository, alertService alert.AlertService) *MissedShiftSweeper {
	return &MissedShiftSweeper{
		ScheduleRepository:  scheduleRepo,
		TimeEntryRepository: timeEntryRepo,
		alertService:        alertService,
		now:                 time.Now,
	}
}

// Sweep runs one pass. Failures on a single schedule are logged and skipped
// so one bad row cannot stall the rest; the schedule stays "scheduled" and
// the next pass retries it.
func (s *MissedShiftSweeper) Sweep(ctx context.Context) error {
	overdue, err := s.ScheduleRepository.ListOverdueScheduled(ctx, s.now().UTC())
	if err != nil {
		return fmt.Errorf("failed to list overdue schedules: %w", err)
	}

	for _, sched := range overdue {
		if err := s.markMissed(ctx, sched); err != nil {
			slog.Error("Failed to mark schedule missed", "schedule_id", sched.ID, "error", err)
			continue
		}
	}

	return nil
}

func (s *MissedShiftSweeper) markMissed(ctx context.Context, sched schedule.Schedule) error {
	// A crew member may have clocked in between the overdue query and now;
	// re-check before marking so a late arrival is never flagged as a no-show.
	hasEntry, err := s.TimeEntryRepository.HasEntryForSchedule(ctx, sched.ID, sched.CompanyID)
	if err != nil {
		return err
	}
	if hasEntry {
		return nil
	}

	if err := s.ScheduleRepository.UpdateStatus(ctx, sched.ID, sched.CompanyID, schedule.StatusMissed); err != nil {
		return err
	}

	crewName := "A crew member"
	if sched.CrewMemberName != nil {
		crewName = *sched.CrewMemberName
	}
	siteName := "an unknown site"
	if sched.SiteName != nil {
		siteName = *sched.SiteName
	}

	scheduleID := sched.ID
	return s.alertService.Emit(ctx, alert.EmitAlertRequest{
		CompanyID:    sched.CompanyID,
		Type:         alert.TypeMissedShift,
		ScheduleID:   &scheduleID,
		CrewMemberID: sched.CrewMemberID,
		SiteID:       sched.SiteID,
		Message:      fmt.Sprintf("%s has not clocked in for the %s shift at %s", crewName, sched.StartTime, siteName),
	})
}
