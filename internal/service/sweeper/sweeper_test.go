package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/crewfield/crewfield-backend-go/internal/domain/alert"
	"github.com/crewfield/crewfield-backend-go/internal/domain/schedule"
	"github.com/crewfield/crewfield-backend-go/internal/domain/timeentry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOverdueRepo struct {
	overdue       []schedule.Schedule
	statusUpdates map[string]schedule.Status
	failStatusFor string
}

func (f *fakeOverdueRepo) Create(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	return s, nil
}

func (f *fakeOverdueRepo) GetByID(ctx context.Context, id string, companyID string) (schedule.Schedule, error) {
	return schedule.Schedule{}, schedule.ErrScheduleNotFound
}

func (f *fakeOverdueRepo) List(ctx context.Context, filter schedule.ScheduleFilter, companyID string) ([]schedule.Schedule, error) {
	return nil, nil
}

func (f *fakeOverdueRepo) Update(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	return s, nil
}

func (f *fakeOverdueRepo) UpdateStatus(ctx context.Context, id string, companyID string, status schedule.Status) error {
	if id == f.failStatusFor {
		return errors.New("update failed")
	}
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeOverdueRepo) LockCrewDate(ctx context.Context, crewMemberID string, date time.Time, companyID string) error {
	return nil
}

func (f *fakeOverdueRepo) ListForCrewOnDate(ctx context.Context, crewMemberID string, date time.Time, companyID string) ([]schedule.Schedule, error) {
	return nil, nil
}

func (f *fakeOverdueRepo) ListOverdueScheduled(ctx context.Context, now time.Time) ([]schedule.Schedule, error) {
	return f.overdue, nil
}

// fakeEntryLookup answers HasEntryForSchedule from a fixed set; the other
// repository methods are never reached by the sweeper.
type fakeEntryLookup struct {
	entriesFor map[string]bool
}

func (f *fakeEntryLookup) Create(ctx context.Context, e timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	return e, nil
}

func (f *fakeEntryLookup) GetByIDForCrewMember(ctx context.Context, id string, crewMemberID string, companyID string) (timeentry.TimeEntry, error) {
	return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
}

func (f *fakeEntryLookup) Update(ctx context.Context, e timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	return e, nil
}

func (f *fakeEntryLookup) List(ctx context.Context, filter timeentry.TimeEntryFilter, companyID string) ([]timeentry.TimeEntry, error) {
	return nil, nil
}

func (f *fakeEntryLookup) HasEntryForSchedule(ctx context.Context, scheduleID string, companyID string) (bool, error) {
	return f.entriesFor[scheduleID], nil
}

type recordingAlertService struct {
	emitted []alert.EmitAlertRequest
}

func (r *recordingAlertService) Emit(ctx context.Context, req alert.EmitAlertRequest) error {
	r.emitted = append(r.emitted, req)
	return nil
}

func (r *recordingAlertService) ListAlerts(ctx context.Context, req alert.ListAlertsRequest) ([]alert.AlertResponse, error) {
	return nil, nil
}

func (r *recordingAlertService) MarkAlertRead(ctx context.Context, companyID string, id string, isRead bool) (alert.AlertResponse, error) {
	return alert.AlertResponse{}, nil
}

func (r *recordingAlertService) MarkAllAlertsRead(ctx context.Context, companyID string) error {
	return nil
}

func (r *recordingAlertService) UnreadCount(ctx context.Context, companyID string) (int, error) {
	return len(r.emitted), nil
}

func overdueSchedule(id string) schedule.Schedule {
	crewID := "crew-1"
	crewName := "Ana Flores"
	siteID := "site-1"
	siteName := "Tower Plaza"
	return schedule.Schedule{
		ID:             id,
		CompanyID:      "company-1",
		SiteID:         &siteID,
		SiteName:       &siteName,
		CrewMemberID:   &crewID,
		CrewMemberName: &crewName,
		ScheduledDate:  time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:      "09:00",
		EndTime:        "12:00",
		Status:         schedule.StatusScheduled,
	}
}

func TestSweep_MarksMissedAndAlerts(t *testing.T) {
	t.Parallel()
	repo := &fakeOverdueRepo{
		overdue:       []schedule.Schedule{overdueSchedule("sched-1")},
		statusUpdates: make(map[string]schedule.Status),
	}
	alerts := &recordingAlertService{}
	s := NewMissedShiftSweeper(repo, &fakeEntryLookup{}, alerts)

	require.NoError(t, s.Sweep(context.Background()))

	assert.Equal(t, schedule.StatusMissed, repo.statusUpdates["sched-1"])
	require.Len(t, alerts.emitted, 1)
	emitted := alerts.emitted[0]
	assert.Equal(t, alert.TypeMissedShift, emitted.Type)
	assert.Equal(t, "Ana Flores has not clocked in for the 09:00 shift at Tower Plaza", emitted.Message)
	require.NotNil(t, emitted.ScheduleID)
	assert.Equal(t, "sched-1", *emitted.ScheduleID)
}

func TestSweep_NothingOverdue(t *testing.T) {
	t.Parallel()
	repo := &fakeOverdueRepo{statusUpdates: make(map[string]schedule.Status)}
	alerts := &recordingAlertService{}
	s := NewMissedShiftSweeper(repo, &fakeEntryLookup{}, alerts)

	require.NoError(t, s.Sweep(context.Background()))
	assert.Empty(t, alerts.emitted)
}

func TestSweep_LateClockInIsNotMarkedMissed(t *testing.T) {
	t.Parallel()
	repo := &fakeOverdueRepo{
		overdue:       []schedule.Schedule{overdueSchedule("sched-late"), overdueSchedule("sched-absent")},
		statusUpdates: make(map[string]schedule.Status),
	}
	entries := &fakeEntryLookup{entriesFor: map[string]bool{"sched-late": true}}
	alerts := &recordingAlertService{}
	s := NewMissedShiftSweeper(repo, entries, alerts)

	require.NoError(t, s.Sweep(context.Background()))

	// sched-late got a clock-in after the overdue query; it keeps its status
	// and no alert fires. sched-absent is still marked missed.
	_, touched := repo.statusUpdates["sched-late"]
	assert.False(t, touched)
	assert.Equal(t, schedule.StatusMissed, repo.statusUpdates["sched-absent"])
	require.Len(t, alerts.emitted, 1)
	assert.Equal(t, "sched-absent", *alerts.emitted[0].ScheduleID)
}

func TestSweep_OneFailureDoesNotStallOthers(t *testing.T) {
	t.Parallel()
	repo := &fakeOverdueRepo{
		overdue:       []schedule.Schedule{overdueSchedule("sched-bad"), overdueSchedule("sched-2")},
		statusUpdates: make(map[string]schedule.Status),
		failStatusFor: "sched-bad",
	}
	alerts := &recordingAlertService{}
	s := NewMissedShiftSweeper(repo, &fakeEntryLookup{}, alerts)

	require.NoError(t, s.Sweep(context.Background()))

	// sched-bad is skipped; sched-2 is still processed.
	assert.Equal(t, schedule.StatusMissed, repo.statusUpdates["sched-2"])
	require.Len(t, alerts.emitted, 1)
	assert.Equal(t, "sched-2", *alerts.emitted[0].ScheduleID)
}
