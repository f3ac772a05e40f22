package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/crewfield/crewfield-backend-go/internal/domain/schedule"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScheduleRepo keeps schedules in memory so the conflict guard can be
// exercised without a database. The transaction wrapper is replaced with a
// plain passthrough; calls records the guard's lock/read/write ordering.
type fakeScheduleRepo struct {
	schedules map[string]schedule.Schedule
	calls     []string
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[string]schedule.Schedule)}
}

func (f *fakeScheduleRepo) LockCrewDate(ctx context.Context, crewMemberID string, date time.Time, companyID string) error {
	f.calls = append(f.calls, "lock:"+companyID+":"+crewMemberID+":"+date.Format("2006-01-02"))
	return nil
}

func (f *fakeScheduleRepo) Create(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Status == "" {
		s.Status = schedule.StatusScheduled
	}
	f.schedules[s.ID] = s
	return s, nil
}

func (f *fakeScheduleRepo) GetByID(ctx context.Context, id string, companyID string) (schedule.Schedule, error) {
	s, ok := f.schedules[id]
	if !ok || s.CompanyID != companyID {
		return schedule.Schedule{}, schedule.ErrScheduleNotFound
	}
	return s, nil
}

func (f *fakeScheduleRepo) List(ctx context.Context, filter schedule.ScheduleFilter, companyID string) ([]schedule.Schedule, error) {
	var result []schedule.Schedule
	for _, s := range f.schedules {
		if s.CompanyID == companyID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeScheduleRepo) Update(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	existing, ok := f.schedules[s.ID]
	if !ok || existing.CompanyID != s.CompanyID {
		return schedule.Schedule{}, schedule.ErrScheduleNotFound
	}
	f.schedules[s.ID] = s
	return s, nil
}

func (f *fakeScheduleRepo) UpdateStatus(ctx context.Context, id string, companyID string, status schedule.Status) error {
	s, ok := f.schedules[id]
	if !ok || s.CompanyID != companyID {
		return schedule.ErrScheduleNotFound
	}
	s.Status = status
	f.schedules[id] = s
	return nil
}

func (f *fakeScheduleRepo) ListForCrewOnDate(ctx context.Context, crewMemberID string, date time.Time, companyID string) ([]schedule.Schedule, error) {
	f.calls = append(f.calls, "list:"+companyID+":"+crewMemberID+":"+date.Format("2006-01-02"))
	var result []schedule.Schedule
	for _, s := range f.schedules {
		if s.CompanyID != companyID || s.CrewMemberID == nil || *s.CrewMemberID != crewMemberID {
			continue
		}
		if !s.ScheduledDate.Equal(date) || s.Status == schedule.StatusCanceled {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (f *fakeScheduleRepo) ListOverdueScheduled(ctx context.Context, now time.Time) ([]schedule.Schedule, error) {
	return nil, nil
}

func newTestScheduleService(repo *fakeScheduleRepo) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{
		ScheduleRepository: repo,
		withTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return fn(nil)
		},
	}
}

func strPtr(s string) *string { return &s }

func TestScheduleService_Create_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeScheduleRepo()
	svc := newTestScheduleService(repo)

	created, err := svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{
		CompanyID:     "company-1",
		SiteID:        strPtr("site-1"),
		CrewMemberID:  strPtr("crew-1"),
		ScheduledDate: "2026-03-02",
		StartTime:     "09:00",
		EndTime:       "12:00",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "scheduled", created.Status)
	assert.Equal(t, "2026-03-02", created.ScheduledDate)
}

func TestScheduleService_Create_LocksCrewDateBeforeConflictCheck(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeScheduleRepo()
	svc := newTestScheduleService(repo)

	_, err := svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{
		CompanyID:     "company-1",
		SiteID:        strPtr("site-1"),
		CrewMemberID:  strPtr("crew-1"),
		ScheduledDate: "2026-03-02",
		StartTime:     "09:00",
		EndTime:       "12:00",
	})

	require.NoError(t, err)
	require.Len(t, repo.calls, 2)
	assert.Equal(t, "lock:company-1:crew-1:2026-03-02", repo.calls[0])
	assert.Equal(t, "list:company-1:crew-1:2026-03-02", repo.calls[1])
}

func TestScheduleService_Update_LocksCrewDateBeforeConflictCheck(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeScheduleRepo()
	svc := newTestScheduleService(repo)

	created, err := svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{
		CompanyID:     "company-1",
		SiteID:        strPtr("site-1"),
		CrewMemberID:  strPtr("crew-1"),
		ScheduledDate: "2026-03-02",
		StartTime:     "09:00",
		EndTime:       "12:00",
	})
	require.NoError(t, err)

	repo.calls = nil
	_, err = svc.UpdateSchedule(ctx, schedule.UpdateScheduleRequest{
		ID:        created.ID,
		CompanyID: "company-1",
		EndTime:   strPtr("13:00"),
	})

	require.NoError(t, err)
	require.Len(t, repo.calls, 2)
	assert.Equal(t, "lock:company-1:crew-1:2026-03-02", repo.calls[0])
	assert.Equal(t, "list:company-1:crew-1:2026-03-02", repo.calls[1])
}

func TestScheduleService_Create_RejectsOverlap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeScheduleRepo()
	svc := newTestScheduleService(repo)

	_, err := svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{
		CompanyID:     "company-1",
		SiteID:        strPtr("site-1"),
		CrewMemberID:  strPtr("crew-1"),
		ScheduledDate: "2026-03-02",
		StartTime:     "09:00",
		EndTime:       "12:00",
	})
	require.NoError(t, err)

	_, err = svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{
		CompanyID:     "company-1",
		SiteID:        strPtr("site-2"),
		CrewMemberID:  strPtr("crew-1"),
		ScheduledDate: "2026-03-02",
		StartTime:     "11:00",
		EndTime:       "14:00",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, schedule.ErrScheduleConflict)

	var conflict *schedule.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "09:00", conflict.StartTime)
	assert.Equal(t, "12:00", conflict.EndTime)
}

func TestScheduleService_Create_BackToBackAllowed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeScheduleRepo()
	svc := newTestScheduleService(repo)

	_, err := svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{
		CompanyID:     "company-1",
		CrewMemberID:  strPtr("crew-1"),
		ScheduledDate: "2026-03-02",
		StartTime:     "09:00",
		EndTime:       "12:00",
	})
	require.NoError(t, err)

	// A shift starting exactly when the previous one ends is not a conflict.
	_, err = svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{
		CompanyID:     "company-1",
		CrewMemberID:  strPtr("crew-1"),
		ScheduledDate: "2026-03-02",
		StartTime:     "12:00",
		EndTime:       "15:00",
	})
	assert.NoError(t, err)
}

func TestScheduleService_Create_IgnoresCanceled(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeScheduleRepo()
	svc := newTestScheduleService(repo)

	created, err := svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{
		CompanyID:     "company-1",
		CrewMemberID:  strPtr("crew-1"),
		ScheduledDate: "2026-03-02",
		StartTime:     "09:00",
		EndTime:       "12:00",
	})
	require.NoError(t, err)
	require.NoError(t, svc.CancelSchedule(ctx, "company-1", created.ID))

	// The canceled slot no longer blocks the window.
	_, err = svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{
		CompanyID:     "company-1",
		CrewMemberID:  strPtr("crew-1"),
		ScheduledDate: "2026-03-02",
		StartTime:     "10:00",
		EndTime:       "13:00",
	})
	assert.NoError(t, err)
}

func TestScheduleService_Create_UnassignedSkipsGuard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeScheduleRepo()
	svc := newTestScheduleService(repo)

	// Two unassigned visits in the same window are fine; nobody is
	// double-booked.
	for i := 0; i < 2; i++ {
		_, err := svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{
			CompanyID:     "company-1",
			SiteID:        strPtr("site-1"),
			ScheduledDate: "2026-03-02",
			StartTime:     "09:00",
			EndTime:       "12:00",
		})
		require.NoError(t, err)
	}
}

func TestScheduleService_Create_DifferentDaysNoConflict(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeScheduleRepo()
	svc := newTestScheduleService(repo)

	_, err := svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{
		CompanyID:     "company-1",
		CrewMemberID:  strPtr("crew-1"),
		ScheduledDate: "2026-03-02",
		StartTime:     "09:00",
		EndTime:       "12:00",
	})
	require.NoError(t, err)

	_, err = svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{
		CompanyID:     "company-1",
		CrewMemberID:  strPtr("crew-1"),
		ScheduledDate: "2026-03-03",
		StartTime:     "09:00",
		EndTime:       "12:00",
	})
	assert.NoError(t, err)
}

func TestScheduleService_Create_RejectsInvertedWindow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeScheduleRepo()
	svc := newTestScheduleService(repo)

	_, err := svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{
		CompanyID:     "company-1",
		CrewMemberID:  strPtr("crew-1"),
		ScheduledDate: "2026-03-02",
		StartTime:     "14:00",
		EndTime:       "09:00",
	})

	assert.Error(t, err)
}

func TestScheduleService_Update_RerunsGuardExcludingSelf(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeScheduleRepo()
	svc := newTestScheduleService(repo)

	first, err := svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{
		CompanyID:     "company-1",
		CrewMemberID:  strPtr("crew-1"),
		ScheduledDate: "2026-03-02",
		StartTime:     "09:00",
		EndTime:       "12:00",
	})
	require.NoError(t, err)

	_, err = svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{
		CompanyID:     "company-1",
		CrewMemberID:  strPtr("crew-1"),
		ScheduledDate: "2026-03-02",
		StartTime:     "13:00",
		EndTime:       "15:00",
	})
	require.NoError(t, err)

	// Widening the first shift within its own slot is fine; it never
	// conflicts with itself.
	updated, err := svc.UpdateSchedule(ctx, schedule.UpdateScheduleRequest{
		ID:        first.ID,
		CompanyID: "company-1",
		EndTime:   strPtr("12:30"),
	})
	require.NoError(t, err)
	assert.Equal(t, "12:30", updated.EndTime)

	// Stretching it into the second shift is rejected.
	_, err = svc.UpdateSchedule(ctx, schedule.UpdateScheduleRequest{
		ID:        first.ID,
		CompanyID: "company-1",
		EndTime:   strPtr("14:00"),
	})
	assert.ErrorIs(t, err, schedule.ErrScheduleConflict)
}

func TestScheduleService_Cancel_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeScheduleRepo()
	svc := newTestScheduleService(repo)

	err := svc.CancelSchedule(ctx, "company-1", "missing")
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
}

func TestScheduleService_TenantIsolation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeScheduleRepo()
	svc := newTestScheduleService(repo)

	created, err := svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{
		CompanyID:     "company-1",
		CrewMemberID:  strPtr("crew-1"),
		ScheduledDate: "2026-03-02",
		StartTime:     "09:00",
		EndTime:       "12:00",
	})
	require.NoError(t, err)

	// Another tenant cannot see the schedule, and its own crew member ids
	// never collide with company-1's bookings.
	_, err = svc.GetSchedule(ctx, "company-2", created.ID)
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)

	_, err = svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{
		CompanyID:     "company-2",
		CrewMemberID:  strPtr("crew-1"),
		ScheduledDate: "2026-03-02",
		StartTime:     "09:00",
		EndTime:       "12:00",
	})
	assert.NoError(t, err)
}
