package timetracking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/crewfield/crewfield-backend-go/internal/domain/alert"
	"github.com/crewfield/crewfield-backend-go/internal/domain/company"
	"github.com/crewfield/crewfield-backend-go/internal/domain/crew"
	"github.com/crewfield/crewfield-backend-go/internal/domain/schedule"
	"github.com/crewfield/crewfield-backend-go/internal/domain/site"
	"github.com/crewfield/crewfield-backend-go/internal/domain/timeentry"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes. Each holds just enough state for the clock-in/clock-out
// state machine and the geofence policy.

type fakeTimeEntryRepo struct {
	entries map[string]timeentry.TimeEntry
}

func (f *fakeTimeEntryRepo) Create(ctx context.Context, e timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	f.entries[e.ID] = e
	return e, nil
}

func (f *fakeTimeEntryRepo) GetByIDForCrewMember(ctx context.Context, id string, crewMemberID string, companyID string) (timeentry.TimeEntry, error) {
	e, ok := f.entries[id]
	if !ok || e.CrewMemberID != crewMemberID || e.CompanyID != companyID {
		return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
	}
	return e, nil
}

func (f *fakeTimeEntryRepo) Update(ctx context.Context, e timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	if _, ok := f.entries[e.ID]; !ok {
		return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
	}
	f.entries[e.ID] = e
	return e, nil
}

func (f *fakeTimeEntryRepo) List(ctx context.Context, filter timeentry.TimeEntryFilter, companyID string) ([]timeentry.TimeEntry, error) {
	var result []timeentry.TimeEntry
	for _, e := range f.entries {
		if e.CompanyID != companyID {
			continue
		}
		if filter.CrewMemberID != nil && e.CrewMemberID != *filter.CrewMemberID {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (f *fakeTimeEntryRepo) HasEntryForSchedule(ctx context.Context, scheduleID string, companyID string) (bool, error) {
	for _, e := range f.entries {
		if e.CompanyID == companyID && e.ScheduleID != nil && *e.ScheduleID == scheduleID {
			return true, nil
		}
	}
	return false, nil
}

type fakeScheduleRepo struct {
	schedules map[string]schedule.Schedule
}

func (f *fakeScheduleRepo) Create(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
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
	return nil, nil
}

func (f *fakeScheduleRepo) Update(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
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

func (f *fakeScheduleRepo) LockCrewDate(ctx context.Context, crewMemberID string, date time.Time, companyID string) error {
	return nil
}

func (f *fakeScheduleRepo) ListForCrewOnDate(ctx context.Context, crewMemberID string, date time.Time, companyID string) ([]schedule.Schedule, error) {
	return nil, nil
}

func (f *fakeScheduleRepo) ListOverdueScheduled(ctx context.Context, now time.Time) ([]schedule.Schedule, error) {
	return nil, nil
}

type fakeSiteRepo struct {
	sites map[string]site.Site
}

func (f *fakeSiteRepo) Create(ctx context.Context, s site.Site) (site.Site, error) {
	f.sites[s.ID] = s
	return s, nil
}

func (f *fakeSiteRepo) GetByID(ctx context.Context, id string, companyID string) (site.Site, error) {
	s, ok := f.sites[id]
	if !ok || s.CompanyID != companyID {
		return site.Site{}, site.ErrSiteNotFound
	}
	return s, nil
}

func (f *fakeSiteRepo) List(ctx context.Context, companyID string, activeOnly bool) ([]site.Site, error) {
	return nil, nil
}

func (f *fakeSiteRepo) Update(ctx context.Context, s site.Site) (site.Site, error) {
	f.sites[s.ID] = s
	return s, nil
}

func (f *fakeSiteRepo) Deactivate(ctx context.Context, id string, companyID string) error {
	return nil
}

type fakeCrewRepo struct {
	members map[string]crew.CrewMember
}

func (f *fakeCrewRepo) Create(ctx context.Context, m crew.CrewMember) (crew.CrewMember, error) {
	f.members[m.ID] = m
	return m, nil
}

func (f *fakeCrewRepo) GetByID(ctx context.Context, id string, companyID string) (crew.CrewMember, error) {
	m, ok := f.members[id]
	if !ok || m.CompanyID != companyID {
		return crew.CrewMember{}, crew.ErrCrewMemberNotFound
	}
	return m, nil
}

func (f *fakeCrewRepo) List(ctx context.Context, companyID string, activeOnly bool) ([]crew.CrewMember, error) {
	return nil, nil
}

func (f *fakeCrewRepo) Update(ctx context.Context, m crew.CrewMember) (crew.CrewMember, error) {
	f.members[m.ID] = m
	return m, nil
}

func (f *fakeCrewRepo) Deactivate(ctx context.Context, id string, companyID string) error {
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]company.Company
}

func (f *fakeCompanyRepo) GetByID(ctx context.Context, id string) (company.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return c, nil
}

func (f *fakeCompanyRepo) Update(ctx context.Context, c company.Company) (company.Company, error) {
	f.companies[c.ID] = c
	return c, nil
}

type recordingAlertService struct {
	emitted []alert.EmitAlertRequest
	emitErr error
}

func (r *recordingAlertService) Emit(ctx context.Context, req alert.EmitAlertRequest) error {
	if r.emitErr != nil {
		return r.emitErr
	}
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

type fixture struct {
	svc       *TimeTrackingServiceImpl
	entries   *fakeTimeEntryRepo
	schedules *fakeScheduleRepo
	sites     *fakeSiteRepo
	alerts    *recordingAlertService
	clock     *time.Time
}

// Tower Plaza sits at a fixed point; onSiteLat/Lon is inside the 100m fence,
// offSiteLat/Lon is roughly 1.1km north.
const (
	towerPlazaLat = 40.7580
	towerPlazaLon = -73.9855
	offSiteLat    = 40.7680
	offSiteLon    = -73.9855
)

func newFixture(t *testing.T) *fixture {
	t.Helper()

	entries := &fakeTimeEntryRepo{entries: make(map[string]timeentry.TimeEntry)}
	schedules := &fakeScheduleRepo{schedules: make(map[string]schedule.Schedule)}
	sites := &fakeSiteRepo{sites: make(map[string]site.Site)}
	crewRepo := &fakeCrewRepo{members: make(map[string]crew.CrewMember)}
	companies := &fakeCompanyRepo{companies: make(map[string]company.Company)}
	alerts := &recordingAlertService{}

	companies.companies["company-1"] = company.Company{
		ID:                 "company-1",
		Name:               "Sparkle Cleaning Co",
		GeofenceRadius:     100,
		NoShowAlertMinutes: 15,
	}
	lat, lon := towerPlazaLat, towerPlazaLon
	siteName := "Tower Plaza"
	sites.sites["site-1"] = site.Site{
		ID:        "site-1",
		CompanyID: "company-1",
		Name:      siteName,
		Latitude:  &lat,
		Longitude: &lon,
		IsActive:  true,
	}
	sites.sites["site-nocoords"] = site.Site{
		ID:        "site-nocoords",
		CompanyID: "company-1",
		Name:      "Archive Warehouse",
		IsActive:  true,
	}
	crewRepo.members["crew-1"] = crew.CrewMember{
		ID:        "crew-1",
		CompanyID: "company-1",
		Name:      "Ana Flores",
		IsActive:  true,
	}

	clock := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	f := &fixture{
		entries:   entries,
		schedules: schedules,
		sites:     sites,
		alerts:    alerts,
		clock:     &clock,
	}
	f.svc = &TimeTrackingServiceImpl{
		TimeEntryRepository: entries,
		ScheduleRepository:  schedules,
		SiteRepository:      sites,
		CrewRepository:      crewRepo,
		CompanyRepository:   companies,
		alertService:        alerts,
		now:                 func() time.Time { return *f.clock },
	}
	return f
}

func (f *fixture) addSchedule(id, siteID string) {
	site := siteID
	crewID := "crew-1"
	f.schedules.schedules[id] = schedule.Schedule{
		ID:            id,
		CompanyID:     "company-1",
		SiteID:        &site,
		CrewMemberID:  &crewID,
		ScheduledDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:     "09:00",
		EndTime:       "12:00",
		Status:        schedule.StatusScheduled,
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestClockIn_InsideGeofence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.addSchedule("sched-1", "site-1")

	scheduleID := "sched-1"
	result, err := f.svc.ClockIn(ctx, timeentry.ClockInRequest{
		CompanyID:    "company-1",
		CrewMemberID: "crew-1",
		ScheduleID:   &scheduleID,
		Latitude:     floatPtr(towerPlazaLat),
		Longitude:    floatPtr(towerPlazaLon),
	})

	require.NoError(t, err)
	require.NotNil(t, result.ClockInVerified)
	assert.True(t, *result.ClockInVerified)
	assert.Empty(t, f.alerts.emitted)
	assert.Equal(t, schedule.StatusInProgress, f.schedules.schedules["sched-1"].Status)
}

func TestClockIn_OutsideGeofence_RaisesAlert(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.addSchedule("sched-1", "site-1")

	scheduleID := "sched-1"
	result, err := f.svc.ClockIn(ctx, timeentry.ClockInRequest{
		CompanyID:    "company-1",
		CrewMemberID: "crew-1",
		ScheduleID:   &scheduleID,
		Latitude:     floatPtr(offSiteLat),
		Longitude:    floatPtr(offSiteLon),
	})

	// The clock-in still succeeds; the violation is flagged, not blocked.
	require.NoError(t, err)
	require.NotNil(t, result.ClockInVerified)
	assert.False(t, *result.ClockInVerified)

	require.Len(t, f.alerts.emitted, 1)
	emitted := f.alerts.emitted[0]
	assert.Equal(t, alert.TypeOffSiteClockIn, emitted.Type)
	assert.Equal(t, "Ana Flores clocked in outside the geofence area at Tower Plaza", emitted.Message)

	// An off-site clock-in still moves the schedule forward.
	assert.Equal(t, schedule.StatusInProgress, f.schedules.schedules["sched-1"].Status)
}

func TestClockIn_AlertEmitFailure_DoesNotUndoClockIn(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.addSchedule("sched-1", "site-1")
	f.alerts.emitErr = errors.New("alert store unavailable")

	scheduleID := "sched-1"
	result, err := f.svc.ClockIn(ctx, timeentry.ClockInRequest{
		CompanyID:    "company-1",
		CrewMemberID: "crew-1",
		ScheduleID:   &scheduleID,
		Latitude:     floatPtr(offSiteLat),
		Longitude:    floatPtr(offSiteLon),
	})

	require.NoError(t, err)
	require.NotNil(t, result.ClockInVerified)
	assert.False(t, *result.ClockInVerified)
	assert.Len(t, f.entries.entries, 1)
	assert.Equal(t, schedule.StatusInProgress, f.schedules.schedules["sched-1"].Status)
}

func TestClockIn_SiteWithoutCoordinates_FailsOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.addSchedule("sched-1", "site-nocoords")

	scheduleID := "sched-1"
	result, err := f.svc.ClockIn(ctx, timeentry.ClockInRequest{
		CompanyID:    "company-1",
		CrewMemberID: "crew-1",
		ScheduleID:   &scheduleID,
		Latitude:     floatPtr(offSiteLat),
		Longitude:    floatPtr(offSiteLon),
	})

	require.NoError(t, err)
	require.NotNil(t, result.ClockInVerified)
	assert.True(t, *result.ClockInVerified)
	assert.Empty(t, f.alerts.emitted)
}

func TestClockIn_NoDeviceCoordinates_FailsOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.addSchedule("sched-1", "site-1")

	scheduleID := "sched-1"
	result, err := f.svc.ClockIn(ctx, timeentry.ClockInRequest{
		CompanyID:    "company-1",
		CrewMemberID: "crew-1",
		ScheduleID:   &scheduleID,
	})

	require.NoError(t, err)
	require.NotNil(t, result.ClockInVerified)
	assert.True(t, *result.ClockInVerified)
	assert.Empty(t, f.alerts.emitted)
}

func TestClockIn_SiteRadiusOverridesCompanyDefault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	// Widen this site's fence so the off-site point falls inside it.
	wide := 2000
	s := f.sites.sites["site-1"]
	s.GeofenceRadius = &wide
	f.sites.sites["site-1"] = s
	f.addSchedule("sched-1", "site-1")

	scheduleID := "sched-1"
	result, err := f.svc.ClockIn(ctx, timeentry.ClockInRequest{
		CompanyID:    "company-1",
		CrewMemberID: "crew-1",
		ScheduleID:   &scheduleID,
		Latitude:     floatPtr(offSiteLat),
		Longitude:    floatPtr(offSiteLon),
	})

	require.NoError(t, err)
	assert.True(t, *result.ClockInVerified)
	assert.Empty(t, f.alerts.emitted)
}

func TestClockIn_WithoutSchedule(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	result, err := f.svc.ClockIn(ctx, timeentry.ClockInRequest{
		CompanyID:    "company-1",
		CrewMemberID: "crew-1",
		Latitude:     floatPtr(offSiteLat),
		Longitude:    floatPtr(offSiteLon),
	})

	// No schedule means no site to verify against.
	require.NoError(t, err)
	assert.Nil(t, result.ScheduleID)
	assert.True(t, *result.ClockInVerified)
}

func TestClockOut_ComputesFractionalHours(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.addSchedule("sched-1", "site-1")

	scheduleID := "sched-1"
	entry, err := f.svc.ClockIn(ctx, timeentry.ClockInRequest{
		CompanyID:    "company-1",
		CrewMemberID: "crew-1",
		ScheduleID:   &scheduleID,
		Latitude:     floatPtr(towerPlazaLat),
		Longitude:    floatPtr(towerPlazaLon),
	})
	require.NoError(t, err)

	*f.clock = f.clock.Add(90 * time.Minute)

	result, err := f.svc.ClockOut(ctx, timeentry.ClockOutRequest{
		CompanyID:    "company-1",
		CrewMemberID: "crew-1",
		TimeEntryID:  entry.ID,
	})

	require.NoError(t, err)
	require.NotNil(t, result.TotalHours)
	assert.InDelta(t, 1.5, *result.TotalHours, 1e-9)
	require.NotNil(t, result.ClockOutVerified)
	assert.True(t, *result.ClockOutVerified)
	assert.Equal(t, schedule.StatusCompleted, f.schedules.schedules["sched-1"].Status)
}

func TestClockOut_TwiceRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	entry, err := f.svc.ClockIn(ctx, timeentry.ClockInRequest{
		CompanyID:    "company-1",
		CrewMemberID: "crew-1",
	})
	require.NoError(t, err)

	*f.clock = f.clock.Add(time.Hour)
	first, err := f.svc.ClockOut(ctx, timeentry.ClockOutRequest{
		CompanyID:    "company-1",
		CrewMemberID: "crew-1",
		TimeEntryID:  entry.ID,
	})
	require.NoError(t, err)

	*f.clock = f.clock.Add(time.Hour)
	_, err = f.svc.ClockOut(ctx, timeentry.ClockOutRequest{
		CompanyID:    "company-1",
		CrewMemberID: "crew-1",
		TimeEntryID:  entry.ID,
	})
	assert.ErrorIs(t, err, timeentry.ErrAlreadyClockedOut)

	// The recorded hours survive the rejected second attempt.
	stored := f.entries.entries[entry.ID]
	require.NotNil(t, stored.TotalHours)
	assert.InDelta(t, *first.TotalHours, *stored.TotalHours, 1e-9)
}

func TestClockOut_WrongCrewMember(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	entry, err := f.svc.ClockIn(ctx, timeentry.ClockInRequest{
		CompanyID:    "company-1",
		CrewMemberID: "crew-1",
	})
	require.NoError(t, err)

	_, err = f.svc.ClockOut(ctx, timeentry.ClockOutRequest{
		CompanyID:    "company-1",
		CrewMemberID: "crew-2",
		TimeEntryID:  entry.ID,
	})
	assert.ErrorIs(t, err, timeentry.ErrTimeEntryNotFound)
}

func TestClockIn_UnknownCrewMember(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.ClockIn(ctx, timeentry.ClockInRequest{
		CompanyID:    "company-1",
		CrewMemberID: "crew-unknown",
	})
	assert.ErrorIs(t, err, crew.ErrCrewMemberNotFound)
}
