package timetracking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/crewfield/crewfield-backend-go/internal/domain/alert"
	"github.com/crewfield/crewfield-backend-go/internal/domain/company"
	"github.com/crewfield/crewfield-backend-go/internal/domain/crew"
	"github.com/crewfield/crewfield-backend-go/internal/domain/schedule"
	"github.com/crewfield/crewfield-backend-go/internal/domain/site"
	"github.com/crewfield/crewfield-backend-go/internal/domain/timeentry"
	"github.com/crewfield/crewfield-backend-go/internal/pkg/utils"
)

type TimeTrackingServiceImpl struct {
	timeentry.TimeEntryRepository
	schedule.ScheduleRepository
	site.SiteRepository
	crew.CrewRepository
	company.CompanyRepository
	alertService alert.AlertService
	now          func() time.Time
}

func NewTimeTrackingService(
	timeEntryRepo timeentry.TimeEntryRepository,
	scheduleRepo schedule.ScheduleRepository,
	siteRepo site.SiteRepository,
	crewRepo crew.CrewRepository,
	companyRepo company.CompanyRepository,
	alertService alert.AlertService,
) timeentry.TimeTrackingService {
	return &TimeTrackingServiceImpl{
		TimeEntryRepository: timeEntryRepo,
		ScheduleRepository:  scheduleRepo,
		SiteRepository:      siteRepo,
		CrewRepository:      crewRepo,
		CompanyRepository:   companyRepo,
		alertService:        alertService,
		now:                 time.Now,
	}
}

// ClockIn implements timeentry.TimeTrackingService.
func (s *TimeTrackingServiceImpl) ClockIn(ctx context.Context, req timeentry.ClockInRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	crewMember, err := s.CrewRepository.GetByID(ctx, req.CrewMemberID, req.CompanyID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	var sched *schedule.Schedule
	var siteID *string
	if req.ScheduleID != nil {
		found, err := s.ScheduleRepository.GetByID(ctx, *req.ScheduleID, req.CompanyID)
		if err != nil {
			return timeentry.TimeEntryResponse{}, err
		}
		sched = &found
		siteID = found.SiteID
	}

	verified, clockInSite, err := s.verifyClockInLocation(ctx, req.CompanyID, siteID, req.Latitude, req.Longitude)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	clockIn := s.now().UTC()
	entry := timeentry.TimeEntry{
		CompanyID:        req.CompanyID,
		ScheduleID:       req.ScheduleID,
		CrewMemberID:     req.CrewMemberID,
		SiteID:           siteID,
		ClockIn:          &clockIn,
		ClockInLatitude:  req.Latitude,
		ClockInLongitude: req.Longitude,
		ClockInVerified:  &verified,
	}

	created, err := s.TimeEntryRepository.Create(ctx, entry)
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	if sched != nil {
		if err := s.ScheduleRepository.UpdateStatus(ctx, sched.ID, req.CompanyID, schedule.StatusInProgress); err != nil {
			return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to mark schedule in progress: %w", err)
		}
	}

	if !verified {
		siteName := "an unknown site"
		if clockInSite != nil {
			siteName = clockInSite.Name
		}
		emitErr := s.alertService.Emit(ctx, alert.EmitAlertRequest{
			CompanyID:    req.CompanyID,
			Type:         alert.TypeOffSiteClockIn,
			ScheduleID:   req.ScheduleID,
			CrewMemberID: &crewMember.ID,
			SiteID:       siteID,
			Message:      fmt.Sprintf("%s clocked in outside the geofence area at %s", crewMember.Name, siteName),
		})
		if emitErr != nil {
			// The clock-in already happened; a lost alert must not undo it.
			slog.Error("failed to emit off-site clock-in alert",
				"error", emitErr,
				"time_entry_id", created.ID,
				"crew_member_id", crewMember.ID,
			)
			return toTimeEntryResponse(created), nil
		}
	}

	created.CrewMemberName = &crewMember.Name
	if clockInSite != nil {
		created.SiteName = &clockInSite.Name
	}
	return toTimeEntryResponse(created), nil
}

// verifyClockInLocation applies the geofence policy. Verification fails only
// when the site has coordinates, the device sent coordinates, and the distance
// between them exceeds the effective radius. Anything missing fails open.
func (s *TimeTrackingServiceImpl) verifyClockInLocation(ctx context.Context, companyID string, siteID *string, lat, lon *float64) (bool, *site.Site, error) {
	if siteID == nil {
		return true, nil, nil
	}

	clockInSite, err := s.SiteRepository.GetByID(ctx, *siteID, companyID)
	if err != nil {
		if errors.Is(err, site.ErrSiteNotFound) {
			return true, nil, nil
		}
		return false, nil, err
	}

	if !clockInSite.HasCoordinates() || lat == nil || lon == nil {
		return true, &clockInSite, nil
	}

	tenant, err := s.CompanyRepository.GetByID(ctx, companyID)
	if err != nil {
		return false, nil, err
	}
	radius := clockInSite.EffectiveGeofenceRadius(tenant.GeofenceRadius)
	if radius <= 0 {
		radius = company.DefaultGeofenceRadiusMeters
	}

	distance := utils.HaversineDistanceMeters(*lat, *lon, *clockInSite.Latitude, *clockInSite.Longitude)
	return distance <= float64(radius), &clockInSite, nil
}

// ClockOut implements timeentry.TimeTrackingService.
func (s *TimeTrackingServiceImpl) ClockOut(ctx context.Context, req timeentry.ClockOutRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := s.TimeEntryRepository.GetByIDForCrewMember(ctx, req.TimeEntryID, req.CrewMemberID, req.CompanyID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	if entry.ClockOut != nil {
		return timeentry.TimeEntryResponse{}, timeentry.ErrAlreadyClockedOut
	}

	clockOut := s.now().UTC()
	// Clock-out never runs a geofence check: leaving the site to finish the
	// day is legitimate, so the out-location is recorded but always verified.
	verified := true
	entry.ClockOut = &clockOut
	entry.ClockOutLatitude = req.Latitude
	entry.ClockOutLongitude = req.Longitude
	entry.ClockOutVerified = &verified
	if req.Notes != nil {
		entry.Notes = req.Notes
	}

	if entry.ClockIn != nil {
		hours := clockOut.Sub(*entry.ClockIn).Hours()
		if hours < 0 {
			hours = 0
		}
		entry.TotalHours = &hours
	}

	updated, err := s.TimeEntryRepository.Update(ctx, entry)
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to close time entry: %w", err)
	}

	if entry.ScheduleID != nil {
		if err := s.ScheduleRepository.UpdateStatus(ctx, *entry.ScheduleID, req.CompanyID, schedule.StatusCompleted); err != nil {
			return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to mark schedule completed: %w", err)
		}
	}

	updated.CrewMemberName = entry.CrewMemberName
	updated.SiteName = entry.SiteName
	return toTimeEntryResponse(updated), nil
}

// ListTimeEntries implements timeentry.TimeTrackingService.
func (s *TimeTrackingServiceImpl) ListTimeEntries(ctx context.Context, req timeentry.ListTimeEntriesRequest) ([]timeentry.TimeEntryResponse, error) {
	entries, err := s.TimeEntryRepository.List(ctx, req.Filter, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	return toTimeEntryResponses(entries), nil
}

// GetMyTimeEntries implements timeentry.TimeTrackingService.
func (s *TimeTrackingServiceImpl) GetMyTimeEntries(ctx context.Context, companyID string, crewMemberID string, filter timeentry.TimeEntryFilter) ([]timeentry.TimeEntryResponse, error) {
	filter.CrewMemberID = &crewMemberID
	entries, err := s.TimeEntryRepository.List(ctx, filter, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get time entries: %w", err)
	}
	return toTimeEntryResponses(entries), nil
}

func toTimeEntryResponses(entries []timeentry.TimeEntry) []timeentry.TimeEntryResponse {
	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, toTimeEntryResponse(e))
	}
	return responses
}

func toTimeEntryResponse(e timeentry.TimeEntry) timeentry.TimeEntryResponse {
	return timeentry.TimeEntryResponse{
		ID:                e.ID,
		ScheduleID:        e.ScheduleID,
		CrewMemberID:      e.CrewMemberID,
		CrewMemberName:    e.CrewMemberName,
		SiteID:            e.SiteID,
		SiteName:          e.SiteName,
		ClockIn:           timePtrToString(e.ClockIn),
		ClockInLatitude:   e.ClockInLatitude,
		ClockInLongitude:  e.ClockInLongitude,
		ClockInVerified:   e.ClockInVerified,
		ClockOut:          timePtrToString(e.ClockOut),
		ClockOutLatitude:  e.ClockOutLatitude,
		ClockOutLongitude: e.ClockOutLongitude,
		ClockOutVerified:  e.ClockOutVerified,
		TotalHours:        e.TotalHours,
		Notes:             e.Notes,
	}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
