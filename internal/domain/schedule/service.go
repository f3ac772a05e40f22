package schedule

import "context"

// ScheduleService defines business logic for schedules, including the
// conflict guard on the create path.
type ScheduleService interface {
	// CreateSchedule runs the conflict guard before persisting: when the
	// request names a crew member, date and time window, any overlapping
	// non-canceled schedule for that crew member on that date rejects the
	// request with a ConflictError. Unassigned requests skip the guard.
	CreateSchedule(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)

	GetSchedule(ctx context.Context, companyID string, id string) (ScheduleResponse, error)
	ListSchedules(ctx context.Context, req ListSchedulesRequest) ([]ScheduleResponse, error)
	UpdateSchedule(ctx context.Context, req UpdateScheduleRequest) (ScheduleResponse, error)

	// CancelSchedule sets status to canceled; canceled schedules no longer
	// participate in conflict checks.
	CancelSchedule(ctx context.Context, companyID string, id string) error
}
