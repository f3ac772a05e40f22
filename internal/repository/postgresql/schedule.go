package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crewfield/crewfield-backend-go/internal/domain/schedule"
	"github.com/crewfield/crewfield-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// Create implements schedule.ScheduleRepository.
func (r *scheduleRepository) Create(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Status == "" {
		s.Status = schedule.StatusScheduled
	}

	query := `
		INSERT INTO schedules (
			id, company_id, site_id, crew_member_id, scheduled_date,
			start_time, end_time, is_recurring, recurrence_rule, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.CompanyID, s.SiteID, s.CrewMemberID, s.ScheduledDate,
		s.StartTime, s.EndTime, s.IsRecurring, s.RecurrenceRule, string(s.Status),
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	return s, nil
}

// GetByID implements schedule.ScheduleRepository.
func (r *scheduleRepository) GetByID(ctx context.Context, id string, companyID string) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.company_id, s.site_id, s.crew_member_id, s.scheduled_date,
		       s.start_time, s.end_time, s.is_recurring, s.recurrence_rule, s.status,
		       s.created_at, s.updated_at, st.name, cm.name
		FROM schedules s
		LEFT JOIN sites st ON st.id = s.site_id
		LEFT JOIN crew_members cm ON cm.id = s.crew_member_id
		WHERE s.id = $1 AND s.company_id = $2
	`

	s, err := scanScheduleRow(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Schedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("failed to get schedule: %w", err)
	}

	return s, nil
}

func scanScheduleRow(row pgx.Row) (schedule.Schedule, error) {
	var s schedule.Schedule
	var status string
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.SiteID, &s.CrewMemberID, &s.ScheduledDate,
		&s.StartTime, &s.EndTime, &s.IsRecurring, &s.RecurrenceRule, &status,
		&s.CreatedAt, &s.UpdatedAt, &s.SiteName, &s.CrewMemberName,
	)
	s.Status = schedule.Status(status)
	return s, err
}

// List implements schedule.ScheduleRepository.
func (r *scheduleRepository) List(ctx context.Context, filter schedule.ScheduleFilter, companyID string) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.company_id, s.site_id, s.crew_member_id, s.scheduled_date,
		       s.start_time, s.end_time, s.is_recurring, s.recurrence_rule, s.status,
		       s.created_at, s.updated_at, st.name, cm.name
		FROM schedules s
		LEFT JOIN sites st ON st.id = s.site_id
		LEFT JOIN crew_members cm ON cm.id = s.crew_member_id
		WHERE s.company_id = $1
	`
	args := []interface{}{companyID}
	argIndex := 2

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND s.scheduled_date >= $%d", argIndex)
		args = append(args, *filter.StartDate)
		argIndex++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND s.scheduled_date <= $%d", argIndex)
		args = append(args, *filter.EndDate)
		argIndex++
	}
	if filter.CrewMemberID != nil {
		query += fmt.Sprintf(" AND s.crew_member_id = $%d", argIndex)
		args = append(args, *filter.CrewMemberID)
		argIndex++
	}
	if filter.SiteID != nil {
		query += fmt.Sprintf(" AND s.site_id = $%d", argIndex)
		args = append(args, *filter.SiteID)
		argIndex++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND s.status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}

	query += " ORDER BY s.scheduled_date, s.start_time"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	return collectSchedules(rows)
}

func collectSchedules(rows pgx.Rows) ([]schedule.Schedule, error) {
	var schedules []schedule.Schedule
	for rows.Next() {
		s, err := scanScheduleRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// LockCrewDate implements schedule.ScheduleRepository. The advisory lock is
// transaction-scoped, so it releases on commit or rollback; a second
// transaction scheduling the same crew member on the same date blocks here
// until the first finishes and then sees its committed rows.
func (r *scheduleRepository) LockCrewDate(ctx context.Context, crewMemberID string, date time.Time, companyID string) error {
	q := GetQuerier(ctx, r.db)

	key := fmt.Sprintf("schedules:%s:%s:%s", companyID, crewMemberID, date.Format("2006-01-02"))
	_, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key)
	if err != nil {
		return fmt.Errorf("failed to lock crew member schedule date: %w", err)
	}

	return nil
}

// ListForCrewOnDate implements schedule.ScheduleRepository.
func (r *scheduleRepository) ListForCrewOnDate(ctx context.Context, crewMemberID string, date time.Time, companyID string) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.company_id, s.site_id, s.crew_member_id, s.scheduled_date,
		       s.start_time, s.end_time, s.is_recurring, s.recurrence_rule, s.status,
		       s.created_at, s.updated_at, st.name, cm.name
		FROM schedules s
		LEFT JOIN sites st ON st.id = s.site_id
		LEFT JOIN crew_members cm ON cm.id = s.crew_member_id
		WHERE s.company_id = $1
		  AND s.crew_member_id = $2
		  AND s.scheduled_date = $3
		  AND s.status != 'canceled'
		ORDER BY s.start_time
	`

	rows, err := q.Query(ctx, query, companyID, crewMemberID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules for crew member: %w", err)
	}
	defer rows.Close()

	return collectSchedules(rows)
}

// Update implements schedule.ScheduleRepository.
func (r *scheduleRepository) Update(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedules
		SET site_id = $3, crew_member_id = $4, scheduled_date = $5, start_time = $6,
		    end_time = $7, is_recurring = $8, recurrence_rule = $9, status = $10,
		    updated_at = NOW()
		WHERE id = $1 AND company_id = $2
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.CompanyID, s.SiteID, s.CrewMemberID, s.ScheduledDate, s.StartTime,
		s.EndTime, s.IsRecurring, s.RecurrenceRule, string(s.Status),
	).Scan(&s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Schedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("failed to update schedule: %w", err)
	}

	return s, nil
}

// UpdateStatus implements schedule.ScheduleRepository.
func (r *scheduleRepository) UpdateStatus(ctx context.Context, id string, companyID string, status schedule.Status) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx,
		`UPDATE schedules SET status = $3, updated_at = NOW() WHERE id = $1 AND company_id = $2`,
		id, companyID, string(status),
	)
	if err != nil {
		return fmt.Errorf("failed to update schedule status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}

	return nil
}

// ListOverdueScheduled implements schedule.ScheduleRepository. A schedule is
// overdue when it is still "scheduled", its start time is more than the
// company's noshow_alert_minutes in the past, and nobody has clocked in
// against it.
func (r *scheduleRepository) ListOverdueScheduled(ctx context.Context, now time.Time) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.company_id, s.site_id, s.crew_member_id, s.scheduled_date,
		       s.start_time, s.end_time, s.is_recurring, s.recurrence_rule, s.status,
		       s.created_at, s.updated_at, st.name, cm.name
		FROM schedules s
		JOIN companies c ON c.id = s.company_id
		LEFT JOIN sites st ON st.id = s.site_id
		LEFT JOIN crew_members cm ON cm.id = s.crew_member_id
		WHERE s.status = 'scheduled'
		  AND s.crew_member_id IS NOT NULL
		  AND (s.scheduled_date + (s.start_time || ':00')::time)
		      < $1::timestamp - make_interval(mins => c.noshow_alert_minutes)
		  AND NOT EXISTS (
			SELECT 1 FROM time_entries te WHERE te.schedule_id = s.id
		  )
		ORDER BY s.scheduled_date, s.start_time
	`

	rows, err := q.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue schedules: %w", err)
	}
	defer rows.Close()

	return collectSchedules(rows)
}
