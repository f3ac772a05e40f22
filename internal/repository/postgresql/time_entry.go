package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/crewfield/crewfield-backend-go/internal/domain/timeentry"
	"github.com/crewfield/crewfield-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type timeEntryRepository struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

// Create implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Create(ctx context.Context, e timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	query := `
		INSERT INTO time_entries (
			id, company_id, schedule_id, crew_member_id, site_id,
			clock_in, clock_in_latitude, clock_in_longitude, clock_in_verified, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.ID, e.CompanyID, e.ScheduleID, e.CrewMemberID, e.SiteID,
		e.ClockIn, e.ClockInLatitude, e.ClockInLongitude, e.ClockInVerified, e.Notes,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return timeentry.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return e, nil
}

func scanTimeEntryRow(row pgx.Row) (timeentry.TimeEntry, error) {
	var e timeentry.TimeEntry
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.ScheduleID, &e.CrewMemberID, &e.SiteID,
		&e.ClockIn, &e.ClockInLatitude, &e.ClockInLongitude, &e.ClockInVerified,
		&e.ClockOut, &e.ClockOutLatitude, &e.ClockOutLongitude, &e.ClockOutVerified,
		&e.TotalHours, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
		&e.CrewMemberName, &e.SiteName,
	)
	return e, err
}

const timeEntrySelect = `
	SELECT te.id, te.company_id, te.schedule_id, te.crew_member_id, te.site_id,
	       te.clock_in, te.clock_in_latitude, te.clock_in_longitude, te.clock_in_verified,
	       te.clock_out, te.clock_out_latitude, te.clock_out_longitude, te.clock_out_verified,
	       te.total_hours, te.notes, te.created_at, te.updated_at,
	       cm.name, st.name
	FROM time_entries te
	LEFT JOIN crew_members cm ON cm.id = te.crew_member_id
	LEFT JOIN sites st ON st.id = te.site_id
`

// GetByIDForCrewMember implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) GetByIDForCrewMember(ctx context.Context, id string, crewMemberID string, companyID string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := timeEntrySelect + `
		WHERE te.id = $1 AND te.crew_member_id = $2 AND te.company_id = $3
	`

	e, err := scanTimeEntryRow(q.QueryRow(ctx, query, id, crewMemberID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to get time entry: %w", err)
	}

	return e, nil
}

// Update implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Update(ctx context.Context, e timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET clock_out = $3, clock_out_latitude = $4, clock_out_longitude = $5,
		    clock_out_verified = $6, total_hours = $7, notes = $8, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		e.ID, e.CompanyID, e.ClockOut, e.ClockOutLatitude, e.ClockOutLongitude,
		e.ClockOutVerified, e.TotalHours, e.Notes,
	).Scan(&e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to update time entry: %w", err)
	}

	return e, nil
}

// List implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) List(ctx context.Context, filter timeentry.TimeEntryFilter, companyID string) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := timeEntrySelect + `
		WHERE te.company_id = $1
	`
	args := []interface{}{companyID}
	argIndex := 2

	if filter.CrewMemberID != nil {
		query += fmt.Sprintf(" AND te.crew_member_id = $%d", argIndex)
		args = append(args, *filter.CrewMemberID)
		argIndex++
	}
	if filter.SiteID != nil {
		query += fmt.Sprintf(" AND te.site_id = $%d", argIndex)
		args = append(args, *filter.SiteID)
		argIndex++
	}
	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND te.clock_in >= $%d::date", argIndex)
		args = append(args, *filter.StartDate)
		argIndex++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND te.clock_in < $%d::date + INTERVAL '1 day'", argIndex)
		args = append(args, *filter.EndDate)
		argIndex++
	}

	query += " ORDER BY te.clock_in DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		e, err := scanTimeEntryRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// HasEntryForSchedule implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) HasEntryForSchedule(ctx context.Context, scheduleID string, companyID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM time_entries WHERE schedule_id = $1 AND company_id = $2)`,
		scheduleID, companyID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check time entries for schedule: %w", err)
	}

	return exists, nil
}
