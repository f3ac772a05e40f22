package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/crewfield/crewfield-backend-go/internal/domain/alert"
	"github.com/crewfield/crewfield-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type alertRepository struct {
	db *database.DB
}

func NewAlertRepository(db *database.DB) alert.AlertRepository {
	return &alertRepository{db: db}
}

// Create implements alert.AlertRepository.
func (r *alertRepository) Create(ctx context.Context, a alert.Alert) (alert.Alert, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	query := `
		INSERT INTO alerts (
			id, company_id, type, schedule_id, crew_member_id, site_id, message, is_read
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.CompanyID, string(a.Type), a.ScheduleID, a.CrewMemberID, a.SiteID,
		a.Message, a.IsRead,
	).Scan(&a.CreatedAt)
	if err != nil {
		return alert.Alert{}, fmt.Errorf("failed to create alert: %w", err)
	}

	return a, nil
}

const alertSelect = `
	SELECT a.id, a.company_id, a.type, a.schedule_id, a.crew_member_id, a.site_id,
	       a.message, a.is_read, a.created_at, cm.name, st.name
	FROM alerts a
	LEFT JOIN crew_members cm ON cm.id = a.crew_member_id
	LEFT JOIN sites st ON st.id = a.site_id
`

func scanAlertRow(row pgx.Row) (alert.Alert, error) {
	var a alert.Alert
	var alertType string
	err := row.Scan(
		&a.ID, &a.CompanyID, &alertType, &a.ScheduleID, &a.CrewMemberID, &a.SiteID,
		&a.Message, &a.IsRead, &a.CreatedAt, &a.CrewMemberName, &a.SiteName,
	)
	a.Type = alert.AlertType(alertType)
	return a, err
}

// List implements alert.AlertRepository.
func (r *alertRepository) List(ctx context.Context, companyID string, unreadOnly bool, limit int) ([]alert.Alert, error) {
	q := GetQuerier(ctx, r.db)

	query := alertSelect + `
		WHERE a.company_id = $1
	`
	args := []interface{}{companyID}

	if unreadOnly {
		query += " AND a.is_read = false"
	}

	query += " ORDER BY a.created_at DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	var alerts []alert.Alert
	for rows.Next() {
		a, err := scanAlertRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	return alerts, rows.Err()
}

// MarkRead implements alert.AlertRepository.
func (r *alertRepository) MarkRead(ctx context.Context, id string, companyID string, isRead bool) (alert.Alert, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE alerts a
		SET is_read = $3
		WHERE a.id = $1 AND a.company_id = $2
		RETURNING a.id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, companyID, isRead).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return alert.Alert{}, alert.ErrAlertNotFound
		}
		return alert.Alert{}, fmt.Errorf("failed to mark alert read: %w", err)
	}

	a, err := scanAlertRow(q.QueryRow(ctx, alertSelect+" WHERE a.id = $1 AND a.company_id = $2", id, companyID))
	if err != nil {
		return alert.Alert{}, fmt.Errorf("failed to reload alert: %w", err)
	}

	return a, nil
}

// MarkAllRead implements alert.AlertRepository.
func (r *alertRepository) MarkAllRead(ctx context.Context, companyID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE alerts SET is_read = true WHERE company_id = $1 AND is_read = false`,
		companyID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark all alerts read: %w", err)
	}

	return nil
}

// CountUnread implements alert.AlertRepository.
func (r *alertRepository) CountUnread(ctx context.Context, companyID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM alerts WHERE company_id = $1 AND is_read = false`,
		companyID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread alerts: %w", err)
	}

	return count, nil
}
