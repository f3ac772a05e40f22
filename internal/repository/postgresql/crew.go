package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/crewfield/crewfield-backend-go/internal/domain/crew"
	"github.com/crewfield/crewfield-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type crewRepository struct {
	db *database.DB
}

func NewCrewRepository(db *database.DB) crew.CrewRepository {
	return &crewRepository{db: db}
}

const crewColumns = `id, company_id, user_id, name, phone, email, language,
	hourly_rate, is_active, created_at, updated_at`

func scanCrewMember(row pgx.Row) (crew.CrewMember, error) {
	var m crew.CrewMember
	err := row.Scan(
		&m.ID, &m.CompanyID, &m.UserID, &m.Name, &m.Phone, &m.Email, &m.Language,
		&m.HourlyRate, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

// Create implements crew.CrewRepository.
func (r *crewRepository) Create(ctx context.Context, m crew.CrewMember) (crew.CrewMember, error) {
	q := GetQuerier(ctx, r.db)

	if m.ID == "" {
		m.ID = uuid.New().String()
	}

	query := `
		INSERT INTO crew_members (
			id, company_id, user_id, name, phone, email, language, hourly_rate, is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		m.ID, m.CompanyID, m.UserID, m.Name, m.Phone, m.Email, m.Language, m.HourlyRate, m.IsActive,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return crew.CrewMember{}, fmt.Errorf("failed to create crew member: %w", err)
	}

	return m, nil
}

// GetByID implements crew.CrewRepository.
func (r *crewRepository) GetByID(ctx context.Context, id string, companyID string) (crew.CrewMember, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM crew_members WHERE id = $1 AND company_id = $2`, crewColumns)

	m, err := scanCrewMember(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return crew.CrewMember{}, crew.ErrCrewMemberNotFound
		}
		return crew.CrewMember{}, fmt.Errorf("failed to get crew member: %w", err)
	}

	return m, nil
}

// List implements crew.CrewRepository.
func (r *crewRepository) List(ctx context.Context, companyID string, activeOnly bool) ([]crew.CrewMember, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM crew_members WHERE company_id = $1`, crewColumns)
	if activeOnly {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list crew members: %w", err)
	}
	defer rows.Close()

	var members []crew.CrewMember
	for rows.Next() {
		m, err := scanCrewMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan crew member: %w", err)
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

// Update implements crew.CrewRepository.
func (r *crewRepository) Update(ctx context.Context, m crew.CrewMember) (crew.CrewMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE crew_members
		SET name = $3, phone = $4, email = $5, language = $6, hourly_rate = $7,
		    is_active = $8, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		m.ID, m.CompanyID, m.Name, m.Phone, m.Email, m.Language, m.HourlyRate, m.IsActive,
	).Scan(&m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return crew.CrewMember{}, crew.ErrCrewMemberNotFound
		}
		return crew.CrewMember{}, fmt.Errorf("failed to update crew member: %w", err)
	}

	return m, nil
}

// Deactivate implements crew.CrewRepository.
func (r *crewRepository) Deactivate(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx,
		`UPDATE crew_members SET is_active = false, updated_at = NOW() WHERE id = $1 AND company_id = $2`,
		id, companyID,
	)
	if err != nil {
		return fmt.Errorf("failed to deactivate crew member: %w", err)
	}
	if result.RowsAffected() == 0 {
		return crew.ErrCrewMemberNotFound
	}

	return nil
}
