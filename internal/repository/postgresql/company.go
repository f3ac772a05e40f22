package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/crewfield/crewfield-backend-go/internal/domain/company"
	"github.com/crewfield/crewfield-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type companyRepository struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}

// GetByID implements company.CompanyRepository.
func (r *companyRepository) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, phone, email, address, geofence_radius, noshow_alert_minutes,
		       subscription_status, subscription_tier, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var c company.Company
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address,
		&c.GeofenceRadius, &c.NoShowAlertMinutes,
		&c.SubscriptionStatus, &c.SubscriptionTier,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}

	return c, nil
}

// Update implements company.CompanyRepository.
func (r *companyRepository) Update(ctx context.Context, c company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE companies
		SET name = $2, phone = $3, email = $4, address = $5,
		    geofence_radius = $6, noshow_alert_minutes = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		c.ID, c.Name, c.Phone, c.Email, c.Address,
		c.GeofenceRadius, c.NoShowAlertMinutes,
	).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to update company: %w", err)
	}

	return c, nil
}
