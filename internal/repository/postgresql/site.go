package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/crewfield/crewfield-backend-go/internal/domain/site"
	"github.com/crewfield/crewfield-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type siteRepository struct {
	db *database.DB
}

func NewSiteRepository(db *database.DB) site.SiteRepository {
	return &siteRepository{db: db}
}

const siteColumns = `id, company_id, name, address, latitude, longitude, geofence_radius,
	client_name, client_email, client_phone, budget_hours, service_frequency,
	notes, is_active, created_at, updated_at`

func scanSite(row pgx.Row) (site.Site, error) {
	var s site.Site
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.Address, &s.Latitude, &s.Longitude, &s.GeofenceRadius,
		&s.ClientName, &s.ClientEmail, &s.ClientPhone, &s.BudgetHours, &s.ServiceFrequency,
		&s.Notes, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements site.SiteRepository.
func (r *siteRepository) Create(ctx context.Context, s site.Site) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	query := `
		INSERT INTO sites (
			id, company_id, name, address, latitude, longitude, geofence_radius,
			client_name, client_email, client_phone, budget_hours, service_frequency,
			notes, is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.CompanyID, s.Name, s.Address, s.Latitude, s.Longitude, s.GeofenceRadius,
		s.ClientName, s.ClientEmail, s.ClientPhone, s.BudgetHours, s.ServiceFrequency,
		s.Notes, s.IsActive,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return site.Site{}, fmt.Errorf("failed to create site: %w", err)
	}

	return s, nil
}

// GetByID implements site.SiteRepository.
func (r *siteRepository) GetByID(ctx context.Context, id string, companyID string) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM sites WHERE id = $1 AND company_id = $2`, siteColumns)

	s, err := scanSite(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return site.Site{}, site.ErrSiteNotFound
		}
		return site.Site{}, fmt.Errorf("failed to get site: %w", err)
	}

	return s, nil
}

// List implements site.SiteRepository.
func (r *siteRepository) List(ctx context.Context, companyID string, activeOnly bool) ([]site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM sites WHERE company_id = $1`, siteColumns)
	if activeOnly {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	var sites []site.Site
	for rows.Next() {
		s, err := scanSite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, s)
	}

	return sites, rows.Err()
}

// Update implements site.SiteRepository.
func (r *siteRepository) Update(ctx context.Context, s site.Site) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sites
		SET name = $3, address = $4, latitude = $5, longitude = $6, geofence_radius = $7,
		    client_name = $8, client_email = $9, client_phone = $10, budget_hours = $11,
		    service_frequency = $12, notes = $13, is_active = $14, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.CompanyID, s.Name, s.Address, s.Latitude, s.Longitude, s.GeofenceRadius,
		s.ClientName, s.ClientEmail, s.ClientPhone, s.BudgetHours,
		s.ServiceFrequency, s.Notes, s.IsActive,
	).Scan(&s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return site.Site{}, site.ErrSiteNotFound
		}
		return site.Site{}, fmt.Errorf("failed to update site: %w", err)
	}

	return s, nil
}

// Deactivate implements site.SiteRepository.
func (r *siteRepository) Deactivate(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx,
		`UPDATE sites SET is_active = false, updated_at = NOW() WHERE id = $1 AND company_id = $2`,
		id, companyID,
	)
	if err != nil {
		return fmt.Errorf("failed to deactivate site: %w", err)
	}
	if result.RowsAffected() == 0 {
		return site.ErrSiteNotFound
	}

	return nil
}
