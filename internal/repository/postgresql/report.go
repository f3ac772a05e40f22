package postgresql

import (
	"context"
	"fmt"

	"github.com/crewfield/crewfield-backend-go/internal/domain/report"
	"github.com/crewfield/crewfield-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// HoursBySite implements report.ReportRepository.
func (r *reportRepository) HoursBySite(ctx context.Context, companyID string, startDate, endDate string) ([]report.SiteHours, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT st.id, st.name, COALESCE(SUM(te.total_hours), 0), COUNT(te.id), st.budget_hours
		FROM time_entries te
		JOIN sites st ON st.id = te.site_id
		WHERE te.company_id = $1
		  AND te.total_hours IS NOT NULL
		  AND te.clock_in >= $2::date
		  AND te.clock_in < $3::date + INTERVAL '1 day'
		GROUP BY st.id, st.name, st.budget_hours
		ORDER BY st.name
	`

	rows, err := q.Query(ctx, query, companyID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate hours by site: %w", err)
	}
	defer rows.Close()

	var result []report.SiteHours
	for rows.Next() {
		var sh report.SiteHours
		if err := rows.Scan(&sh.SiteID, &sh.SiteName, &sh.TotalHours, &sh.EntryCount, &sh.BudgetHours); err != nil {
			return nil, fmt.Errorf("failed to scan site hours: %w", err)
		}
		result = append(result, sh)
	}

	return result, rows.Err()
}

// HoursByCrew implements report.ReportRepository.
func (r *reportRepository) HoursByCrew(ctx context.Context, companyID string, startDate, endDate string) ([]report.CrewHours, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT cm.id, cm.name, COALESCE(SUM(te.total_hours), 0), COUNT(te.id)
		FROM time_entries te
		JOIN crew_members cm ON cm.id = te.crew_member_id
		WHERE te.company_id = $1
		  AND te.total_hours IS NOT NULL
		  AND te.clock_in >= $2::date
		  AND te.clock_in < $3::date + INTERVAL '1 day'
		GROUP BY cm.id, cm.name
		ORDER BY cm.name
	`

	rows, err := q.Query(ctx, query, companyID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate hours by crew member: %w", err)
	}
	defer rows.Close()

	var result []report.CrewHours
	for rows.Next() {
		var ch report.CrewHours
		if err := rows.Scan(&ch.CrewMemberID, &ch.CrewMemberName, &ch.TotalHours, &ch.EntryCount); err != nil {
			return nil, fmt.Errorf("failed to scan crew hours: %w", err)
		}
		result = append(result, ch)
	}

	return result, rows.Err()
}
