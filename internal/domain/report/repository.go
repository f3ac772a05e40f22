package report

import "context"

// ReportRepository aggregates closed time entries. Only entries with a
// recorded total_hours participate; open sessions are invisible to reports.
type ReportRepository interface {
	HoursBySite(ctx context.Context, companyID string, startDate, endDate string) ([]SiteHours, error)
	HoursByCrew(ctx context.Context, companyID string, startDate, endDate string) ([]CrewHours, error)
}
