package report

import "context"

type ReportService interface {
	LaborReport(ctx context.Context, req LaborReportRequest) (LaborReportResponse, error)
}
