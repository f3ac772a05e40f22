package report

import (
	"context"
	"fmt"

	"github.com/crewfield/crewfield-backend-go/internal/domain/report"
	"github.com/crewfield/crewfield-backend-go/internal/pkg/validator"
)

type ReportServiceImpl struct {
	report.ReportRepository
}

func NewReportService(reportRepo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository: reportRepo,
	}
}

// LaborReport implements report.ReportService.
func (s *ReportServiceImpl) LaborReport(ctx context.Context, req report.LaborReportRequest) (report.LaborReportResponse, error) {
	var errs validator.ValidationErrors
	start, startOK := validator.IsValidDate(req.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(req.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}
	if len(errs) > 0 {
		return report.LaborReportResponse{}, errs
	}

	bySite, err := s.ReportRepository.HoursBySite(ctx, req.CompanyID, req.StartDate, req.EndDate)
	if err != nil {
		return report.LaborReportResponse{}, fmt.Errorf("failed to build site report: %w", err)
	}

	byCrew, err := s.ReportRepository.HoursByCrew(ctx, req.CompanyID, req.StartDate, req.EndDate)
	if err != nil {
		return report.LaborReportResponse{}, fmt.Errorf("failed to build crew report: %w", err)
	}

	return report.LaborReportResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		BySite:    bySite,
		ByCrew:    byCrew,
	}, nil
}
