package http

import (
	"net/http"

	"github.com/crewfield/crewfield-backend-go/internal/domain/report"
	"github.com/crewfield/crewfield-backend-go/internal/handler/http/middleware"
	"github.com/crewfield/crewfield-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	LaborReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// LaborReport implements ReportHandler.
func (h *reportHandlerImpl) LaborReport(w http.ResponseWriter, r *http.Request) {
	req := report.LaborReportRequest{
		CompanyID: middleware.CompanyID(r),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.reportService.LaborReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
