package http

import (
	"encoding/json"
	"net/http"

	"github.com/crewfield/crewfield-backend-go/internal/domain/timeentry"
	"github.com/crewfield/crewfield-backend-go/internal/handler/http/middleware"
	"github.com/crewfield/crewfield-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimeEntryHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetMyTimeEntries(w http.ResponseWriter, r *http.Request)
}

type timeEntryHandlerImpl struct {
	timeTrackingService timeentry.TimeTrackingService
}

func NewTimeEntryHandler(timeTrackingService timeentry.TimeTrackingService) TimeEntryHandler {
	return &timeEntryHandlerImpl{
		timeTrackingService: timeTrackingService,
	}
}

// ClockIn implements TimeEntryHandler. The caller's identity comes from the
// token, never the body: a crew member can only clock themselves in.
func (h *timeEntryHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req timeentry.ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CompanyID = middleware.CompanyID(r)
	req.CrewMemberID = middleware.CrewMemberID(r)

	result, err := h.timeTrackingService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock in successful", result)
}

// ClockOut implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req timeentry.ClockOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CompanyID = middleware.CompanyID(r)
	req.CrewMemberID = middleware.CrewMemberID(r)
	req.TimeEntryID = chi.URLParam(r, "id")

	result, err := h.timeTrackingService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock out successful", result)
}

// List implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := timeentry.ListTimeEntriesRequest{
		CompanyID: middleware.CompanyID(r),
		Filter: timeentry.TimeEntryFilter{
			CrewMemberID: queryParam(r, "crew_member_id"),
			SiteID:       queryParam(r, "site_id"),
			StartDate:    queryParam(r, "start_date"),
			EndDate:      queryParam(r, "end_date"),
		},
	}

	result, err := h.timeTrackingService.ListTimeEntries(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyTimeEntries implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) GetMyTimeEntries(w http.ResponseWriter, r *http.Request) {
	crewMemberID := middleware.CrewMemberID(r)
	if crewMemberID == "" {
		response.Forbidden(w, "Access token is not linked to a crew member")
		return
	}

	filter := timeentry.TimeEntryFilter{
		SiteID:    queryParam(r, "site_id"),
		StartDate: queryParam(r, "start_date"),
		EndDate:   queryParam(r, "end_date"),
	}

	result, err := h.timeTrackingService.GetMyTimeEntries(r.Context(), middleware.CompanyID(r), crewMemberID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
