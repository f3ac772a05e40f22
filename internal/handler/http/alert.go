package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/crewfield/crewfield-backend-go/internal/domain/alert"
	"github.com/crewfield/crewfield-backend-go/internal/handler/http/middleware"
	"github.com/crewfield/crewfield-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AlertHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
	UnreadCount(w http.ResponseWriter, r *http.Request)
}

type alertHandlerImpl struct {
	alertService alert.AlertService
}

func NewAlertHandler(alertService alert.AlertService) AlertHandler {
	return &alertHandlerImpl{
		alertService: alertService,
	}
}

const defaultAlertLimit = 50

// List implements AlertHandler.
func (h *alertHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultAlertLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.BadRequest(w, "limit must be a positive integer", nil)
			return
		}
		limit = parsed
	}

	req := alert.ListAlertsRequest{
		CompanyID:  middleware.CompanyID(r),
		UnreadOnly: r.URL.Query().Get("unread_only") == "true",
		Limit:      limit,
	}

	result, err := h.alertService.ListAlerts(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MarkRead implements AlertHandler.
func (h *alertHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IsRead *bool `json:"is_read"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	isRead := true
	if body.IsRead != nil {
		isRead = *body.IsRead
	}

	result, err := h.alertService.MarkAlertRead(r.Context(), middleware.CompanyID(r), chi.URLParam(r, "id"), isRead)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Alert updated", result)
}

// MarkAllRead implements AlertHandler.
func (h *alertHandlerImpl) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.alertService.MarkAllAlertsRead(r.Context(), middleware.CompanyID(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All alerts marked read", nil)
}

// UnreadCount implements AlertHandler.
func (h *alertHandlerImpl) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.alertService.UnreadCount(r.Context(), middleware.CompanyID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int{"unread_count": count})
}
