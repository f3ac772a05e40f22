package http

import (
	"encoding/json"
	"net/http"

	"github.com/crewfield/crewfield-backend-go/internal/domain/crew"
	"github.com/crewfield/crewfield-backend-go/internal/handler/http/middleware"
	"github.com/crewfield/crewfield-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CrewHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type crewHandlerImpl struct {
	crewService crew.CrewService
}

func NewCrewHandler(crewService crew.CrewService) CrewHandler {
	return &crewHandlerImpl{
		crewService: crewService,
	}
}

// Create implements CrewHandler.
func (h *crewHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req crew.CreateCrewMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CompanyID = middleware.CompanyID(r)

	result, err := h.crewService.CreateCrewMember(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Crew member created", result)
}

// Get implements CrewHandler.
func (h *crewHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.crewService.GetCrewMember(r.Context(), middleware.CompanyID(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements CrewHandler.
func (h *crewHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("include_inactive") != "true"

	result, err := h.crewService.ListCrewMembers(r.Context(), middleware.CompanyID(r), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements CrewHandler.
func (h *crewHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req crew.UpdateCrewMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.CompanyID = middleware.CompanyID(r)

	result, err := h.crewService.UpdateCrewMember(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Crew member updated", result)
}

// Deactivate implements CrewHandler.
func (h *crewHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	err := h.crewService.DeactivateCrewMember(r.Context(), middleware.CompanyID(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Crew member deactivated", nil)
}
