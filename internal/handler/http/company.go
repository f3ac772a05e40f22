package http

import (
	"encoding/json"
	"net/http"

	"github.com/crewfield/crewfield-backend-go/internal/domain/company"
	"github.com/crewfield/crewfield-backend-go/internal/handler/http/middleware"
	"github.com/crewfield/crewfield-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type companyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &companyHandlerImpl{
		companyService: companyService,
	}
}

// Get implements CompanyHandler.
func (h *companyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.companyService.GetCompany(r.Context(), middleware.CompanyID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements CompanyHandler.
func (h *companyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req company.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CompanyID = middleware.CompanyID(r)

	result, err := h.companyService.UpdateCompany(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company settings updated", result)
}
