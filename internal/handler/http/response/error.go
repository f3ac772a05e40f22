package response

import (
	"errors"
	"net/http"

	"github.com/crewfield/crewfield-backend-go/internal/domain/alert"
	"github.com/crewfield/crewfield-backend-go/internal/domain/company"
	"github.com/crewfield/crewfield-backend-go/internal/domain/crew"
	"github.com/crewfield/crewfield-backend-go/internal/domain/schedule"
	"github.com/crewfield/crewfield-backend-go/internal/domain/site"
	"github.com/crewfield/crewfield-backend-go/internal/domain/timeentry"
	"github.com/crewfield/crewfield-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A conflict carries the offending schedule's window; surface it in the
	// message instead of a generic 409.
	var conflictErr *schedule.ConflictError
	if errors.As(err, &conflictErr) {
		Conflict(w, conflictErr.Error())
		return
	}

	switch {
	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrScheduleConflict):
		Conflict(w, "Crew member is already scheduled in that window")

	// Time tracking domain errors
	case errors.Is(err, timeentry.ErrTimeEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timeentry.ErrAlreadyClockedOut):
		Conflict(w, "Time entry is already clocked out")

	// Lookup errors
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Site not found")
	case errors.Is(err, crew.ErrCrewMemberNotFound):
		NotFound(w, "Crew member not found")
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, alert.ErrAlertNotFound):
		NotFound(w, "Alert not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
