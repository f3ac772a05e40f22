package crew

import "errors"

// Crew domain errors
var (
	ErrCrewMemberNotFound = errors.New("crew member not found")
)
