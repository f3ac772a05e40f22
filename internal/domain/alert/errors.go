package alert

import "errors"

// Alert domain errors
var (
	ErrAlertNotFound = errors.New("alert not found")
)
