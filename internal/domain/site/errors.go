package site

import "errors"

// Site domain errors
var (
	ErrSiteNotFound = errors.New("site not found")
)
