package domain

import "errors"

// Domain errors.
var (
	ErrMissingVideoLink = errors.New("first row does not contain a youtube watch link")
	ErrMalformedRow     = errors.New("row has fewer than 3 columns")
	ErrInvalidDuration  = errors.New("duration is not in MM:SS format")
	ErrInvalidVersion   = errors.New("version must be in x.y.z format")
	ErrChannelConflict  = errors.New("--beta and --rc are mutually exclusive")
	ErrMissingAPIKey    = errors.New("REDMINE_KEY environment variable is not set")
	ErrQueryNotFound    = errors.New("saved query not found on the tracker")
	ErrNoIssues         = errors.New("query returned no issues")
)
