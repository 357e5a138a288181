package workhours

import "errors"

// Working-hours domain errors
var (
	// Entry validation errors
	ErrInvalidTimeFormat = errors.New("start and end times must be in HH:mm format")
	ErrInvalidInterval   = errors.New("end time must be strictly after start time")
	ErrOverlapConflict   = errors.New("entries for the same day must not overlap")

	// General errors
	ErrEntryNotFound     = errors.New("working hours entry not found")
	ErrDateNotEditable   = errors.New("date is outside the editable period")
	ErrPrefillNotAllowed = errors.New("prefill is not enabled for this role")
	ErrUnauthorized      = errors.New("unauthorized to access this entry")
)
