package timeoff

import "errors"

var (
	ErrRequestNotFound         = errors.New("time-off request not found")
	ErrRequestAlreadyProcessed = errors.New("time-off request already processed")
	ErrUnauthorized            = errors.New("unauthorized to access this time-off request")
)
