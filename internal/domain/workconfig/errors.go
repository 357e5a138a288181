package workconfig

import "errors"

var (
	// ErrUnsupportedRole means an operation referenced a role that is absent
	// from the configuration map. Surfaced to the caller, never silently
	// defaulted.
	ErrUnsupportedRole = errors.New("role is not present in the working hours configuration")

	ErrOverrideNotFound = errors.New("user configuration override not found")
)
