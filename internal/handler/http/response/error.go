package response

import (
	"errors"
	"net/http"

	"github.com/tracklight/workhours-backend-go/internal/domain/holiday"
	"github.com/tracklight/workhours-backend-go/internal/domain/timeoff"
	"github.com/tracklight/workhours-backend-go/internal/domain/workconfig"
	"github.com/tracklight/workhours-backend-go/internal/domain/workhours"
	"github.com/tracklight/workhours-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Working hours domain errors
	switch {
	case errors.Is(err, workhours.ErrInvalidTimeFormat):
		ValidationError(w, map[string]string{"time": err.Error()})
	case errors.Is(err, workhours.ErrInvalidInterval):
		ValidationError(w, map[string]string{"end_time": err.Error()})
	case errors.Is(err, workhours.ErrOverlapConflict):
		Conflict(w, err.Error())
	case errors.Is(err, workhours.ErrEntryNotFound):
		NotFound(w, "Working hours entry not found")
	case errors.Is(err, workhours.ErrDateNotEditable):
		Forbidden(w, err.Error())
	case errors.Is(err, workhours.ErrPrefillNotAllowed):
		Forbidden(w, err.Error())
	case errors.Is(err, workhours.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this entry")

	// Time-off domain errors
	case errors.Is(err, timeoff.ErrRequestNotFound):
		NotFound(w, "Time-off request not found")
	case errors.Is(err, timeoff.ErrRequestAlreadyProcessed):
		Conflict(w, "Time-off request already processed")
	case errors.Is(err, timeoff.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this time-off request")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Public holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday already exists for this date and calendar")

	// Configuration domain errors
	case errors.Is(err, workconfig.ErrUnsupportedRole):
		NotFound(w, "No working hours configuration for this role")
	case errors.Is(err, workconfig.ErrOverrideNotFound):
		NotFound(w, "User configuration override not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
