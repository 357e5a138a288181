package workhours

import (
	"errors"
	"strings"

	"github.com/tracklight/workhours-backend-go/internal/pkg/timeutil"
	"github.com/tracklight/workhours-backend-go/internal/pkg/validator"
)

type CreateEntryRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// validateTimePair delegates to ValidateInterval and translates its
// sentinels into per-field errors, so interval validation has exactly one
// implementation.
func validateTimePair(errs validator.ValidationErrors, start, end string) validator.ValidationErrors {
	switch err := ValidateInterval(start, end); {
	case err == nil:
		return errs
	case errors.Is(err, ErrInvalidInterval):
		return append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	default:
		if !timeutil.IsValidClock(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be in HH:mm format",
			})
		}
		if !timeutil.IsValidClock(end) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be in HH:mm format",
			})
		}
		return errs
	}
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	errs = validateTimePair(errs, r.StartTime, r.EndTime)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEntryRequest struct {
	ID        string `json:"-"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	errs = validateTimePair(errs, r.StartTime, r.EndTime)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	ID        string             `json:"id"`
	Date      string             `json:"date"`
	StartTime string             `json:"start_time"`
	EndTime   string             `json:"end_time"`
	Duration  *timeutil.Duration `json:"duration"`
	CreatedAt string             `json:"created_at,omitempty"`
	UpdatedAt string             `json:"updated_at,omitempty"`
}

func NewEntryResponse(e Entry) EntryResponse {
	minutes, _ := timeutil.Interval(e.StartTime, e.EndTime)
	return EntryResponse{
		ID:        e.ID,
		Date:      timeutil.DateKey(e.Date),
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Duration:  timeutil.FromMinutes(minutes),
		CreatedAt: e.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: e.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

type ListEntriesFilter struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (f *ListEntriesFilter) Validate() error {
	var errs validator.ValidationErrors

	from, fromOK := validator.IsValidDate(f.From)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}
	to, toOK := validator.IsValidDate(f.To)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}
	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TemplateRequest struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type UpdateDefaultsRequest struct {
	Entries []TemplateRequest `json:"entries"`
}

func (r *UpdateDefaultsRequest) Validate() error {
	var errs validator.ValidationErrors

	for _, e := range r.Entries {
		errs = validateTimePair(errs, e.StartTime, e.EndTime)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DefaultEntryResponse struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// PrefillMode selects the scope of a prefill operation.
type PrefillMode string

const (
	PrefillModeDay  PrefillMode = "day"
	PrefillModeWeek PrefillMode = "week"
)

var PrefillModeValues = []string{
	string(PrefillModeDay),
	string(PrefillModeWeek),
}

type PrefillRequest struct {
	Mode string `json:"mode"`
	Date string `json:"date"`
}

func (r *PrefillRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Mode, PrefillModeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode must be one of: " + strings.Join(PrefillModeValues, ", "),
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
