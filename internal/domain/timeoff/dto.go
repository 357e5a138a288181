package timeoff

import (
	"strings"

	"github.com/tracklight/workhours-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Unit        string             `json:"unit"`
	UnitsPerDay map[string]float64 `json:"units_per_day"`
	Reason      *string            `json:"reason,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Unit, UnitValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "unit",
			Message: "unit must be one of: " + strings.Join(UnitValues, ", "),
		})
	}
	if len(r.UnitsPerDay) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "units_per_day",
			Message: "units_per_day must cover at least one date",
		})
	}
	for date, units := range r.UnitsPerDay {
		if _, ok := validator.IsValidDate(date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "units_per_day",
				Message: "dates must be in YYYY-MM-DD format",
			})
			break
		}
		if units <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "units_per_day",
				Message: "units must be positive",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestResponse struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user_id"`
	Unit        string             `json:"unit"`
	UnitsPerDay map[string]float64 `json:"units_per_day"`
	Dates       []string           `json:"dates"`
	Reason      *string            `json:"reason,omitempty"`
	Status      string             `json:"status"`
	CreatedAt   string             `json:"created_at,omitempty"`
}

func NewRequestResponse(r Request) RequestResponse {
	return RequestResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		Unit:        string(r.Unit),
		UnitsPerDay: r.UnitsPerDay,
		Dates:       r.Dates(),
		Reason:      r.Reason,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
