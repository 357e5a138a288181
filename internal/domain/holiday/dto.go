package holiday

import (
	"github.com/tracklight/workhours-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date       string `json:"date"`
	Name       string `json:"name"`
	CalendarID string `json:"calendar_id"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.CalendarID) {
		errs = append(errs, validator.ValidationError{
			Field:   "calendar_id",
			Message: "calendar_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Name       string `json:"name"`
	CalendarID string `json:"calendar_id"`
}

func NewHolidayResponse(h PublicHoliday) HolidayResponse {
	return HolidayResponse{
		ID:         h.ID,
		Date:       h.Date.Format("2006-01-02"),
		Name:       h.Name,
		CalendarID: h.CalendarID,
	}
}
