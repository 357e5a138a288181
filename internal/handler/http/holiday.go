package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tracklight/workhours-backend-go/internal/domain/holiday"
	"github.com/tracklight/workhours-backend-go/internal/handler/http/response"
	"github.com/tracklight/workhours-backend-go/internal/pkg/timeutil"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByCalendar(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// HolidayHandlerImpl maintains holiday calendars. The operations are plain
// CRUD, so the handler sits directly on the repository.
type HolidayHandlerImpl struct {
	holidayRepo holiday.Repository
}

func NewHolidayHandler(holidayRepo holiday.Repository) HolidayHandler {
	return &HolidayHandlerImpl{holidayRepo: holidayRepo}
}

// Create implements HolidayHandler.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	date, _ := timeutil.ParseDate(req.Date)
	created, err := h.holidayRepo.Create(r.Context(), holiday.PublicHoliday{
		Date:       date,
		Name:       req.Name,
		CalendarID: req.CalendarID,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created successfully", holiday.NewHolidayResponse(created))
}

// ListByCalendar implements HolidayHandler.
func (h *HolidayHandlerImpl) ListByCalendar(w http.ResponseWriter, r *http.Request) {
	calendarID := chi.URLParam(r, "calendarID")
	if calendarID == "" {
		response.BadRequest(w, "Calendar ID is required", nil)
		return
	}

	holidays, err := h.holidayRepo.ListByCalendar(r.Context(), calendarID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, ph := range holidays {
		responses = append(responses, holiday.NewHolidayResponse(ph))
	}
	response.Success(w, responses)
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	if err := h.holidayRepo.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted successfully", nil)
}
