package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tracklight/workhours-backend-go/internal/domain/workhours"
	"github.com/tracklight/workhours-backend-go/internal/handler/http/response"
)

type WorkHoursHandler interface {
	CreateEntry(w http.ResponseWriter, r *http.Request)
	UpdateEntry(w http.ResponseWriter, r *http.Request)
	DeleteEntry(w http.ResponseWriter, r *http.Request)
	ListMyEntries(w http.ResponseWriter, r *http.Request)

	GetMyDefaults(w http.ResponseWriter, r *http.Request)
	UpdateMyDefaults(w http.ResponseWriter, r *http.Request)
	Prefill(w http.ResponseWriter, r *http.Request)
}

type WorkHoursHandlerImpl struct {
	entryService workhours.Service
}

func NewWorkHoursHandler(entryService workhours.Service) WorkHoursHandler {
	return &WorkHoursHandlerImpl{entryService: entryService}
}

// CreateEntry implements WorkHoursHandler.
func (h *WorkHoursHandlerImpl) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req workhours.CreateEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entry, err := h.entryService.CreateEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Entry created successfully", entry)
}

// UpdateEntry implements WorkHoursHandler.
func (h *WorkHoursHandlerImpl) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	var req workhours.UpdateEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	entry, err := h.entryService.UpdateEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Entry updated successfully", entry)
}

// DeleteEntry implements WorkHoursHandler.
func (h *WorkHoursHandlerImpl) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Entry ID is required", nil)
		return
	}

	if err := h.entryService.DeleteEntry(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Entry deleted successfully", nil)
}

// ListMyEntries implements WorkHoursHandler.
func (h *WorkHoursHandlerImpl) ListMyEntries(w http.ResponseWriter, r *http.Request) {
	filter := workhours.ListEntriesFilter{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	entries, err := h.entryService.ListMyEntries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// GetMyDefaults implements WorkHoursHandler.
func (h *WorkHoursHandlerImpl) GetMyDefaults(w http.ResponseWriter, r *http.Request) {
	defaults, err := h.entryService.GetMyDefaults(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, defaults)
}

// UpdateMyDefaults implements WorkHoursHandler.
func (h *WorkHoursHandlerImpl) UpdateMyDefaults(w http.ResponseWriter, r *http.Request) {
	var req workhours.UpdateDefaultsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateMyDefaults decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	defaults, err := h.entryService.UpdateMyDefaults(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Default entries updated successfully", defaults)
}

// Prefill implements WorkHoursHandler.
func (h *WorkHoursHandlerImpl) Prefill(w http.ResponseWriter, r *http.Request) {
	var req workhours.PrefillRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Prefill decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entries, err := h.entryService.Prefill(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Entries prefilled successfully", entries)
}
