package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tracklight/workhours-backend-go/internal/domain/timeoff"
	"github.com/tracklight/workhours-backend-go/internal/handler/http/response"
)

type TimeOffHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type TimeOffHandlerImpl struct {
	timeOffService timeoff.Service
}

func NewTimeOffHandler(timeOffService timeoff.Service) TimeOffHandler {
	return &TimeOffHandlerImpl{timeOffService: timeOffService}
}

// Submit implements TimeOffHandler.
func (h *TimeOffHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req timeoff.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	request, err := h.timeOffService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time-off request submitted successfully", request)
}

// ListMy implements TimeOffHandler.
func (h *TimeOffHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	requests, err := h.timeOffService.ListMy(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Approve implements TimeOffHandler.
func (h *TimeOffHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	request, err := h.timeOffService.Approve(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time-off request approved successfully", request)
}

// Reject implements TimeOffHandler.
func (h *TimeOffHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req timeoff.RejectRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	request, err := h.timeOffService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time-off request rejected successfully", request)
}
