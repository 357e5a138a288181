package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tracklight/workhours-backend-go/internal/domain/workconfig"
	"github.com/tracklight/workhours-backend-go/internal/handler/http/response"
	"github.com/tracklight/workhours-backend-go/internal/pkg/jwt"
	"github.com/tracklight/workhours-backend-go/internal/pkg/timeutil"
)

type WorkConfigHandler interface {
	GetMyConfig(w http.ResponseWriter, r *http.Request)

	ListRoleConfigs(w http.ResponseWriter, r *http.Request)
	UpsertRoleConfig(w http.ResponseWriter, r *http.Request)
	UpsertUserOverride(w http.ResponseWriter, r *http.Request)
}

type WorkConfigHandlerImpl struct {
	configRepo     workconfig.Repository
	configResolver workconfig.Resolver
}

func NewWorkConfigHandler(configRepo workconfig.Repository, configResolver workconfig.Resolver) WorkConfigHandler {
	return &WorkConfigHandlerImpl{
		configRepo:     configRepo,
		configResolver: configResolver,
	}
}

// GetMyConfig implements WorkConfigHandler. Returns the caller's effective
// policy with the editable window resolved for today. A role without a
// config yields 404 rather than an empty policy.
func (h *WorkConfigHandlerImpl) GetMyConfig(w http.ResponseWriter, r *http.Request) {
	userID, role, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	cfg, err := h.configResolver.ResolveForUser(r.Context(), role, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if cfg == nil {
		response.HandleError(w, workconfig.ErrUnsupportedRole)
		return
	}

	resp := workconfig.MergedConfigResponse{
		Role:                       cfg.Role,
		WorkingDays:                cfg.WorkingDays,
		DefaultEntries:             cfg.DefaultEntries,
		WeeklyWorkingHours:         cfg.WeeklyWorkingHours,
		WeeklyOvertimeHoursNotice:  cfg.WeeklyOvertimeHoursNotice,
		WeeklyOvertimeHoursWarning: cfg.WeeklyOvertimeHoursWarning,
		EditablePeriod:             cfg.EditablePeriod,
		PublicHolidayCalendarID:    cfg.PublicHolidayCalendarID,
		CanPrefillDay:              cfg.CanPrefillDay,
		CanPrefillWeek:             cfg.CanPrefillWeek,
	}
	if start, end, ok := workconfig.EditablePeriod(cfg, timeutil.Midnight(time.Now())); ok {
		resp.EditableFrom = timeutil.DateKey(start)
		resp.EditableTo = timeutil.DateKey(end)
	}

	response.Success(w, resp)
}

// ListRoleConfigs implements WorkConfigHandler.
func (h *WorkConfigHandlerImpl) ListRoleConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := h.configRepo.ListRoleConfigs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]workconfig.RoleConfigResponse, 0, len(configs))
	for _, cfg := range configs {
		responses = append(responses, workconfig.NewRoleConfigResponse(cfg))
	}
	response.Success(w, responses)
}

// UpsertRoleConfig implements WorkConfigHandler.
func (h *WorkConfigHandlerImpl) UpsertRoleConfig(w http.ResponseWriter, r *http.Request) {
	var req workconfig.RoleConfigRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertRoleConfig decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	saved, err := h.configRepo.UpsertRoleConfig(r.Context(), req.ToRoleConfig())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role config saved successfully", workconfig.NewRoleConfigResponse(saved))
}

// UpsertUserOverride implements WorkConfigHandler.
func (h *WorkConfigHandlerImpl) UpsertUserOverride(w http.ResponseWriter, r *http.Request) {
	var req workconfig.UserOverrideRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertUserOverride decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = chi.URLParam(r, "userID")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	saved, err := h.configRepo.UpsertUserOverride(r.Context(), workconfig.UserConfigOverride{
		UserID:             req.UserID,
		WeeklyWorkingHours: req.WeeklyWorkingHours,
		WorkingDays:        req.WorkingDays,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User override saved successfully", saved)
}
