package workconfig

import (
	"strings"

	"github.com/tracklight/workhours-backend-go/internal/pkg/timeutil"
	"github.com/tracklight/workhours-backend-go/internal/pkg/validator"
)

var allWeekdays = []int{0, 1, 2, 3, 4, 5, 6}

type RoleConfigRequest struct {
	Role                       string             `json:"role"`
	WorkingDays                []int              `json:"working_days"`
	DefaultEntries             []TemplateEntry    `json:"default_entries"`
	WeeklyWorkingHours         float64            `json:"weekly_working_hours"`
	WeeklyOvertimeHoursNotice  float64            `json:"weekly_overtime_hours_notice"`
	WeeklyOvertimeHoursWarning float64            `json:"weekly_overtime_hours_warning"`
	EditablePeriod             EditablePeriodRule `json:"editable_period"`
	PublicHolidayCalendarID    *string            `json:"public_holiday_calendar_id,omitempty"`
	CanPrefillDay              bool               `json:"can_prefill_day"`
	CanPrefillWeek             bool               `json:"can_prefill_week"`
}

func (r *RoleConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}
	if len(r.WorkingDays) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "working_days",
			Message: "working_days must not be empty",
		})
	}
	for _, d := range r.WorkingDays {
		if !validator.IsInIntSlice(d, allWeekdays) {
			errs = append(errs, validator.ValidationError{
				Field:   "working_days",
				Message: "working_days entries must be weekday numbers 0 through 6",
			})
			break
		}
	}
	if r.WeeklyWorkingHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "weekly_working_hours",
			Message: "weekly_working_hours must be positive",
		})
	}
	if r.WeeklyOvertimeHoursNotice < 0 || r.WeeklyOvertimeHoursWarning < r.WeeklyOvertimeHoursNotice {
		errs = append(errs, validator.ValidationError{
			Field:   "weekly_overtime_hours_warning",
			Message: "overtime thresholds must be non-negative and warning must not be below notice",
		})
	}
	if !validator.IsInSlice(string(r.EditablePeriod.Unit), PeriodUnitValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "editable_period.unit",
			Message: "unit must be one of: " + strings.Join(PeriodUnitValues, ", "),
		})
	}
	if r.EditablePeriod.ExtraDaysBefore < 0 || r.EditablePeriod.ExtraDaysAfter < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "editable_period",
			Message: "extra edge days must not be negative",
		})
	}
	for _, e := range r.DefaultEntries {
		if !timeutil.IsValidClock(e.StartTime) || !timeutil.IsValidClock(e.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "default_entries",
				Message: "template times must be in HH:mm format",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToRoleConfig converts the request to the persistence shape.
func (r *RoleConfigRequest) ToRoleConfig() RoleConfig {
	return RoleConfig{
		Role:                       r.Role,
		WorkingDays:                r.WorkingDays,
		DefaultEntries:             r.DefaultEntries,
		WeeklyWorkingHours:         r.WeeklyWorkingHours,
		WeeklyOvertimeHoursNotice:  r.WeeklyOvertimeHoursNotice,
		WeeklyOvertimeHoursWarning: r.WeeklyOvertimeHoursWarning,
		EditablePeriod:             r.EditablePeriod,
		PublicHolidayCalendarID:    r.PublicHolidayCalendarID,
		CanPrefillDay:              r.CanPrefillDay,
		CanPrefillWeek:             r.CanPrefillWeek,
	}
}

type RoleConfigResponse struct {
	Role                       string             `json:"role"`
	WorkingDays                []int              `json:"working_days"`
	DefaultEntries             []TemplateEntry    `json:"default_entries"`
	WeeklyWorkingHours         float64            `json:"weekly_working_hours"`
	WeeklyOvertimeHoursNotice  float64            `json:"weekly_overtime_hours_notice"`
	WeeklyOvertimeHoursWarning float64            `json:"weekly_overtime_hours_warning"`
	EditablePeriod             EditablePeriodRule `json:"editable_period"`
	PublicHolidayCalendarID    *string            `json:"public_holiday_calendar_id,omitempty"`
	CanPrefillDay              bool               `json:"can_prefill_day"`
	CanPrefillWeek             bool               `json:"can_prefill_week"`
}

func NewRoleConfigResponse(cfg RoleConfig) RoleConfigResponse {
	return RoleConfigResponse{
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
}

type UserOverrideRequest struct {
	UserID             string   `json:"-"`
	WeeklyWorkingHours *float64 `json:"weekly_working_hours,omitempty"`
	WorkingDays        []int    `json:"working_days,omitempty"`
}

func (r *UserOverrideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if r.WeeklyWorkingHours != nil && *r.WeeklyWorkingHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "weekly_working_hours",
			Message: "weekly_working_hours must be positive",
		})
	}
	for _, d := range r.WorkingDays {
		if !validator.IsInIntSlice(d, allWeekdays) {
			errs = append(errs, validator.ValidationError{
				Field:   "working_days",
				Message: "working_days entries must be weekday numbers 0 through 6",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MergedConfigResponse is the effective policy for one user, including the
// concrete editable window resolved for today.
type MergedConfigResponse struct {
	Role                       string             `json:"role"`
	WorkingDays                []int              `json:"working_days"`
	DefaultEntries             []TemplateEntry    `json:"default_entries"`
	WeeklyWorkingHours         float64            `json:"weekly_working_hours"`
	WeeklyOvertimeHoursNotice  float64            `json:"weekly_overtime_hours_notice"`
	WeeklyOvertimeHoursWarning float64            `json:"weekly_overtime_hours_warning"`
	EditablePeriod             EditablePeriodRule `json:"editable_period"`
	EditableFrom               string             `json:"editable_from"`
	EditableTo                 string             `json:"editable_to"`
	PublicHolidayCalendarID    *string            `json:"public_holiday_calendar_id,omitempty"`
	CanPrefillDay              bool               `json:"can_prefill_day"`
	CanPrefillWeek             bool               `json:"can_prefill_week"`
}
