package fixtures

import (
	"github.com/tracklight/workhours-backend-go/internal/domain/workconfig"
)

func strPtr(s string) *string { return &s }

// DefaultRoleConfigs returns the role policies seeded into a fresh
// development database. Production deployments manage these through the
// config endpoints instead.
func DefaultRoleConfigs() []workconfig.RoleConfig {
	standardWeek := []int{1, 2, 3, 4, 5}
	standardEntries := []workconfig.TemplateEntry{
		{StartTime: "09:00", EndTime: "13:00"},
		{StartTime: "14:00", EndTime: "18:00"},
	}

	return []workconfig.RoleConfig{
		{
			Role:                       "employee",
			WorkingDays:                standardWeek,
			DefaultEntries:             standardEntries,
			WeeklyWorkingHours:         40,
			WeeklyOvertimeHoursNotice:  2,
			WeeklyOvertimeHoursWarning: 6,
			EditablePeriod: workconfig.EditablePeriodRule{
				Unit:            workconfig.PeriodISOWeek,
				ExtraDaysBefore: 2,
				ExtraDaysAfter:  1,
			},
			PublicHolidayCalendarID: strPtr("default"),
			CanPrefillDay:           true,
			CanPrefillWeek:          true,
		},
		{
			Role:        "manager",
			WorkingDays: standardWeek,
			DefaultEntries: []workconfig.TemplateEntry{
				{StartTime: "09:00", EndTime: "17:00"},
			},
			WeeklyWorkingHours:         40,
			WeeklyOvertimeHoursNotice:  4,
			WeeklyOvertimeHoursWarning: 10,
			EditablePeriod: workconfig.EditablePeriodRule{
				Unit:            workconfig.PeriodMonth,
				ExtraDaysBefore: 3,
				ExtraDaysAfter:  3,
			},
			PublicHolidayCalendarID: strPtr("default"),
			CanPrefillDay:           true,
			CanPrefillWeek:          true,
		},
		{
			Role:                       "contractor",
			WorkingDays:                standardWeek,
			DefaultEntries:             nil,
			WeeklyWorkingHours:         40,
			WeeklyOvertimeHoursNotice:  0,
			WeeklyOvertimeHoursWarning: 0,
			EditablePeriod: workconfig.EditablePeriodRule{
				Unit: workconfig.PeriodDay,
			},
			CanPrefillDay:  false,
			CanPrefillWeek: false,
		},
	}
}
