package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tracklight/workhours-backend-go/internal/domain/workconfig"
	"github.com/tracklight/workhours-backend-go/internal/pkg/database"
)

type workConfigRepositoryImpl struct {
	db *database.DB
}

func NewWorkConfigRepository(db *database.DB) workconfig.Repository {
	return &workConfigRepositoryImpl{db: db}
}

// GetRoleConfig implements workconfig.Repository.
func (r *workConfigRepositoryImpl) GetRoleConfig(ctx context.Context, role string) (workconfig.RoleConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT role, working_days, default_entries, weekly_working_hours,
			   weekly_overtime_hours_notice, weekly_overtime_hours_warning,
			   editable_period_unit, extra_days_before, extra_days_after,
			   public_holiday_calendar_id, can_prefill_day, can_prefill_week,
			   created_at, updated_at
		FROM role_configs
		WHERE role = $1
	`

	cfg, err := scanRoleConfig(q.QueryRow(ctx, query, role))
	if errors.Is(err, pgx.ErrNoRows) {
		return workconfig.RoleConfig{}, workconfig.ErrUnsupportedRole
	}
	if err != nil {
		return workconfig.RoleConfig{}, fmt.Errorf("failed to get role config: %w", err)
	}
	return cfg, nil
}

// ListRoleConfigs implements workconfig.Repository.
func (r *workConfigRepositoryImpl) ListRoleConfigs(ctx context.Context) ([]workconfig.RoleConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT role, working_days, default_entries, weekly_working_hours,
			   weekly_overtime_hours_notice, weekly_overtime_hours_warning,
			   editable_period_unit, extra_days_before, extra_days_after,
			   public_holiday_calendar_id, can_prefill_day, can_prefill_week,
			   created_at, updated_at
		FROM role_configs
		ORDER BY role
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list role configs: %w", err)
	}
	defer rows.Close()

	var configs []workconfig.RoleConfig
	for rows.Next() {
		cfg, err := scanRoleConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan role config: %w", err)
		}
		configs = append(configs, cfg)
	}
	return configs, rows.Err()
}

// UpsertRoleConfig implements workconfig.Repository.
func (r *workConfigRepositoryImpl) UpsertRoleConfig(ctx context.Context, cfg workconfig.RoleConfig) (workconfig.RoleConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO role_configs
			(role, working_days, default_entries, weekly_working_hours,
			 weekly_overtime_hours_notice, weekly_overtime_hours_warning,
			 editable_period_unit, extra_days_before, extra_days_after,
			 public_holiday_calendar_id, can_prefill_day, can_prefill_week,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		ON CONFLICT (role) DO UPDATE SET
			working_days = EXCLUDED.working_days,
			default_entries = EXCLUDED.default_entries,
			weekly_working_hours = EXCLUDED.weekly_working_hours,
			weekly_overtime_hours_notice = EXCLUDED.weekly_overtime_hours_notice,
			weekly_overtime_hours_warning = EXCLUDED.weekly_overtime_hours_warning,
			editable_period_unit = EXCLUDED.editable_period_unit,
			extra_days_before = EXCLUDED.extra_days_before,
			extra_days_after = EXCLUDED.extra_days_after,
			public_holiday_calendar_id = EXCLUDED.public_holiday_calendar_id,
			can_prefill_day = EXCLUDED.can_prefill_day,
			can_prefill_week = EXCLUDED.can_prefill_week,
			updated_at = NOW()
		RETURNING role, working_days, default_entries, weekly_working_hours,
			weekly_overtime_hours_notice, weekly_overtime_hours_warning,
			editable_period_unit, extra_days_before, extra_days_after,
			public_holiday_calendar_id, can_prefill_day, can_prefill_week,
			created_at, updated_at
	`

	row := q.QueryRow(ctx, query,
		cfg.Role, cfg.WorkingDays, cfg.DefaultEntries, cfg.WeeklyWorkingHours,
		cfg.WeeklyOvertimeHoursNotice, cfg.WeeklyOvertimeHoursWarning,
		cfg.EditablePeriod.Unit, cfg.EditablePeriod.ExtraDaysBefore, cfg.EditablePeriod.ExtraDaysAfter,
		cfg.PublicHolidayCalendarID, cfg.CanPrefillDay, cfg.CanPrefillWeek,
	)
	saved, err := scanRoleConfig(row)
	if err != nil {
		return workconfig.RoleConfig{}, fmt.Errorf("failed to upsert role config: %w", err)
	}
	return saved, nil
}

// GetUserOverride implements workconfig.Repository.
func (r *workConfigRepositoryImpl) GetUserOverride(ctx context.Context, userID string) (*workconfig.UserConfigOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, weekly_working_hours, working_days, created_at, updated_at
		FROM user_config_overrides
		WHERE user_id = $1
	`

	var ov workconfig.UserConfigOverride
	err := q.QueryRow(ctx, query, userID).Scan(
		&ov.UserID, &ov.WeeklyWorkingHours, &ov.WorkingDays, &ov.CreatedAt, &ov.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, workconfig.ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user override: %w", err)
	}
	return &ov, nil
}

// UpsertUserOverride implements workconfig.Repository.
func (r *workConfigRepositoryImpl) UpsertUserOverride(ctx context.Context, ov workconfig.UserConfigOverride) (workconfig.UserConfigOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_config_overrides (user_id, weekly_working_hours, working_days, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			weekly_working_hours = EXCLUDED.weekly_working_hours,
			working_days = EXCLUDED.working_days,
			updated_at = NOW()
		RETURNING user_id, weekly_working_hours, working_days, created_at, updated_at
	`

	var saved workconfig.UserConfigOverride
	err := q.QueryRow(ctx, query, ov.UserID, ov.WeeklyWorkingHours, ov.WorkingDays).Scan(
		&saved.UserID, &saved.WeeklyWorkingHours, &saved.WorkingDays, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return workconfig.UserConfigOverride{}, fmt.Errorf("failed to upsert user override: %w", err)
	}
	return saved, nil
}

func scanRoleConfig(row pgx.Row) (workconfig.RoleConfig, error) {
	var cfg workconfig.RoleConfig
	err := row.Scan(
		&cfg.Role, &cfg.WorkingDays, &cfg.DefaultEntries, &cfg.WeeklyWorkingHours,
		&cfg.WeeklyOvertimeHoursNotice, &cfg.WeeklyOvertimeHoursWarning,
		&cfg.EditablePeriod.Unit, &cfg.EditablePeriod.ExtraDaysBefore, &cfg.EditablePeriod.ExtraDaysAfter,
		&cfg.PublicHolidayCalendarID, &cfg.CanPrefillDay, &cfg.CanPrefillWeek,
		&cfg.CreatedAt, &cfg.UpdatedAt,
	)
	return cfg, err
}
