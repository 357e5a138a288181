package workconfig

import "context"

// Repository defines data access for role configs and per-user overrides.
type Repository interface {
	// GetRoleConfig retrieves the config for one role. Returns
	// ErrUnsupportedRole when the role has no configuration row; a role not
	// enrolled in working hours tracking is a legitimate steady state and
	// resolvers degrade it to "no config" rather than failing requests.
	GetRoleConfig(ctx context.Context, role string) (RoleConfig, error)

	// ListRoleConfigs retrieves all configured roles
	ListRoleConfigs(ctx context.Context) ([]RoleConfig, error)

	// UpsertRoleConfig creates or replaces a role's config
	UpsertRoleConfig(ctx context.Context, cfg RoleConfig) (RoleConfig, error)

	// GetUserOverride retrieves the override for one user, nil when absent
	GetUserOverride(ctx context.Context, userID string) (*UserConfigOverride, error)

	// UpsertUserOverride creates or replaces a user's override
	UpsertUserOverride(ctx context.Context, ov UserConfigOverride) (UserConfigOverride, error)
}

// Resolver produces the merged config consumed by the accounting logic.
type Resolver interface {
	// ResolveForUser merges the role config with the user's override.
	// Returns (nil, nil) when the role is not configured.
	ResolveForUser(ctx context.Context, role string, userID string) (*MergedConfig, error)
}
