package workconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/tracklight/workhours-backend-go/internal/domain/workconfig"
)

type resolverImpl struct {
	configRepo workconfig.Repository
}

// NewResolver builds the merged-config resolver used by every consumer of
// working hours policy.
func NewResolver(configRepo workconfig.Repository) workconfig.Resolver {
	return &resolverImpl{configRepo: configRepo}
}

// ResolveForUser implements workconfig.Resolver. A role without a config row
// is a legitimate steady state (not enrolled in working hours tracking) and
// resolves to nil rather than an error.
func (r *resolverImpl) ResolveForUser(ctx context.Context, role string, userID string) (*workconfig.MergedConfig, error) {
	roleCfg, err := r.configRepo.GetRoleConfig(ctx, role)
	if err != nil {
		if errors.Is(err, workconfig.ErrUnsupportedRole) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load role config: %w", err)
	}

	override, err := r.configRepo.GetUserOverride(ctx, userID)
	if err != nil {
		if !errors.Is(err, workconfig.ErrOverrideNotFound) {
			return nil, fmt.Errorf("failed to load user override: %w", err)
		}
		override = nil
	}

	merged := workconfig.Resolve(roleCfg, override)
	return &merged, nil
}
