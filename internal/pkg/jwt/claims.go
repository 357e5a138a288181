package jwt

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
)

// IdentityFromContext extracts the authenticated user's id and role from the
// verified token claims.
func IdentityFromContext(ctx context.Context) (userID string, role string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}
	role, ok = claims["role"].(string)
	if !ok || role == "" {
		return "", "", fmt.Errorf("role claim is missing or invalid")
	}
	return userID, role, nil
}
