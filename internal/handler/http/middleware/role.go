package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/tracklight/workhours-backend-go/internal/handler/http/response"
)

const RoleAdmin = "admin"

// RequireAdmin gates the administrative surface: configuration writes,
// holiday calendar maintenance, and time-off approval.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Admin access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != RoleAdmin {
			response.Forbidden(w, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
