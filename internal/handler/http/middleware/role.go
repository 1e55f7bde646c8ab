package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/nexoptima/ems-backend-go/internal/domain/user"
	"github.com/nexoptima/ems-backend-go/internal/handler/http/response"
)

// RequireRole rejects requests whose role claim is not one of the given
// roles. The service layer re-checks the same rule through user.Authorize so
// skipping this middleware never widens access.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrInsufficientRole)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, user.ErrInsufficientRole)
				return
			}

			if err := user.Authorize(user.Caller{Role: user.Role(roleStr)}, roles...); err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
