package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/nexoptima/ems-backend-go/internal/domain/user"
)

// callerFromContext resolves the authenticated caller from the JWT claims.
func callerFromContext(r *http.Request) (user.Caller, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return user.Caller{}, false
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.Caller{}, false
	}

	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return user.Caller{}, false
	}

	return user.Caller{ID: userID, Role: user.Role(roleStr)}, true
}

// monthFromQuery reads month/year query parameters, defaulting to the
// current UTC month.
func monthFromQuery(r *http.Request) (int, time.Month) {
	now := time.Now().UTC()
	year := now.Year()
	month := now.Month()

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		if y, err := strconv.Atoi(yearStr); err == nil && y > 0 {
			year = y
		}
	}

	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		if m, err := strconv.Atoi(monthStr); err == nil && m >= 1 && m <= 12 {
			month = time.Month(m)
		}
	}

	return year, month
}
