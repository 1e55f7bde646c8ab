package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexoptima/ems-backend-go/internal/domain/user"
	"github.com/nexoptima/ems-backend-go/internal/pkg/jwt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

func newProtectedRouter(t *testing.T, jwtService jwt.Service, roles ...user.Role) *chi.Mux {
	t.Helper()

	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
	r.Use(AuthRequired(jwtService.JWTAuth()))
	if len(roles) > 0 {
		r.Use(RequireRole(roles...))
	}
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func doRequest(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	router := newProtectedRouter(t, jwtService)

	// no token
	rec := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// garbage token
	rec = doRequest(router, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// refresh tokens cannot reach protected routes
	refresh, _, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	rec = doRequest(router, refresh)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// valid access token
	access, _, err := jwtService.GenerateAccessToken("user-1", "mike@nexoptima.com", user.RoleEmployee)
	require.NoError(t, err)
	rec = doRequest(router, access)
	assert.Equal(t, http.StatusOK, rec.Code)

	// token signed with another key
	otherService := jwt.NewJWTService("some-other-secret", testAccessExp, testRefreshExp)
	forged, _, err := otherService.GenerateAccessToken("user-1", "mike@nexoptima.com", user.RoleAdmin)
	require.NoError(t, err)
	rec = doRequest(router, forged)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	router := newProtectedRouter(t, jwtService, user.RoleAdmin, user.RoleHR)

	hrToken, _, err := jwtService.GenerateAccessToken("user-1", "hr@nexoptima.com", user.RoleHR)
	require.NoError(t, err)
	rec := doRequest(router, hrToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	employeeToken, _, err := jwtService.GenerateAccessToken("user-2", "mike@nexoptima.com", user.RoleEmployee)
	require.NoError(t, err)
	rec = doRequest(router, employeeToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
