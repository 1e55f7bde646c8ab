package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/nexoptima/ems-backend-go/internal/domain/auth"
	"github.com/nexoptima/ems-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
	}
}

// Register implements AuthHandler.
func (h *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := h.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User registered successfully", tokenResponse)
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tokenResponse)
}

// Refresh implements AuthHandler.
func (h *AuthHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	var req auth.RefreshRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Refresh decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := h.authService.Refresh(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tokenResponse)
}

// Profile implements AuthHandler.
func (h *AuthHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	profile, err := h.authService.Profile(r.Context(), caller.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}
