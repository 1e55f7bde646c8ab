package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/nexoptima/ems-backend-go/internal/domain/worklog"
	"github.com/nexoptima/ems-backend-go/internal/handler/http/response"
)

type WorkLogHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListForTeam(w http.ResponseWriter, r *http.Request)
}

type WorkLogHandlerImpl struct {
	workLogService worklog.WorkLogService
}

func NewWorkLogHandler(workLogService worklog.WorkLogService) WorkLogHandler {
	return &WorkLogHandlerImpl{
		workLogService: workLogService,
	}
}

// Submit implements WorkLogHandler.
func (h *WorkLogHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	var req worklog.SubmitWorkLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit work log decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.workLogService.Submit(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work log submitted successfully", created)
}

// ListMine implements WorkLogHandler.
func (h *WorkLogHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	year, month := monthFromQuery(r)

	logs, err := h.workLogService.ListMine(r.Context(), caller, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}

// ListForTeam implements WorkLogHandler.
func (h *WorkLogHandlerImpl) ListForTeam(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	filter := worklog.TeamFilter{}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			response.BadRequest(w, "date must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		filter.Date = &parsed
	}

	if userID := r.URL.Query().Get("user_id"); userID != "" {
		filter.UserID = &userID
	}

	logs, err := h.workLogService.ListForTeam(r.Context(), caller, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}
