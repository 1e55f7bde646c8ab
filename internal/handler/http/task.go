package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexoptima/ems-backend-go/internal/domain/task"
	"github.com/nexoptima/ems-backend-go/internal/handler/http/response"
)

type TaskHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Inspect(w http.ResponseWriter, r *http.Request)
}

type TaskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &TaskHandlerImpl{
		taskService: taskService,
	}
}

// Create implements TaskHandler.
func (h *TaskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	var req task.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.taskService.Create(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created successfully", created)
}

// ListMine implements TaskHandler.
func (h *TaskHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	tasks, err := h.taskService.ListMine(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tasks)
}

// ListAll implements TaskHandler.
func (h *TaskHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	tasks, err := h.taskService.ListAll(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tasks)
}

// UpdateStatus implements TaskHandler.
func (h *TaskHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	taskID := chi.URLParam(r, "id")
	if taskID == "" {
		response.BadRequest(w, "Task ID is required", nil)
		return
	}

	var req task.UpdateTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.taskService.UpdateStatus(r.Context(), caller, taskID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task status updated successfully", updated)
}

// Inspect implements TaskHandler.
func (h *TaskHandlerImpl) Inspect(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	taskID := chi.URLParam(r, "id")
	if taskID == "" {
		response.BadRequest(w, "Task ID is required", nil)
		return
	}

	var req task.InspectTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Inspect decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.taskService.Inspect(r.Context(), caller, taskID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task inspected successfully", updated)
}
