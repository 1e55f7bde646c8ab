package task

import (
	"context"
	"fmt"
	"time"

	"github.com/nexoptima/ems-backend-go/internal/domain/task"
	"github.com/nexoptima/ems-backend-go/internal/domain/user"
	"github.com/nexoptima/ems-backend-go/internal/pkg/database"
)

type TaskServiceImpl struct {
	db *database.DB
	task.TaskRepository
	user.UserRepository
}

func NewTaskService(db *database.DB, taskRepository task.TaskRepository, userRepository user.UserRepository) task.TaskService {
	return &TaskServiceImpl{
		db:             db,
		TaskRepository: taskRepository,
		UserRepository: userRepository,
	}
}

// Create implements task.TaskService.
func (s *TaskServiceImpl) Create(ctx context.Context, caller user.Caller, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := user.Authorize(caller, user.RoleAdmin, user.RoleHR); err != nil {
		return task.TaskResponse{}, err
	}

	if _, err := s.UserRepository.GetByID(ctx, req.AssignedTo); err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to resolve assignee: %w", err)
	}

	// Dates were validated by req.Validate
	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	dueDate, _ := time.Parse("2006-01-02", req.DueDate)

	priority := task.PriorityMedium
	if req.Priority != nil {
		priority = task.Priority(*req.Priority)
	}

	created, err := s.TaskRepository.Create(ctx, task.Task{
		Title:            req.Title,
		Description:      req.Description,
		AssignedTo:       req.AssignedTo,
		AssignedBy:       caller.ID,
		Project:          req.Project,
		Priority:         priority,
		Status:           task.StatusPending,
		StartDate:        startDate,
		DueDate:          dueDate,
		EstimatedHours:   req.EstimatedHours,
		InspectionStatus: task.InspectionPending,
	})
	if err != nil {
		return task.TaskResponse{}, err
	}

	return task.ToResponse(created), nil
}

// ListMine implements task.TaskService.
func (s *TaskServiceImpl) ListMine(ctx context.Context, caller user.Caller) ([]task.TaskResponse, error) {
	tasks, err := s.TaskRepository.ListByAssignee(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	return task.ToResponses(tasks), nil
}

// ListAll implements task.TaskService.
func (s *TaskServiceImpl) ListAll(ctx context.Context, caller user.Caller) ([]task.TaskResponse, error) {
	if err := user.Authorize(caller, user.RoleAdmin, user.RoleHR); err != nil {
		return nil, err
	}

	tasks, err := s.TaskRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return task.ToResponses(tasks), nil
}

// UpdateStatus implements task.TaskService. Only the assignee may move the
// status, and any status is reachable from any other; completing stamps
// completed_at once.
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, caller user.Caller, taskID string, req task.UpdateTaskStatusRequest) (task.TaskResponse, error) {
	t, err := s.TaskRepository.GetByID(ctx, taskID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if err := user.AuthorizeOwner(caller, t.AssignedTo); err != nil {
		return task.TaskResponse{}, err
	}

	status := task.Status(req.Status)
	var completedAt *time.Time
	if status == task.StatusCompleted {
		now := time.Now().UTC()
		completedAt = &now
	}

	updated, err := s.TaskRepository.UpdateStatus(ctx, taskID, status, req.ActualHours, completedAt)
	if err != nil {
		return task.TaskResponse{}, err
	}

	return task.ToResponse(updated), nil
}

// Inspect implements task.TaskService. Inspection is independent of the
// task's own status and may happen at any point in its life.
func (s *TaskServiceImpl) Inspect(ctx context.Context, caller user.Caller, taskID string, req task.InspectTaskRequest) (task.TaskResponse, error) {
	if err := user.Authorize(caller, user.RoleAdmin, user.RoleHR); err != nil {
		return task.TaskResponse{}, err
	}

	if _, err := s.TaskRepository.GetByID(ctx, taskID); err != nil {
		return task.TaskResponse{}, err
	}

	updated, err := s.TaskRepository.UpdateInspection(ctx, taskID, task.InspectionStatus(req.InspectionStatus), caller.ID, req.InspectionNotes)
	if err != nil {
		return task.TaskResponse{}, err
	}

	return task.ToResponse(updated), nil
}
