package task

import (
	"context"

	"github.com/nexoptima/ems-backend-go/internal/domain/user"
)

// TaskService - task board with assignee-owned status and staff-owned
// inspection
type TaskService interface {
	Create(ctx context.Context, caller user.Caller, req CreateTaskRequest) (TaskResponse, error)
	ListMine(ctx context.Context, caller user.Caller) ([]TaskResponse, error)
	ListAll(ctx context.Context, caller user.Caller) ([]TaskResponse, error)
	UpdateStatus(ctx context.Context, caller user.Caller, taskID string, req UpdateTaskStatusRequest) (TaskResponse, error)
	Inspect(ctx context.Context, caller user.Caller, taskID string, req InspectTaskRequest) (TaskResponse, error)
}
