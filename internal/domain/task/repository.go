package task

import (
	"context"
	"time"
)

// TaskRepository - interface for the tasks table
type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	// ListByAssignee returns the user's tasks newest first with assigner joined.
	ListByAssignee(ctx context.Context, userID string) ([]Task, error)
	// ListAll returns every task newest first with assignee/assigner joined.
	ListAll(ctx context.Context) ([]Task, error)
	UpdateStatus(ctx context.Context, id string, status Status, actualHours *float64, completedAt *time.Time) (Task, error)
	UpdateInspection(ctx context.Context, id string, status InspectionStatus, inspectedBy string, notes *string) (Task, error)
}
