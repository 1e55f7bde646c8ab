package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nexoptima/ems-backend-go/internal/domain/task"
	"github.com/nexoptima/ems-backend-go/internal/pkg/database"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

const taskColumns = `id, title, description, assigned_to, assigned_by, project, priority,
	status, start_date, due_date, completed_at, estimated_hours, actual_hours,
	inspection_status, inspected_by, inspection_notes, created_at, updated_at`

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.AssignedTo, &t.AssignedBy, &t.Project,
		&t.Priority, &t.Status, &t.StartDate, &t.DueDate, &t.CompletedAt,
		&t.EstimatedHours, &t.ActualHours, &t.InspectionStatus, &t.InspectedBy,
		&t.InspectionNotes, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (
			id, title, description, assigned_to, assigned_by, project, priority,
			status, start_date, due_date, estimated_hours, actual_hours, inspection_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING created_at, updated_at
	`

	t.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		t.ID, t.Title, t.Description, t.AssignedTo, t.AssignedBy, t.Project,
		t.Priority, t.Status, t.StartDate, t.DueDate, t.EstimatedHours,
		t.ActualHours, t.InspectionStatus,
	).Scan(&t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

// GetByID implements task.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.title, t.description, t.assigned_to, t.assigned_by, t.project,
			   t.priority, t.status, t.start_date, t.due_date, t.completed_at,
			   t.estimated_hours, t.actual_hours, t.inspection_status, t.inspected_by,
			   t.inspection_notes, t.created_at, t.updated_at,
			   i.first_name || ' ' || i.last_name AS inspector_name
		FROM tasks t
		LEFT JOIN users i ON i.id = t.inspected_by
		WHERE t.id = $1
	`

	var t task.Task
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.AssignedTo, &t.AssignedBy, &t.Project,
		&t.Priority, &t.Status, &t.StartDate, &t.DueDate, &t.CompletedAt,
		&t.EstimatedHours, &t.ActualHours, &t.InspectionStatus, &t.InspectedBy,
		&t.InspectionNotes, &t.CreatedAt, &t.UpdatedAt, &t.InspectorName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task by ID: %w", err)
	}

	return t, nil
}

// ListByAssignee implements task.TaskRepository.
func (r *taskRepositoryImpl) ListByAssignee(ctx context.Context, userID string) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.title, t.description, t.assigned_to, t.assigned_by, t.project,
			   t.priority, t.status, t.start_date, t.due_date, t.completed_at,
			   t.estimated_hours, t.actual_hours, t.inspection_status, t.inspected_by,
			   t.inspection_notes, t.created_at, t.updated_at,
			   b.first_name || ' ' || b.last_name AS assigner_name,
			   i.first_name || ' ' || i.last_name AS inspector_name
		FROM tasks t
		JOIN users b ON b.id = t.assigned_by
		LEFT JOIN users i ON i.id = t.inspected_by
		WHERE t.assigned_to = $1
		ORDER BY t.created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by assignee: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.AssignedTo, &t.AssignedBy, &t.Project,
			&t.Priority, &t.Status, &t.StartDate, &t.DueDate, &t.CompletedAt,
			&t.EstimatedHours, &t.ActualHours, &t.InspectionStatus, &t.InspectedBy,
			&t.InspectionNotes, &t.CreatedAt, &t.UpdatedAt, &t.AssignerName, &t.InspectorName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// ListAll implements task.TaskRepository.
func (r *taskRepositoryImpl) ListAll(ctx context.Context) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.title, t.description, t.assigned_to, t.assigned_by, t.project,
			   t.priority, t.status, t.start_date, t.due_date, t.completed_at,
			   t.estimated_hours, t.actual_hours, t.inspection_status, t.inspected_by,
			   t.inspection_notes, t.created_at, t.updated_at,
			   a.first_name || ' ' || a.last_name AS assignee_name,
			   a.employee_id, a.department,
			   b.first_name || ' ' || b.last_name AS assigner_name,
			   i.first_name || ' ' || i.last_name AS inspector_name
		FROM tasks t
		JOIN users a ON a.id = t.assigned_to
		JOIN users b ON b.id = t.assigned_by
		LEFT JOIN users i ON i.id = t.inspected_by
		ORDER BY t.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.AssignedTo, &t.AssignedBy, &t.Project,
			&t.Priority, &t.Status, &t.StartDate, &t.DueDate, &t.CompletedAt,
			&t.EstimatedHours, &t.ActualHours, &t.InspectionStatus, &t.InspectedBy,
			&t.InspectionNotes, &t.CreatedAt, &t.UpdatedAt,
			&t.AssigneeName, &t.AssigneeEmployeeID, &t.AssigneeDepartment,
			&t.AssignerName, &t.InspectorName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// UpdateStatus implements task.TaskRepository.
func (r *taskRepositoryImpl) UpdateStatus(ctx context.Context, id string, status task.Status, actualHours *float64, completedAt *time.Time) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET status = $2,
			actual_hours = COALESCE($3, actual_hours),
			completed_at = COALESCE($4, completed_at),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + taskColumns

	t, err := scanTask(q.QueryRow(ctx, query, id, status, actualHours, completedAt))
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to update task status: %w", err)
	}

	return t, nil
}

// UpdateInspection implements task.TaskRepository.
func (r *taskRepositoryImpl) UpdateInspection(ctx context.Context, id string, status task.InspectionStatus, inspectedBy string, notes *string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET inspection_status = $2, inspected_by = $3, inspection_notes = $4,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + taskColumns

	t, err := scanTask(q.QueryRow(ctx, query, id, status, inspectedBy, notes))
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to update task inspection: %w", err)
	}

	return t, nil
}
