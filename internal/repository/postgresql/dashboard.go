package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/nexoptima/ems-backend-go/internal/domain/dashboard"
	"github.com/nexoptima/ems-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetEmployeeStats returns one user's task/attendance/leave counts in three queries
func (r *dashboardRepositoryImpl) GetEmployeeStats(ctx context.Context, userID string, monthStart, monthEnd time.Time) (*dashboard.EmployeeStatsResponse, error) {
	q := GetQuerier(ctx, r.db)

	var stats dashboard.EmployeeStatsResponse

	taskQuery := `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending,
			COALESCE(SUM(CASE WHEN status = 'in-progress' THEN 1 ELSE 0 END), 0) AS in_progress
		FROM tasks
		WHERE assigned_to = $1
	`
	err := q.QueryRow(ctx, taskQuery, userID).Scan(
		&stats.TotalTasks, &stats.CompletedTasks, &stats.PendingTasks, &stats.InProgressTasks,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee task stats: %w", err)
	}

	attendanceQuery := `
		SELECT COUNT(*)
		FROM attendances
		WHERE user_id = $1 AND date >= $2 AND date < $3
	`
	if err := q.QueryRow(ctx, attendanceQuery, userID, monthStart, monthEnd).Scan(&stats.AttendanceDays); err != nil {
		return nil, fmt.Errorf("failed to get employee attendance stats: %w", err)
	}

	leaveQuery := `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending
		FROM leave_requests
		WHERE user_id = $1 AND status IN ('approved', 'pending')
	`
	if err := q.QueryRow(ctx, leaveQuery, userID).Scan(&stats.TotalLeaves, &stats.PendingLeaves); err != nil {
		return nil, fmt.Errorf("failed to get employee leave stats: %w", err)
	}

	return &stats, nil
}

// GetAdminStats returns org-wide ledger counts for the admin/hr dashboard.
// The active-employee count is filled in by the service from the users
// repository.
func (r *dashboardRepositoryImpl) GetAdminStats(ctx context.Context, dayStart, dayEnd time.Time) (*dashboard.AdminStatsResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM tasks) AS total_tasks,
			(SELECT COUNT(*) FROM tasks WHERE status = 'completed') AS completed_tasks,
			(SELECT COUNT(*) FROM tasks WHERE status = 'in-progress') AS in_progress_tasks,
			(SELECT COUNT(*) FROM leave_requests WHERE status = 'pending') AS pending_leaves,
			(SELECT COUNT(*) FROM attendances WHERE date >= $1 AND date < $2) AS today_attendance
	`

	var stats dashboard.AdminStatsResponse
	err := q.QueryRow(ctx, query, dayStart, dayEnd).Scan(
		&stats.TotalTasks, &stats.CompletedTasks,
		&stats.InProgressTasks, &stats.PendingLeaves, &stats.TodayAttendance,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin stats: %w", err)
	}

	return &stats, nil
}

// GetTaskStatusCounts groups task counts by status
func (r *dashboardRepositoryImpl) GetTaskStatusCounts(ctx context.Context) ([]dashboard.TaskStatusCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status, COUNT(*)
		FROM tasks
		GROUP BY status
		ORDER BY status
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get task status counts: %w", err)
	}
	defer rows.Close()

	var counts []dashboard.TaskStatusCount
	for rows.Next() {
		var c dashboard.TaskStatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan task status count: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

// GetAttendanceTrend groups attendance counts by calendar day, ascending
func (r *dashboardRepositoryImpl) GetAttendanceTrend(ctx context.Context, monthStart, monthEnd time.Time) ([]dashboard.AttendanceDayCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT to_char(date, 'YYYY-MM-DD') AS day, COUNT(*)
		FROM attendances
		WHERE date >= $1 AND date < $2
		GROUP BY day
		ORDER BY day ASC
	`

	rows, err := q.Query(ctx, query, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance trend: %w", err)
	}
	defer rows.Close()

	var counts []dashboard.AttendanceDayCount
	for rows.Next() {
		var c dashboard.AttendanceDayCount
		if err := rows.Scan(&c.Date, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan attendance day count: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

// GetDepartmentTaskStats groups task totals by the assignee's department.
// Completion rate is computed here; an empty department reports 0, not an
// error.
func (r *dashboardRepositoryImpl) GetDepartmentTaskStats(ctx context.Context) ([]dashboard.DepartmentTaskStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.department,
			   COUNT(*) AS total_tasks,
			   COALESCE(SUM(CASE WHEN t.status = 'completed' THEN 1 ELSE 0 END), 0) AS completed_tasks
		FROM tasks t
		JOIN users u ON u.id = t.assigned_to
		GROUP BY u.department
		ORDER BY u.department
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get department task stats: %w", err)
	}
	defer rows.Close()

	var stats []dashboard.DepartmentTaskStats
	for rows.Next() {
		var s dashboard.DepartmentTaskStats
		if err := rows.Scan(&s.Department, &s.TotalTasks, &s.CompletedTasks); err != nil {
			return nil, fmt.Errorf("failed to scan department task stats: %w", err)
		}
		if s.TotalTasks > 0 {
			s.CompletionRate = float64(s.CompletedTasks) / float64(s.TotalTasks) * 100
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}
