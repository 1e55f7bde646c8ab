package dashboard

import (
	"context"
	"time"
)

// DashboardRepository - read-only aggregation over the ledgers
type DashboardRepository interface {
	// GetEmployeeStats returns counts scoped to one user; attendance days are
	// counted within [monthStart, monthEnd).
	GetEmployeeStats(ctx context.Context, userID string, monthStart, monthEnd time.Time) (*EmployeeStatsResponse, error)
	// GetAdminStats returns org-wide ledger counts; today's attendance is
	// counted within [dayStart, dayEnd). TotalEmployees is left for the
	// caller to fill from the users repository.
	GetAdminStats(ctx context.Context, dayStart, dayEnd time.Time) (*AdminStatsResponse, error)
	GetTaskStatusCounts(ctx context.Context) ([]TaskStatusCount, error)
	// GetAttendanceTrend groups attendance counts by day within
	// [monthStart, monthEnd), ascending.
	GetAttendanceTrend(ctx context.Context, monthStart, monthEnd time.Time) ([]AttendanceDayCount, error)
	GetDepartmentTaskStats(ctx context.Context) ([]DepartmentTaskStats, error)
}
