package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/nexoptima/ems-backend-go/internal/domain/dashboard"
	"github.com/nexoptima/ems-backend-go/internal/domain/user"
	"github.com/nexoptima/ems-backend-go/internal/pkg/dateutil"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	userRepository user.UserRepository
}

func NewDashboardService(dashboardRepository dashboard.DashboardRepository, userRepository user.UserRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: dashboardRepository,
		userRepository:      userRepository,
	}
}

// Stats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Stats(ctx context.Context, caller user.Caller) (interface{}, error) {
	now := time.Now().UTC()

	if !caller.Role.IsStaff() {
		monthStart, monthEnd := dateutil.MonthRange(now.Year(), now.Month())
		stats, err := s.DashboardRepository.GetEmployeeStats(ctx, caller.ID, monthStart, monthEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to get employee dashboard stats: %w", err)
		}
		return stats, nil
	}

	stats, err := s.DashboardRepository.GetAdminStats(ctx, dateutil.StartOfDay(now), dateutil.NextDay(now))
	if err != nil {
		return nil, fmt.Errorf("failed to get admin dashboard stats: %w", err)
	}

	active, err := s.userRepository.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}
	stats.TotalEmployees = active

	return stats, nil
}

// Analytics implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Analytics(ctx context.Context, caller user.Caller) (dashboard.AnalyticsResponse, error) {
	if err := user.Authorize(caller, user.RoleAdmin, user.RoleHR); err != nil {
		return dashboard.AnalyticsResponse{}, err
	}

	now := time.Now().UTC()
	monthStart, monthEnd := dateutil.MonthRange(now.Year(), now.Month())

	taskStats, err := s.DashboardRepository.GetTaskStatusCounts(ctx)
	if err != nil {
		return dashboard.AnalyticsResponse{}, fmt.Errorf("failed to get task status counts: %w", err)
	}

	attendanceStats, err := s.DashboardRepository.GetAttendanceTrend(ctx, monthStart, monthEnd)
	if err != nil {
		return dashboard.AnalyticsResponse{}, fmt.Errorf("failed to get attendance trend: %w", err)
	}

	departmentStats, err := s.DashboardRepository.GetDepartmentTaskStats(ctx)
	if err != nil {
		return dashboard.AnalyticsResponse{}, fmt.Errorf("failed to get department task stats: %w", err)
	}

	return dashboard.AnalyticsResponse{
		TaskStats:       taskStats,
		AttendanceStats: attendanceStats,
		DepartmentStats: departmentStats,
	}, nil
}
