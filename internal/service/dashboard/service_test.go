package dashboard

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexoptima/ems-backend-go/internal/domain/dashboard"
	"github.com/nexoptima/ems-backend-go/internal/domain/task"
	"github.com/nexoptima/ems-backend-go/internal/domain/user"
	"github.com/nexoptima/ems-backend-go/internal/pkg/database"
	"github.com/nexoptima/ems-backend-go/internal/repository/postgresql"
	attendanceService "github.com/nexoptima/ems-backend-go/internal/service/attendance"
	taskService "github.com/nexoptima/ems-backend-go/internal/service/task"
)

func dashboardTestDB(t *testing.T) *database.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func truncateDashboardTables(t *testing.T, ctx context.Context, db *database.DB) {
	for _, table := range []string{"work_log_items", "work_logs", "tasks", "leave_requests", "attendances", "users"} {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createDashboardTestUser(t *testing.T, ctx context.Context, db *database.DB, role user.Role, department string) user.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	n := time.Now().UnixNano()
	u, err := postgresql.NewUserRepository(db).Create(ctx, user.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        fmt.Sprintf("dash-%d@example.com", n),
		PasswordHash: string(hash),
		Role:         role,
		EmployeeID:   fmt.Sprintf("EMP%d", n%1000000),
		Department:   department,
		Position:     "Engineer",
		JoiningDate:  time.Now().UTC(),
		IsActive:     true,
	})
	require.NoError(t, err)
	return u
}

func seedDashboardTask(t *testing.T, ctx context.Context, db *database.DB, hr, assignee user.User, complete bool) {
	svc := taskService.NewTaskService(db, postgresql.NewTaskRepository(db), postgresql.NewUserRepository(db))
	created, err := svc.Create(ctx, user.Caller{ID: hr.ID, Role: hr.Role}, task.CreateTaskRequest{
		Title:          "Dashboard seed task",
		Description:    "Numbers to count",
		AssignedTo:     assignee.ID,
		Project:        "EMS",
		StartDate:      "2026-08-01",
		DueDate:        "2026-09-30",
		EstimatedHours: 8,
	})
	require.NoError(t, err)

	if complete {
		_, err = svc.UpdateStatus(ctx, user.Caller{ID: assignee.ID, Role: assignee.Role}, created.ID, task.UpdateTaskStatusRequest{Status: "completed"})
		require.NoError(t, err)
	}
}

func TestDashboardService_StatsEmployee(t *testing.T) {
	ctx := context.Background()
	db := dashboardTestDB(t)
	truncateDashboardTables(t, ctx, db)

	hr := createDashboardTestUser(t, ctx, db, user.RoleHR, "Human Resources")
	employee := createDashboardTestUser(t, ctx, db, user.RoleEmployee, "Development")
	other := createDashboardTestUser(t, ctx, db, user.RoleEmployee, "Development")

	seedDashboardTask(t, ctx, db, hr, employee, true)
	seedDashboardTask(t, ctx, db, hr, employee, false)
	seedDashboardTask(t, ctx, db, hr, other, false)

	attSvc := attendanceService.NewAttendanceService(db, postgresql.NewAttendanceRepository(db))
	_, err := attSvc.CheckIn(ctx, user.Caller{ID: employee.ID, Role: employee.Role})
	require.NoError(t, err)

	svc := NewDashboardService(postgresql.NewDashboardRepository(db), postgresql.NewUserRepository(db))
	result, err := svc.Stats(ctx, user.Caller{ID: employee.ID, Role: employee.Role})
	require.NoError(t, err)

	stats, ok := result.(*dashboard.EmployeeStatsResponse)
	require.True(t, ok)
	// counts are scoped to the caller, not the organization
	assert.Equal(t, int64(2), stats.TotalTasks)
	assert.Equal(t, int64(1), stats.CompletedTasks)
	assert.Equal(t, int64(1), stats.PendingTasks)
	assert.Equal(t, int64(1), stats.AttendanceDays)
}

func TestDashboardService_StatsAdmin(t *testing.T) {
	ctx := context.Background()
	db := dashboardTestDB(t)
	truncateDashboardTables(t, ctx, db)

	admin := createDashboardTestUser(t, ctx, db, user.RoleAdmin, "Administration")
	hr := createDashboardTestUser(t, ctx, db, user.RoleHR, "Human Resources")
	employee := createDashboardTestUser(t, ctx, db, user.RoleEmployee, "Development")

	// deactivated accounts do not count as employees
	former := createDashboardTestUser(t, ctx, db, user.RoleEmployee, "Development")
	inactive := false
	_, err := postgresql.NewUserRepository(db).Update(ctx, former.ID, user.UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)

	seedDashboardTask(t, ctx, db, hr, employee, true)

	attSvc := attendanceService.NewAttendanceService(db, postgresql.NewAttendanceRepository(db))
	_, err = attSvc.CheckIn(ctx, user.Caller{ID: employee.ID, Role: employee.Role})
	require.NoError(t, err)

	svc := NewDashboardService(postgresql.NewDashboardRepository(db), postgresql.NewUserRepository(db))
	result, err := svc.Stats(ctx, user.Caller{ID: admin.ID, Role: admin.Role})
	require.NoError(t, err)

	stats, ok := result.(*dashboard.AdminStatsResponse)
	require.True(t, ok)
	assert.Equal(t, int64(3), stats.TotalEmployees)
	assert.Equal(t, int64(1), stats.TotalTasks)
	assert.Equal(t, int64(1), stats.CompletedTasks)
	assert.Equal(t, int64(1), stats.TodayAttendance)
}

func TestDashboardService_Analytics(t *testing.T) {
	ctx := context.Background()
	db := dashboardTestDB(t)
	truncateDashboardTables(t, ctx, db)

	hr := createDashboardTestUser(t, ctx, db, user.RoleHR, "Human Resources")
	dev := createDashboardTestUser(t, ctx, db, user.RoleEmployee, "Development")
	design := createDashboardTestUser(t, ctx, db, user.RoleEmployee, "Design")

	seedDashboardTask(t, ctx, db, hr, dev, true)
	seedDashboardTask(t, ctx, db, hr, dev, false)
	seedDashboardTask(t, ctx, db, hr, design, false)

	svc := NewDashboardService(postgresql.NewDashboardRepository(db), postgresql.NewUserRepository(db))
	analytics, err := svc.Analytics(ctx, user.Caller{ID: hr.ID, Role: hr.Role})
	require.NoError(t, err)

	byStatus := map[string]int64{}
	for _, s := range analytics.TaskStats {
		byStatus[s.Status] = s.Count
	}
	assert.Equal(t, int64(1), byStatus["completed"])
	assert.Equal(t, int64(2), byStatus["pending"])

	byDept := map[string]dashboard.DepartmentTaskStats{}
	for _, s := range analytics.DepartmentStats {
		byDept[s.Department] = s
	}
	assert.Equal(t, int64(2), byDept["Development"].TotalTasks)
	assert.InDelta(t, 50.0, byDept["Development"].CompletionRate, 0.01)
	assert.Equal(t, 0.0, byDept["Design"].CompletionRate)

	// analytics is a staff view
	_, err = svc.Analytics(ctx, user.Caller{ID: dev.ID, Role: dev.Role})
	assert.ErrorIs(t, err, user.ErrInsufficientRole)
}
