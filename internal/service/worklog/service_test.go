package worklog

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexoptima/ems-backend-go/internal/domain/user"
	"github.com/nexoptima/ems-backend-go/internal/domain/worklog"
	"github.com/nexoptima/ems-backend-go/internal/pkg/database"
	"github.com/nexoptima/ems-backend-go/internal/repository/postgresql"
)

func workLogTestDB(t *testing.T) *database.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func truncateWorkLogTables(t *testing.T, ctx context.Context, db *database.DB) {
	for _, table := range []string{"work_log_items", "work_logs", "tasks", "users"} {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createWorkLogTestUser(t *testing.T, ctx context.Context, db *database.DB, role user.Role) user.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	n := time.Now().UnixNano()
	u, err := postgresql.NewUserRepository(db).Create(ctx, user.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        fmt.Sprintf("worklog-%d@example.com", n),
		PasswordHash: string(hash),
		Role:         role,
		EmployeeID:   fmt.Sprintf("EMP%d", n%1000000),
		Department:   "Development",
		Position:     "Engineer",
		JoiningDate:  time.Now().UTC(),
		IsActive:     true,
	})
	require.NoError(t, err)
	return u
}

func TestWorkLogService_Submit(t *testing.T) {
	ctx := context.Background()
	db := workLogTestDB(t)
	truncateWorkLogTables(t, ctx, db)

	employee := createWorkLogTestUser(t, ctx, db, user.RoleEmployee)
	svc := NewWorkLogService(db, postgresql.NewWorkLogRepository(db))
	caller := user.Caller{ID: employee.ID, Role: employee.Role}

	achievements := "Finished the parser"
	created, err := svc.Submit(ctx, caller, worklog.SubmitWorkLogRequest{
		Date:         "2026-08-28",
		TotalHours:   8,
		Achievements: &achievements,
		TasksCompleted: []worklog.WorkLogItemRequest{
			{HoursWorked: 5, Description: "Parser rewrite"},
			{HoursWorked: 3, Description: "Code review"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, employee.ID, created.UserID)
	assert.Equal(t, worklog.ProductivityMedium, created.Productivity)
	assert.Len(t, created.TasksCompleted, 2)

	// one report per day
	_, err = svc.Submit(ctx, caller, worklog.SubmitWorkLogRequest{
		Date:       "2026-08-28",
		TotalHours: 4,
	})
	assert.ErrorIs(t, err, worklog.ErrWorkLogExists)
}

func TestWorkLogService_ListMine(t *testing.T) {
	ctx := context.Background()
	db := workLogTestDB(t)
	truncateWorkLogTables(t, ctx, db)

	employee := createWorkLogTestUser(t, ctx, db, user.RoleEmployee)
	svc := NewWorkLogService(db, postgresql.NewWorkLogRepository(db))
	caller := user.Caller{ID: employee.ID, Role: employee.Role}

	for _, date := range []string{"2026-08-27", "2026-08-28"} {
		_, err := svc.Submit(ctx, caller, worklog.SubmitWorkLogRequest{
			Date:       date,
			TotalHours: 8,
			TasksCompleted: []worklog.WorkLogItemRequest{
				{HoursWorked: 8, Description: "Daily work"},
			},
		})
		require.NoError(t, err)
	}

	logs, err := svc.ListMine(ctx, caller, 2026, time.August)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	// newest first with items attached
	assert.True(t, logs[0].Date.After(logs[1].Date))
	assert.Len(t, logs[0].TasksCompleted, 1)

	logs, err = svc.ListMine(ctx, caller, 2026, time.July)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestWorkLogService_ListForTeam(t *testing.T) {
	ctx := context.Background()
	db := workLogTestDB(t)
	truncateWorkLogTables(t, ctx, db)

	hr := createWorkLogTestUser(t, ctx, db, user.RoleHR)
	first := createWorkLogTestUser(t, ctx, db, user.RoleEmployee)
	second := createWorkLogTestUser(t, ctx, db, user.RoleEmployee)
	svc := NewWorkLogService(db, postgresql.NewWorkLogRepository(db))

	for _, u := range []user.User{first, second} {
		_, err := svc.Submit(ctx, user.Caller{ID: u.ID, Role: u.Role}, worklog.SubmitWorkLogRequest{
			Date:       "2026-08-28",
			TotalHours: 8,
		})
		require.NoError(t, err)
	}

	hrCaller := user.Caller{ID: hr.ID, Role: hr.Role}

	all, err := svc.ListForTeam(ctx, hrCaller, worklog.TeamFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.NotNil(t, all[0].UserFirstName)

	day := time.Date(2026, 8, 28, 13, 45, 0, 0, time.UTC)
	byDay, err := svc.ListForTeam(ctx, hrCaller, worklog.TeamFilter{Date: &day})
	require.NoError(t, err)
	assert.Len(t, byDay, 2)

	bySubmitter, err := svc.ListForTeam(ctx, hrCaller, worklog.TeamFilter{UserID: &first.ID})
	require.NoError(t, err)
	require.Len(t, bySubmitter, 1)
	assert.Equal(t, first.ID, bySubmitter[0].UserID)

	_, err = svc.ListForTeam(ctx, user.Caller{ID: first.ID, Role: first.Role}, worklog.TeamFilter{})
	assert.ErrorIs(t, err, user.ErrInsufficientRole)
}
