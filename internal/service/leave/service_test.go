package leave

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexoptima/ems-backend-go/internal/domain/leave"
	"github.com/nexoptima/ems-backend-go/internal/domain/user"
	"github.com/nexoptima/ems-backend-go/internal/pkg/database"
	"github.com/nexoptima/ems-backend-go/internal/repository/postgresql"
)

func leaveTestDB(t *testing.T) *database.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func truncateLeaveTables(t *testing.T, ctx context.Context, db *database.DB) {
	for _, table := range []string{"leave_requests", "users"} {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createLeaveTestUser(t *testing.T, ctx context.Context, db *database.DB, role user.Role) user.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	n := time.Now().UnixNano()
	u, err := postgresql.NewUserRepository(db).Create(ctx, user.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        fmt.Sprintf("leave-%d@example.com", n),
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

func TestLeaveService_Apply(t *testing.T) {
	ctx := context.Background()
	db := leaveTestDB(t)
	truncateLeaveTables(t, ctx, db)

	employee := createLeaveTestUser(t, ctx, db, user.RoleEmployee)
	svc := NewLeaveService(db, postgresql.NewLeaveRequestRepository(db))
	caller := user.Caller{ID: employee.ID, Role: employee.Role}

	created, err := svc.Apply(ctx, caller, leave.ApplyLeaveRequest{
		LeaveType: "vacation",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
		Reason:    "Family vacation",
	})
	require.NoError(t, err)
	assert.Equal(t, employee.ID, created.UserID)
	assert.Equal(t, leave.StatusPending, created.Status)
	// both endpoints count
	assert.Equal(t, 3, created.TotalDays)

	sameDay, err := svc.Apply(ctx, caller, leave.ApplyLeaveRequest{
		LeaveType: "sick",
		StartDate: "2026-09-10",
		EndDate:   "2026-09-10",
		Reason:    "Flu",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, sameDay.TotalDays)
}

func TestLeaveService_ListPending(t *testing.T) {
	ctx := context.Background()
	db := leaveTestDB(t)
	truncateLeaveTables(t, ctx, db)

	hr := createLeaveTestUser(t, ctx, db, user.RoleHR)
	employee := createLeaveTestUser(t, ctx, db, user.RoleEmployee)
	svc := NewLeaveService(db, postgresql.NewLeaveRequestRepository(db))

	_, err := svc.Apply(ctx, user.Caller{ID: employee.ID, Role: employee.Role}, leave.ApplyLeaveRequest{
		LeaveType: "personal",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-01",
		Reason:    "Errand",
	})
	require.NoError(t, err)

	pending, err := svc.ListPending(ctx, user.Caller{ID: hr.ID, Role: hr.Role})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.NotNil(t, pending[0].UserFirstName)

	_, err = svc.ListPending(ctx, user.Caller{ID: employee.ID, Role: employee.Role})
	assert.ErrorIs(t, err, user.ErrInsufficientRole)
}

func TestLeaveService_SetStatus(t *testing.T) {
	ctx := context.Background()
	db := leaveTestDB(t)
	truncateLeaveTables(t, ctx, db)

	hr := createLeaveTestUser(t, ctx, db, user.RoleHR)
	employee := createLeaveTestUser(t, ctx, db, user.RoleEmployee)
	svc := NewLeaveService(db, postgresql.NewLeaveRequestRepository(db))
	hrCaller := user.Caller{ID: hr.ID, Role: hr.Role}

	created, err := svc.Apply(ctx, user.Caller{ID: employee.ID, Role: employee.Role}, leave.ApplyLeaveRequest{
		LeaveType: "vacation",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-02",
		Reason:    "Trip",
	})
	require.NoError(t, err)

	approved, err := svc.SetStatus(ctx, hrCaller, created.ID, leave.UpdateLeaveStatusRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, hr.ID, *approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovedAt)

	// a decided request can be re-decided
	reason := "Blackout period"
	rejected, err := svc.SetStatus(ctx, hrCaller, created.ID, leave.UpdateLeaveStatusRequest{Status: "rejected", RejectionReason: &reason})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, reason, *rejected.RejectionReason)
}

func TestLeaveService_SetStatusErrors(t *testing.T) {
	ctx := context.Background()
	db := leaveTestDB(t)
	truncateLeaveTables(t, ctx, db)

	hr := createLeaveTestUser(t, ctx, db, user.RoleHR)
	employee := createLeaveTestUser(t, ctx, db, user.RoleEmployee)
	svc := NewLeaveService(db, postgresql.NewLeaveRequestRepository(db))

	created, err := svc.Apply(ctx, user.Caller{ID: employee.ID, Role: employee.Role}, leave.ApplyLeaveRequest{
		LeaveType: "vacation",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-02",
		Reason:    "Trip",
	})
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, user.Caller{ID: employee.ID, Role: employee.Role}, created.ID, leave.UpdateLeaveStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, user.ErrInsufficientRole)

	_, err = svc.SetStatus(ctx, user.Caller{ID: hr.ID, Role: hr.Role}, "7f000000-0000-4000-8000-000000000000", leave.UpdateLeaveStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}
