package attendance

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexoptima/ems-backend-go/internal/domain/attendance"
	"github.com/nexoptima/ems-backend-go/internal/domain/user"
	"github.com/nexoptima/ems-backend-go/internal/pkg/database"
	"github.com/nexoptima/ems-backend-go/internal/repository/postgresql"
)

func attendanceTestDB(t *testing.T) *database.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func truncateAttendanceTables(t *testing.T, ctx context.Context, db *database.DB) {
	for _, table := range []string{"attendances", "users"} {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createAttendanceTestUser(t *testing.T, ctx context.Context, db *database.DB, role user.Role) user.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	n := time.Now().UnixNano()
	u, err := postgresql.NewUserRepository(db).Create(ctx, user.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        fmt.Sprintf("att-%d@example.com", n),
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

func TestAttendanceService_CheckIn(t *testing.T) {
	ctx := context.Background()
	db := attendanceTestDB(t)
	truncateAttendanceTables(t, ctx, db)

	employee := createAttendanceTestUser(t, ctx, db, user.RoleEmployee)
	svc := NewAttendanceService(db, postgresql.NewAttendanceRepository(db))
	caller := user.Caller{ID: employee.ID, Role: employee.Role}

	record, err := svc.CheckIn(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, employee.ID, record.UserID)
	assert.Equal(t, attendance.StatusPresent, record.Status)
	assert.Equal(t, 0, record.Date.UTC().Hour())
	assert.Nil(t, record.CheckOut)

	// second check-in on the same day is rejected
	_, err = svc.CheckIn(ctx, caller)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceService_CheckOut(t *testing.T) {
	ctx := context.Background()
	db := attendanceTestDB(t)
	truncateAttendanceTables(t, ctx, db)

	employee := createAttendanceTestUser(t, ctx, db, user.RoleEmployee)
	svc := NewAttendanceService(db, postgresql.NewAttendanceRepository(db))
	caller := user.Caller{ID: employee.ID, Role: employee.Role}

	// check-out without a check-in
	_, err := svc.CheckOut(ctx, caller)
	assert.ErrorIs(t, err, attendance.ErrNoCheckIn)

	_, err = svc.CheckIn(ctx, caller)
	require.NoError(t, err)

	record, err := svc.CheckOut(ctx, caller)
	require.NoError(t, err)
	require.NotNil(t, record.CheckOut)
	assert.GreaterOrEqual(t, record.WorkingHours, 0.0)

	_, err = svc.CheckOut(ctx, caller)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestAttendanceService_ListMine(t *testing.T) {
	ctx := context.Background()
	db := attendanceTestDB(t)
	truncateAttendanceTables(t, ctx, db)

	employee := createAttendanceTestUser(t, ctx, db, user.RoleEmployee)
	svc := NewAttendanceService(db, postgresql.NewAttendanceRepository(db))
	caller := user.Caller{ID: employee.ID, Role: employee.Role}

	_, err := svc.CheckIn(ctx, caller)
	require.NoError(t, err)

	now := time.Now().UTC()
	records, err := svc.ListMine(ctx, caller, now.Year(), now.Month())
	require.NoError(t, err)
	assert.Len(t, records, 1)

	// a different month is empty
	previous := now.AddDate(0, -1, 0)
	records, err = svc.ListMine(ctx, caller, previous.Year(), previous.Month())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAttendanceService_ListForDay(t *testing.T) {
	ctx := context.Background()
	db := attendanceTestDB(t)
	truncateAttendanceTables(t, ctx, db)

	hr := createAttendanceTestUser(t, ctx, db, user.RoleHR)
	employee := createAttendanceTestUser(t, ctx, db, user.RoleEmployee)
	svc := NewAttendanceService(db, postgresql.NewAttendanceRepository(db))

	_, err := svc.CheckIn(ctx, user.Caller{ID: employee.ID, Role: employee.Role})
	require.NoError(t, err)

	records, err := svc.ListForDay(ctx, user.Caller{ID: hr.ID, Role: hr.Role}, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.NotNil(t, records[0].UserFirstName)

	// employees have no team view
	_, err = svc.ListForDay(ctx, user.Caller{ID: employee.ID, Role: employee.Role}, time.Now().UTC())
	assert.ErrorIs(t, err, user.ErrInsufficientRole)
}
