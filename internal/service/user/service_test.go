package user

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
	"github.com/nexoptima/ems-backend-go/internal/pkg/database"
	"github.com/nexoptima/ems-backend-go/internal/repository/postgresql"
)

func userTestDB(t *testing.T) *database.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func truncateUserTables(t *testing.T, ctx context.Context, db *database.DB) {
	_, err := db.Exec(ctx, "TRUNCATE TABLE users CASCADE")
	require.NoError(t, err)
}

func createTestUser(t *testing.T, ctx context.Context, db *database.DB, role user.Role) user.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	n := time.Now().UnixNano()
	u, err := postgresql.NewUserRepository(db).Create(ctx, user.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        fmt.Sprintf("user-%d@example.com", n),
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

func TestUserService_Get(t *testing.T) {
	ctx := context.Background()
	db := userTestDB(t)
	truncateUserTables(t, ctx, db)

	hr := createTestUser(t, ctx, db, user.RoleHR)
	employee := createTestUser(t, ctx, db, user.RoleEmployee)
	other := createTestUser(t, ctx, db, user.RoleEmployee)

	svc := NewUserService(postgresql.NewUserRepository(db))

	// everyone can read their own record
	own, err := svc.Get(ctx, user.Caller{ID: employee.ID, Role: employee.Role}, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.Email, own.Email)

	// staff can read anyone's
	read, err := svc.Get(ctx, user.Caller{ID: hr.ID, Role: hr.Role}, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.ID, read.ID)

	// employees cannot read each other
	_, err = svc.Get(ctx, user.Caller{ID: other.ID, Role: other.Role}, employee.ID)
	assert.ErrorIs(t, err, user.ErrNotOwner)

	_, err = svc.Get(ctx, user.Caller{ID: hr.ID, Role: hr.Role}, "7f000000-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserService_List(t *testing.T) {
	ctx := context.Background()
	db := userTestDB(t)
	truncateUserTables(t, ctx, db)

	admin := createTestUser(t, ctx, db, user.RoleAdmin)
	hr := createTestUser(t, ctx, db, user.RoleHR)
	createTestUser(t, ctx, db, user.RoleEmployee)

	svc := NewUserService(postgresql.NewUserRepository(db))

	users, err := svc.List(ctx, user.Caller{ID: admin.ID, Role: admin.Role})
	require.NoError(t, err)
	assert.Len(t, users, 3)

	// the full directory is admin-only
	_, err = svc.List(ctx, user.Caller{ID: hr.ID, Role: hr.Role})
	assert.ErrorIs(t, err, user.ErrInsufficientRole)
}

func TestUserService_ListByRole(t *testing.T) {
	ctx := context.Background()
	db := userTestDB(t)
	truncateUserTables(t, ctx, db)

	hr := createTestUser(t, ctx, db, user.RoleHR)
	employee := createTestUser(t, ctx, db, user.RoleEmployee)
	createTestUser(t, ctx, db, user.RoleEmployee)

	svc := NewUserService(postgresql.NewUserRepository(db))
	hrCaller := user.Caller{ID: hr.ID, Role: hr.Role}

	employees, err := svc.ListByRole(ctx, hrCaller, user.RoleEmployee)
	require.NoError(t, err)
	assert.Len(t, employees, 2)

	_, err = svc.ListByRole(ctx, hrCaller, user.Role("manager"))
	assert.ErrorIs(t, err, user.ErrUnknownRole)

	_, err = svc.ListByRole(ctx, user.Caller{ID: employee.ID, Role: employee.Role}, user.RoleEmployee)
	assert.ErrorIs(t, err, user.ErrInsufficientRole)
}

func TestUserService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	db := userTestDB(t)
	truncateUserTables(t, ctx, db)

	admin := createTestUser(t, ctx, db, user.RoleAdmin)
	employee := createTestUser(t, ctx, db, user.RoleEmployee)

	svc := NewUserService(postgresql.NewUserRepository(db))
	adminCaller := user.Caller{ID: admin.ID, Role: admin.Role}

	department := "Platform"
	inactive := false
	updated, err := svc.Update(ctx, adminCaller, employee.ID, user.UpdateUserRequest{
		Department: &department,
		IsActive:   &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Platform", updated.Department)
	assert.False(t, updated.IsActive)
	// untouched fields keep their values
	assert.Equal(t, employee.Email, updated.Email)

	_, err = svc.Update(ctx, user.Caller{ID: employee.ID, Role: user.RoleEmployee}, admin.ID, user.UpdateUserRequest{Department: &department})
	assert.ErrorIs(t, err, user.ErrInsufficientRole)

	err = svc.Delete(ctx, adminCaller, employee.ID)
	require.NoError(t, err)
	err = svc.Delete(ctx, adminCaller, employee.ID)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
