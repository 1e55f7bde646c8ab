package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	admin := Caller{ID: "u1", Role: RoleAdmin}
	hr := Caller{ID: "u2", Role: RoleHR}
	employee := Caller{ID: "u3", Role: RoleEmployee}

	assert.NoError(t, Authorize(admin, RoleAdmin))
	assert.NoError(t, Authorize(hr, RoleAdmin, RoleHR))
	assert.NoError(t, Authorize(employee))

	assert.ErrorIs(t, Authorize(employee, RoleAdmin, RoleHR), ErrInsufficientRole)
	assert.ErrorIs(t, Authorize(hr, RoleAdmin), ErrInsufficientRole)
}

func TestAuthorizeOwner(t *testing.T) {
	caller := Caller{ID: "u1", Role: RoleEmployee}

	assert.NoError(t, AuthorizeOwner(caller, "u1"))
	assert.ErrorIs(t, AuthorizeOwner(caller, "u2"), ErrNotOwner)
}

func TestRoleIsStaff(t *testing.T) {
	assert.True(t, RoleAdmin.IsStaff())
	assert.True(t, RoleHR.IsStaff())
	assert.False(t, RoleEmployee.IsStaff())
}

func TestAuthorizeStaffOrOwner(t *testing.T) {
	admin := Caller{ID: "u1", Role: RoleAdmin}
	hr := Caller{ID: "u2", Role: RoleHR}
	employee := Caller{ID: "u3", Role: RoleEmployee}

	// staff see everything
	assert.NoError(t, AuthorizeStaffOrOwner(admin, "someone-else"))
	assert.NoError(t, AuthorizeStaffOrOwner(hr, "someone-else"))

	// employees only see their own
	assert.NoError(t, AuthorizeStaffOrOwner(employee, "u3"))
	assert.ErrorIs(t, AuthorizeStaffOrOwner(employee, "u1"), ErrNotOwner)
}
