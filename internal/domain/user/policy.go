package user

// Caller is the authenticated identity performing an operation.
type Caller struct {
	ID   string
	Role Role
}

// Authorize allows the caller when its role is in the required set. With an
// empty set any authenticated caller is allowed. Pure and stateless: the HTTP
// middleware and the services evaluate access through this one function.
func Authorize(caller Caller, required ...Role) error {
	if len(required) == 0 {
		return nil
	}
	for _, role := range required {
		if caller.Role == role {
			return nil
		}
	}
	return ErrInsufficientRole
}

// AuthorizeOwner allows the caller when it owns the resource.
func AuthorizeOwner(caller Caller, ownerID string) error {
	if caller.ID != ownerID {
		return ErrNotOwner
	}
	return nil
}

// AuthorizeStaffOrOwner allows admin/hr callers, or the resource owner.
// Used for reads where staff have cross-user visibility by policy.
func AuthorizeStaffOrOwner(caller Caller, ownerID string) error {
	if caller.Role.IsStaff() {
		return nil
	}
	return AuthorizeOwner(caller, ownerID)
}
