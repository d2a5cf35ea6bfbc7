package domain

import "time"

// Role is the closed set of principal roles. Access decisions switch
// exhaustively over it so a new role cannot silently inherit behavior.
type Role string

const (
	// RoleAdmin has blanket access to every event
	RoleAdmin Role = "admin"
	// RoleStaff has blanket access to every event
	RoleStaff Role = "staff"
	// RolePlanner has blanket access to every event
	RolePlanner Role = "planner"
	// RoleCouple only accesses events it created
	RoleCouple Role = "couple"
)

// IsValid checks if the role is one of the defined roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RolePlanner, RoleCouple:
		return true
	default:
		return false
	}
}

// BypassesOwnership reports whether the role grants access to events
// regardless of who created them
func (r Role) BypassesOwnership() bool {
	switch r {
	case RoleAdmin, RoleStaff, RolePlanner:
		return true
	case RoleCouple:
		return false
	default:
		return false
	}
}

// User represents an authenticated account
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Principal is the authenticated actor attached to a request
type Principal struct {
	UserID    int64
	Email     string
	Role      Role
	SessionID string
}

// CanAccess reports whether the principal may act on the given event
func (p Principal) CanAccess(e *Event) bool {
	if e == nil {
		return false
	}
	if p.Role.BypassesOwnership() {
		return true
	}
	return e.CreatedBy == p.UserID
}
