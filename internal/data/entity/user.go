package entity

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// ParseRole maps a raw role string onto the closed role set.
// Anything outside the set is rejected rather than compared ad hoc.
func ParseRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleUser:
		return RoleUser, true
	default:
		return "", false
	}
}

// IsAdmin reports whether the role grants admin access.
func (r UserRole) IsAdmin() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleUser:
		return false
	default:
		return false
	}
}

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}
