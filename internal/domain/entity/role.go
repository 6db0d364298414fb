// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a caller can have in the system.
type Role string

const (
	// RoleUser indicates a regular user who only sees their own scans.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator with read and delete rights
	// over every scan record.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role carries administrator rights.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
