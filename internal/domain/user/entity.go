package user

import "time"

type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleScanner    Role = "scanner"
	RoleViewer     Role = "viewer"
)

// AllowedRoles lists every role assignable through the users API.
var AllowedRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleScanner, RoleViewer}

func IsValidRole(r Role) bool {
	for _, role := range AllowedRoles {
		if role == r {
			return true
		}
	}
	return false
}

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	FullName     string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
