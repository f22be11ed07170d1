package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name       string
		role       Role
		permission Permission
		want       bool
	}{
		{"super admin views reports", RoleSuperAdmin, PermissionReportsView, true},
		{"super admin manages users", RoleSuperAdmin, PermissionUsersManage, true},
		{"admin views reports", RoleAdmin, PermissionReportsView, true},
		{"admin cannot manage users", RoleAdmin, PermissionUsersManage, false},
		{"scanner records attendance", RoleScanner, PermissionAttendanceRecord, true},
		{"scanner cannot view reports", RoleScanner, PermissionReportsView, false},
		{"viewer cannot view reports", RoleViewer, PermissionReportsView, false},
		{"viewer cannot record attendance", RoleViewer, PermissionAttendanceRecord, false},
		{"unknown role has nothing", Role("ghost"), PermissionReportsView, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, tt.permission))
		})
	}
}

func TestIsValidRole(t *testing.T) {
	for _, r := range AllowedRoles {
		assert.True(t, IsValidRole(r))
	}
	assert.False(t, IsValidRole(Role("root")))
}
