package user

type Permission string

const (
	// Attendance recording (badge scanning, entry/exit, employee registry changes)
	PermissionAttendanceRecord Permission = "attendance.record"

	// Payroll reports
	PermissionReportsView Permission = "reports.view"

	// Operator user management
	PermissionUsersManage Permission = "users.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		PermissionAttendanceRecord,
		PermissionReportsView,
		PermissionUsersManage,
	},
	RoleAdmin: {
		PermissionAttendanceRecord,
		PermissionReportsView,
	},
	RoleScanner: {
		PermissionAttendanceRecord,
	},
	RoleViewer: {
		// Viewer only reads endpoints that require bare authentication
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
