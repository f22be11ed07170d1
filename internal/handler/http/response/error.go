package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/attendance"
	"github.com/tabacalera-hn/attendance-backend/internal/domain/auth"
	"github.com/tabacalera-hn/attendance-backend/internal/domain/employee"
	"github.com/tabacalera-hn/attendance-backend/internal/domain/user"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrUserInactive):
		Unauthorized(w, "User account is inactive")
	case errors.Is(err, auth.ErrCurrentPasswordWrong):
		BadRequest(w, "Current password is incorrect", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)
	case errors.Is(err, employee.ErrDNIExists):
		Conflict(w, "An employee with this DNI already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Employee already has an open entry for today")
	case errors.Is(err, attendance.ErrDayCompleted):
		Conflict(w, "Employee already completed attendance for today")
	case errors.Is(err, attendance.ErrNoOpenEntry):
		Conflict(w, "Employee has no open entry for today")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrSuperAdminImmutable):
		Forbidden(w, "The super admin account cannot be modified this way")

	// Default: never leak internals to the client
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
