package user

import "errors"

// User domain errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameExists      = errors.New("username already exists")
	ErrInvalidRole         = errors.New("invalid role")
	ErrSuperAdminImmutable = errors.New("the super admin account cannot be deleted")
	ErrAccessDenied        = errors.New("access denied")
)
