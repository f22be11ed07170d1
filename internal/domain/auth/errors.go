package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token expired")
	ErrUserInactive         = errors.New("user account is inactive")
	ErrCurrentPasswordWrong = errors.New("current password is incorrect")
)
