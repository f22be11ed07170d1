package attendance

import "errors"

// Attendance domain errors
var (
	// Entry errors
	ErrAlreadyCheckedIn = errors.New("employee already has an open entry for today")
	ErrDayCompleted     = errors.New("employee already completed attendance for today")

	// Exit errors
	ErrNoOpenEntry = errors.New("employee has no open entry for today")

	ErrRecordNotFound = errors.New("attendance record not found")
)
