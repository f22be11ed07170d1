package attendance

import "time"

type Record struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	EntryTime  *time.Time
	ExitTime   *time.Time
	Despalillo float64
	Escogida   float64
	Monado     float64
	HoursExtra float64
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined employee columns
	EmployeeName *string
	EmployeeDNI  *string
	EmployeeType *string
}

// IsOpen reports whether the employee clocked in but has not clocked out.
func (r *Record) IsOpen() bool {
	return r.EntryTime != nil && r.ExitTime == nil
}

// IsClosed reports whether the working day is complete.
func (r *Record) IsClosed() bool {
	return r.EntryTime != nil && r.ExitTime != nil
}
