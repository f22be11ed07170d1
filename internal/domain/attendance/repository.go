package attendance

import (
	"context"
	"time"
)

type Repository interface {
	// GetByEmployeeAndDate returns the employee's record for one business
	// date, or ErrRecordNotFound.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date string) (*Record, error)

	// CreateEntry inserts a new open record for the date.
	CreateEntry(ctx context.Context, employeeID int64, date string, entryTime time.Time) (*Record, error)

	// CloseRecord sets the exit timestamp and quantities on an open record.
	CloseRecord(ctx context.Context, recordID int64, exitTime time.Time, despalillo, escogida, monado, hoursExtra float64) (*Record, error)

	// ListByDate returns all records for a date joined to employees,
	// ordered by employee name.
	ListByDate(ctx context.Context, date string) ([]Record, error)
}
