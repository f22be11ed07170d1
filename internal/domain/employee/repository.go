package employee

import (
	"context"
	"time"
)

// PeriodTotals aggregates closed attendance rows inside a stats window.
type PeriodTotals struct {
	DaysWorked int
	Despalillo float64
	Escogida   float64
	Monado     float64
	HoursExtra float64
}

type Repository interface {
	Create(ctx context.Context, e *Employee) (*Employee, error)
	GetByID(ctx context.Context, id int64) (*Employee, error)
	GetByDNI(ctx context.Context, dni string) (*Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, e *Employee) (*Employee, error)
	SoftDelete(ctx context.Context, id int64) error

	// PeriodTotals sums completed attendance rows for one employee in
	// [start, end). Open rows are excluded.
	PeriodTotals(ctx context.Context, employeeID int64, start, end time.Time) (*PeriodTotals, error)
}
