package dashboard

import "context"

type Repository interface {
	CountActiveEmployees(ctx context.Context) (int, error)
	CountAttendanceByDate(ctx context.Context, date string) (int, error)
	CountPendingExits(ctx context.Context, date string) (int, error)

	// WeekActivity returns distinct employees seen and total worked hours
	// (1 decimal) for closed records in [startDate, endDate].
	WeekActivity(ctx context.Context, startDate, endDate string) (employees int, hours float64, err error)

	// RecentActivity returns the latest movements for the date, newest first.
	RecentActivity(ctx context.Context, date string, limit int) ([]Activity, error)
}
