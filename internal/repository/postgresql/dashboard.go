package postgresql

import (
	"context"
	"fmt"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/dashboard"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepository{db: db}
}

// CountActiveEmployees implements dashboard.Repository.
func (r *dashboardRepository) CountActiveEmployees(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE is_active = true`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}
	return count, nil
}

// CountAttendanceByDate implements dashboard.Repository.
func (r *dashboardRepository) CountAttendanceByDate(ctx context.Context, date string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance_records WHERE date = $1`, date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}
	return count, nil
}

// CountPendingExits implements dashboard.Repository.
func (r *dashboardRepository) CountPendingExits(ctx context.Context, date string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance_records WHERE date = $1 AND exit_time IS NULL`,
		date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending exits: %w", err)
	}
	return count, nil
}

// WeekActivity implements dashboard.Repository.
func (r *dashboardRepository) WeekActivity(ctx context.Context, startDate, endDate string) (int, float64, error) {
	q := GetQuerier(ctx, r.db)

	var employees int
	var hours float64
	err := q.QueryRow(ctx, `
		SELECT COUNT(DISTINCT employee_id),
		       COALESCE(ROUND(SUM(EXTRACT(EPOCH FROM (exit_time - entry_time)) / 3600)::numeric * 10) / 10, 0)
		FROM attendance_records
		WHERE date BETWEEN $1 AND $2
		  AND entry_time IS NOT NULL
		  AND exit_time IS NOT NULL
	`, startDate, endDate).Scan(&employees, &hours)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate week activity: %w", err)
	}

	return employees, hours, nil
}

// RecentActivity implements dashboard.Repository.
func (r *dashboardRepository) RecentActivity(ctx context.Context, date string, limit int) ([]dashboard.Activity, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT a.id, a.employee_id, e.name, e.type,
		       to_char(a.entry_time AT TIME ZONE 'America/Tegucigalpa', 'HH24:MI'),
		       to_char(a.exit_time AT TIME ZONE 'America/Tegucigalpa', 'HH24:MI')
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		ORDER BY a.updated_at DESC
		LIMIT $2
	`, date, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent activity: %w", err)
	}
	defer rows.Close()

	var activity []dashboard.Activity
	for rows.Next() {
		var a dashboard.Activity
		if err := rows.Scan(&a.RecordID, &a.EmployeeID, &a.EmployeeName, &a.EmployeeType,
			&a.EntryTime, &a.ExitTime); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activity = append(activity, a)
	}

	return activity, rows.Err()
}
