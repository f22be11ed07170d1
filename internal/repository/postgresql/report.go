package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/report"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepository{db: db}
}

const rawRowQuery = `
	SELECT a.id, a.employee_id, e.name, e.dni, e.type, e.monthly_salary,
	       to_char(a.date, 'YYYY-MM-DD'), a.entry_time, a.exit_time,
	       a.despalillo, a.escogida, a.monado, a.hours_extra
	FROM attendance_records a
	JOIN employees e ON e.id = a.employee_id
`

func scanRawRows(rows pgx.Rows) ([]report.RawRow, error) {
	defer rows.Close()

	var out []report.RawRow
	for rows.Next() {
		var r report.RawRow
		if err := rows.Scan(
			&r.RecordID, &r.EmployeeID, &r.EmployeeName, &r.EmployeeDNI,
			&r.EmployeeType, &r.MonthlySalary, &r.Date, &r.EntryTime, &r.ExitTime,
			&r.Despalillo, &r.Escogida, &r.Monado, &r.HoursExtra,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// RangeData implements report.Repository. All four queries run inside one
// read-only transaction so the report is internally consistent.
func (r *reportRepository) RangeData(ctx context.Context, startDate, endDate string) (*report.RangeData, error) {
	tx, err := r.db.BeginReadTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin report transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	data := &report.RangeData{}

	rows, err := tx.Query(ctx,
		rawRowQuery+` WHERE a.date BETWEEN $1 AND $2 ORDER BY e.name ASC, a.date ASC`,
		startDate, endDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query report rows: %w", err)
	}
	data.Rows, err = scanRawRows(rows)
	if err != nil {
		return nil, err
	}

	dayRows, err := tx.Query(ctx, `
		SELECT to_char(date, 'YYYY-MM-DD'), COUNT(*)
		FROM attendance_records
		WHERE date BETWEEN $1 AND $2
		GROUP BY date
		ORDER BY date ASC
	`, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query day counts: %w", err)
	}
	for dayRows.Next() {
		var dc report.DayCount
		if err := dayRows.Scan(&dc.Date, &dc.Count); err != nil {
			dayRows.Close()
			return nil, fmt.Errorf("failed to scan day count: %w", err)
		}
		data.SummaryByDay = append(data.SummaryByDay, dc)
	}
	dayRows.Close()
	if err := dayRows.Err(); err != nil {
		return nil, err
	}

	err = tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(a.despalillo), 0), COALESCE(SUM(a.escogida), 0), COALESCE(SUM(a.monado), 0)
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date BETWEEN $1 AND $2 AND e.type = 'produccion'
	`, startDate, endDate).Scan(
		&data.ProductionTotals.Despalillo,
		&data.ProductionTotals.Escogida,
		&data.ProductionTotals.Monado,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query production totals: %w", err)
	}

	err = tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(a.hours_extra), 0)
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date BETWEEN $1 AND $2 AND e.type = 'aldia'
	`, startDate, endDate).Scan(&data.SalariedTotals.HoursExtra)
	if err != nil {
		return nil, fmt.Errorf("failed to query salaried totals: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit report transaction: %w", err)
	}

	return data, nil
}

// RowsByDate implements report.Repository.
func (r *reportRepository) RowsByDate(ctx context.Context, date string) ([]report.RawRow, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, rawRowQuery+` WHERE a.date = $1 ORDER BY e.name ASC`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily report rows: %w", err)
	}

	return scanRawRows(rows)
}

// PendingEntry implements report.Repository.
func (r *reportRepository) PendingEntry(ctx context.Context, date string) ([]report.PendingEmployee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT e.id, e.name, e.dni, e.type
		FROM employees e
		WHERE e.is_active = true
		  AND NOT EXISTS (
		      SELECT 1 FROM attendance_records a
		      WHERE a.employee_id = e.id AND a.date = $1
		  )
		ORDER BY e.name ASC
	`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending entries: %w", err)
	}

	return scanPendingEmployees(rows)
}

// PendingExit implements report.Repository.
func (r *reportRepository) PendingExit(ctx context.Context, date string) ([]report.PendingEmployee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT e.id, e.name, e.dni, e.type
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1 AND a.exit_time IS NULL
		ORDER BY e.name ASC
	`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending exits: %w", err)
	}

	return scanPendingEmployees(rows)
}

func scanPendingEmployees(rows pgx.Rows) ([]report.PendingEmployee, error) {
	defer rows.Close()

	var out []report.PendingEmployee
	for rows.Next() {
		var p report.PendingEmployee
		if err := rows.Scan(&p.EmployeeID, &p.EmployeeName, &p.EmployeeDNI, &p.EmployeeType); err != nil {
			return nil, fmt.Errorf("failed to scan pending employee: %w", err)
		}
		out = append(out, p)
	}

	return out, rows.Err()
}
