package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/attendance"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// GetByEmployeeAndDate implements attendance.Repository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date string) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, entry_time, exit_time,
		       despalillo, escogida, monado, hours_extra,
		       created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.EntryTime, &rec.ExitTime,
		&rec.Despalillo, &rec.Escogida, &rec.Monado, &rec.HoursExtra,
		&rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &rec, nil
}

// CreateEntry implements attendance.Repository.
func (r *attendanceRepository) CreateEntry(ctx context.Context, employeeID int64, date string, entryTime time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (employee_id, date, entry_time)
		VALUES ($1, $2, $3)
		RETURNING id, employee_id, date, entry_time, exit_time,
		          despalillo, escogida, monado, hours_extra,
		          created_at, updated_at
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, employeeID, date, entryTime).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.EntryTime, &rec.ExitTime,
		&rec.Despalillo, &rec.Escogida, &rec.Monado, &rec.HoursExtra,
		&rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		// The unique (employee_id, date) index turns a same-day race into
		// a conflict instead of a duplicate row.
		if isUniqueViolation(err) {
			return nil, attendance.ErrAlreadyCheckedIn
		}
		return nil, fmt.Errorf("failed to create attendance entry: %w", err)
	}

	return &rec, nil
}

// CloseRecord implements attendance.Repository.
func (r *attendanceRepository) CloseRecord(ctx context.Context, recordID int64, exitTime time.Time, despalillo, escogida, monado, hoursExtra float64) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET exit_time = $1, despalillo = $2, escogida = $3, monado = $4,
		    hours_extra = $5, updated_at = NOW()
		WHERE id = $6 AND exit_time IS NULL
		RETURNING id, employee_id, date, entry_time, exit_time,
		          despalillo, escogida, monado, hours_extra,
		          created_at, updated_at
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, exitTime, despalillo, escogida, monado, hoursExtra, recordID).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.EntryTime, &rec.ExitTime,
		&rec.Despalillo, &rec.Escogida, &rec.Monado, &rec.HoursExtra,
		&rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrNoOpenEntry
		}
		return nil, fmt.Errorf("failed to close attendance record: %w", err)
	}

	return &rec, nil
}

// ListByDate implements attendance.Repository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.entry_time, a.exit_time,
		       a.despalillo, a.escogida, a.monado, a.hours_extra,
		       a.created_at, a.updated_at,
		       e.name, e.dni, e.type
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		ORDER BY e.name ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.EntryTime, &rec.ExitTime,
			&rec.Despalillo, &rec.Escogida, &rec.Monado, &rec.HoursExtra,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.EmployeeDNI, &rec.EmployeeType,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
