package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/employee"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, name, dni, type, monthly_salary, area, photo_url, qr_code_url,
	is_active, created_at, updated_at
`

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.DNI, &e.Type, &e.MonthlySalary, &e.Area,
		&e.PhotoURL, &e.QRCodeURL, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create implements employee.Repository.
func (r *employeeRepository) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (name, dni, type, monthly_salary, area, photo_url, qr_code_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.Name, e.DNI, e.Type, e.MonthlySalary, e.Area, e.PhotoURL, e.QRCodeURL,
	).Scan(&e.ID, &e.IsActive, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, employee.ErrDNIExists
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

// GetByID implements employee.Repository.
func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND is_active = true`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

// GetByDNI implements employee.Repository.
func (r *employeeRepository) GetByDNI(ctx context.Context, dni string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE dni = $1 AND is_active = true`

	e, err := scanEmployee(q.QueryRow(ctx, query, dni))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by dni: %w", err)
	}

	return e, nil
}

// ListActive implements employee.Repository.
func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE is_active = true ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.Name, &e.DNI, &e.Type, &e.MonthlySalary, &e.Area,
			&e.PhotoURL, &e.QRCodeURL, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// Update implements employee.Repository.
func (r *employeeRepository) Update(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $1, dni = $2, type = $3, monthly_salary = $4, area = $5,
		    photo_url = $6, qr_code_url = $7, is_active = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		e.Name, e.DNI, e.Type, e.MonthlySalary, e.Area,
		e.PhotoURL, e.QRCodeURL, e.IsActive, e.ID,
	).Scan(&e.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		if isUniqueViolation(err) {
			return nil, employee.ErrDNIExists
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return e, nil
}

// SoftDelete implements employee.Repository.
func (r *employeeRepository) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET is_active = false, updated_at = NOW() WHERE id = $1 AND is_active = true`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// PeriodTotals implements employee.Repository.
func (r *employeeRepository) PeriodTotals(ctx context.Context, employeeID int64, start, end time.Time) (*employee.PeriodTotals, error) {
	q := GetQuerier(ctx, r.db)

	// Only completed records count toward period accruals.
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(despalillo), 0),
		       COALESCE(SUM(escogida), 0),
		       COALESCE(SUM(monado), 0),
		       COALESCE(SUM(hours_extra), 0)
		FROM attendance_records
		WHERE employee_id = $1
		  AND date >= $2 AND date < $3
		  AND exit_time IS NOT NULL
	`

	var t employee.PeriodTotals
	err := q.QueryRow(ctx, query, employeeID, start.Format("2006-01-02"), end.Format("2006-01-02")).Scan(
		&t.DaysWorked, &t.Despalillo, &t.Escogida, &t.Monado, &t.HoursExtra,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate period totals: %w", err)
	}

	return &t, nil
}
