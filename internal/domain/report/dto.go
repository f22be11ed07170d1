package report

import (
	"time"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/payroll"
)

// RawRow is one attendance record joined to its employee, as read for a
// reporting range. Open and closed records both appear.
type RawRow struct {
	RecordID      int64
	EmployeeID    int64
	EmployeeName  string
	EmployeeDNI   string
	EmployeeType  string
	MonthlySalary float64
	Date          string
	EntryTime     *time.Time
	ExitTime      *time.Time
	Despalillo    float64
	Escogida      float64
	Monado        float64
	HoursExtra    float64
}

// DayCount is the number of attendance records per calendar date.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// QuantityTotals sums the type-specific quantities over a range.
type QuantityTotals struct {
	Despalillo float64 `json:"despalillo"`
	Escogida   float64 `json:"escogida"`
	Monado     float64 `json:"monado"`
	HoursExtra float64 `json:"hours_extra"`
}

// ProductionEntry is one production employee's payroll line in the
// weekly report.
type ProductionEntry struct {
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	EmployeeDNI  string  `json:"employee_dni"`
	DaysWorked   int     `json:"days_worked"`
	Despalillo   float64 `json:"despalillo"`
	Escogida     float64 `json:"escogida"`
	Monado       float64 `json:"monado"`
	payroll.ProductionPay
}

// SalariedEntry is one salaried employee's payroll line.
type SalariedEntry struct {
	EmployeeID    int64   `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	EmployeeDNI   string  `json:"employee_dni"`
	MonthlySalary float64 `json:"monthly_salary"`
	DaysWorked    int     `json:"days_worked"`
	HoursExtra    float64 `json:"hours_extra"`
	payroll.SalariedPay
}

// Summary heads the weekly report.
type Summary struct {
	EmployeeCount     int     `json:"employee_count"`
	ProductionCount   int     `json:"production_count"`
	SalariedCount     int     `json:"salaried_count"`
	ProductionPayroll float64 `json:"production_payroll"`
	SalariedPayroll   float64 `json:"salaried_payroll"`
	TotalPayroll      float64 `json:"total_payroll"`
	TotalRecords      int     `json:"total_records"`
}

// WeeklyReport groups a date range's payroll by employee. Only employees
// with at least one attendance record in the range appear.
type WeeklyReport struct {
	StartDate        string            `json:"start_date"`
	EndDate          string            `json:"end_date"`
	Summary          Summary           `json:"summary"`
	Production       []ProductionEntry `json:"production"`
	Salaried         []SalariedEntry   `json:"salaried"`
	SummaryByDay     []DayCount        `json:"summary_by_day"`
	ProductionTotals QuantityTotals    `json:"production_totals"`
	SalariedTotals   QuantityTotals    `json:"salaried_totals"`
}

// DailyRow is one record of the single-date report.
type DailyRow struct {
	RecordID     int64   `json:"record_id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	EmployeeDNI  string  `json:"employee_dni"`
	EmployeeType string  `json:"employee_type"`
	Date         string  `json:"date"`
	EntryTime    *string `json:"entry_time"`
	ExitTime     *string `json:"exit_time"`
	Despalillo   float64 `json:"despalillo"`
	Escogida     float64 `json:"escogida"`
	Monado       float64 `json:"monado"`
	HoursExtra   float64 `json:"hours_extra"`
}

// PendingEmployee is an active employee missing an action for the day.
type PendingEmployee struct {
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	EmployeeDNI  string `json:"employee_dni"`
	EmployeeType string `json:"employee_type"`
}

// DashboardDaily feeds the per-day operations screen.
type DashboardDaily struct {
	Date             string            `json:"date"`
	Attendance       []DailyRow        `json:"attendance"`
	PendingEntry     []PendingEmployee `json:"pending_entry"`
	PendingExit      []PendingEmployee `json:"pending_exit"`
	ProductionTotals QuantityTotals    `json:"production_totals"`
	SalariedTotals   QuantityTotals    `json:"salaried_totals"`
}
