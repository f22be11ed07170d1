package employee

import "time"

type CreateRequest struct {
	Name          string   `json:"name"`
	DNI           string   `json:"dni"`
	Type          string   `json:"type"`
	MonthlySalary *float64 `json:"monthly_salary"`
	Area          *string  `json:"area"`
}

// UpdateRequest uses pointers so absent fields are left untouched.
type UpdateRequest struct {
	Name          *string  `json:"name"`
	DNI           *string  `json:"dni"`
	Type          *string  `json:"type"`
	MonthlySalary *float64 `json:"monthly_salary"`
	Area          *string  `json:"area"`
	IsActive      *bool    `json:"is_active"`
}

type Response struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	DNI           string    `json:"dni"`
	Type          string    `json:"type"`
	MonthlySalary float64   `json:"monthly_salary"`
	Area          *string   `json:"area"`
	PhotoURL      *string   `json:"photo_url"`
	QRCodeURL     *string   `json:"qr_code_url"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// StatsResponse reports the employee's accrued pay for the current period:
// the calendar month for production workers, the calendar week for salaried.
type StatsResponse struct {
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Type         string  `json:"type"`
	PeriodStart  string  `json:"period_start"`
	PeriodEnd    string  `json:"period_end"`
	DaysWorked   int     `json:"days_worked"`
	Despalillo   float64 `json:"despalillo,omitempty"`
	Escogida     float64 `json:"escogida,omitempty"`
	Monado       float64 `json:"monado,omitempty"`
	HoursExtra   float64 `json:"hours_extra,omitempty"`
	NetPay       float64 `json:"net_pay"`
}
