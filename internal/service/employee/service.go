package employee

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/employee"
	"github.com/tabacalera-hn/attendance-backend/internal/domain/payroll"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/clock"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/qr"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/storage"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/validator"
)

type Service struct {
	employeeRepo employee.Repository
	storage      storage.FileStorage
	clock        clock.Clock
}

func NewService(employeeRepo employee.Repository, fileStorage storage.FileStorage, clk clock.Clock) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		storage:      fileStorage,
		clock:        clk,
	}
}

// List returns all active employees, name-ordered.
func (s *Service) List(ctx context.Context) ([]employee.Response, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.Response, 0, len(employees))
	for i := range employees {
		responses = append(responses, *mapEmployeeToResponse(&employees[i]))
	}

	return responses, nil
}

// Get returns one active employee.
func (s *Service) Get(ctx context.Context, id int64) (*employee.Response, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapEmployeeToResponse(emp), nil
}

// Create registers an employee and generates their badge QR code.
func (s *Service) Create(ctx context.Context, req employee.CreateRequest) (*employee.Response, error) {
	if errs := validateCreate(req); len(errs) > 0 {
		return nil, errs
	}

	emp := &employee.Employee{
		Name: req.Name,
		DNI:  req.DNI,
		Type: employee.Type(req.Type),
		Area: req.Area,
	}
	if emp.Type == employee.TypeSalaried && req.MonthlySalary != nil {
		emp.MonthlySalary = *req.MonthlySalary
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return nil, err
	}

	// QR generation failure must not lose the already-created employee.
	if qrURL, qrErr := s.generateQR(ctx, created.ID); qrErr == nil {
		created.QRCodeURL = &qrURL
		created, err = s.employeeRepo.Update(ctx, created)
		if err != nil {
			return nil, err
		}
	}

	return mapEmployeeToResponse(created), nil
}

// Update applies a partial update. Absent fields keep their value; a DNI
// change regenerates the badge QR code.
func (s *Service) Update(ctx context.Context, id int64, req employee.UpdateRequest) (*employee.Response, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dniChanged := false

	if req.Name != nil {
		if validator.IsEmpty(*req.Name) {
			return nil, validator.ValidationErrors{{Field: "name", Message: "name is required"}}
		}
		emp.Name = *req.Name
	}
	if req.DNI != nil && *req.DNI != emp.DNI {
		if !validator.IsValidDNI(*req.DNI) {
			return nil, validator.ValidationErrors{{Field: "dni", Message: "dni must be exactly 13 digits"}}
		}
		emp.DNI = *req.DNI
		dniChanged = true
	}
	if req.Type != nil {
		t := employee.Type(*req.Type)
		if !employee.IsValidType(t) {
			return nil, validator.ValidationErrors{{Field: "type", Message: "type must be produccion or aldia"}}
		}
		emp.Type = t
	}
	if req.MonthlySalary != nil {
		if *req.MonthlySalary < 0 {
			return nil, validator.ValidationErrors{{Field: "monthly_salary", Message: "monthly_salary must not be negative"}}
		}
		emp.MonthlySalary = *req.MonthlySalary
	}
	if req.Area != nil {
		emp.Area = req.Area
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	if dniChanged {
		if qrURL, qrErr := s.generateQR(ctx, emp.ID); qrErr == nil {
			emp.QRCodeURL = &qrURL
		}
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return nil, err
	}

	return mapEmployeeToResponse(updated), nil
}

// Delete soft-deletes an employee, keeping attendance history intact.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.employeeRepo.SoftDelete(ctx, id)
}

// UploadPhoto stores the employee's badge photo and records its URL.
func (s *Service) UploadPhoto(ctx context.Context, id int64, file io.Reader, contentType string) (*employee.Response, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("photos/employee_%d.jpg", id)
	if _, err := s.storage.Upload(ctx, file, path, contentType); err != nil {
		return nil, fmt.Errorf("failed to store photo: %w", err)
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return nil, err
	}
	emp.PhotoURL = &url

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return nil, err
	}

	return mapEmployeeToResponse(updated), nil
}

// Stats reports the employee's accrued pay for their current period:
// the calendar month for production workers, the Monday-based calendar
// week for salaried. Only completed records count.
func (s *Service) Stats(ctx context.Context, id int64) (*employee.StatsResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	var start, end time.Time
	if emp.Type == employee.TypeProduction {
		start = clock.MonthStart(now)
		end = start.AddDate(0, 1, 0)
	} else {
		start = clock.WeekStart(now)
		end = start.AddDate(0, 0, 7)
	}

	totals, err := s.employeeRepo.PeriodTotals(ctx, id, start, end)
	if err != nil {
		return nil, err
	}

	stats := &employee.StatsResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Type:         string(emp.Type),
		PeriodStart:  start.Format("2006-01-02"),
		PeriodEnd:    end.AddDate(0, 0, -1).Format("2006-01-02"),
		DaysWorked:   totals.DaysWorked,
	}

	if emp.Type == employee.TypeProduction {
		stats.Despalillo = totals.Despalillo
		stats.Escogida = totals.Escogida
		stats.Monado = totals.Monado
		pay := payroll.CalculateProduction(payroll.ProductionInput{
			Despalillo: totals.Despalillo,
			Escogida:   totals.Escogida,
			Monado:     totals.Monado,
			DaysWorked: totals.DaysWorked,
		})
		stats.NetPay = pay.Net
	} else {
		stats.HoursExtra = totals.HoursExtra
		pay := payroll.CalculateSalaried(payroll.SalariedInput{
			MonthlySalary: emp.MonthlySalary,
			DaysWorked:    totals.DaysWorked,
			HoursExtra:    totals.HoursExtra,
		})
		stats.NetPay = pay.Net
	}

	return stats, nil
}

// generateQR renders and stores the employee's badge code. The QR
// payload is the numeric employee id, matching what scanners send to
// the attendance endpoints.
func (s *Service) generateQR(ctx context.Context, employeeID int64) (string, error) {
	png, err := qr.GenerateBadge(strconv.FormatInt(employeeID, 10))
	if err != nil {
		return "", fmt.Errorf("failed to generate qr code: %w", err)
	}

	path := fmt.Sprintf("qrcodes/employee_%d.png", employeeID)
	if _, err := s.storage.Upload(ctx, bytes.NewReader(png), path, "image/png"); err != nil {
		return "", fmt.Errorf("failed to store qr code: %w", err)
	}

	return s.storage.GetURL(ctx, path)
}

func validateCreate(req employee.CreateRequest) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(req.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidDNI(req.DNI) {
		errs = append(errs, validator.ValidationError{Field: "dni", Message: "dni must be exactly 13 digits"})
	}
	if !employee.IsValidType(employee.Type(req.Type)) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be produccion or aldia"})
	}
	if req.MonthlySalary != nil && *req.MonthlySalary < 0 {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "monthly_salary must not be negative"})
	}

	return errs
}

func mapEmployeeToResponse(e *employee.Employee) *employee.Response {
	return &employee.Response{
		ID:            e.ID,
		Name:          e.Name,
		DNI:           e.DNI,
		Type:          string(e.Type),
		MonthlySalary: e.MonthlySalary,
		Area:          e.Area,
		PhotoURL:      e.PhotoURL,
		QRCodeURL:     e.QRCodeURL,
		IsActive:      e.IsActive,
		CreatedAt:     e.CreatedAt,
	}
}
