package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/attendance"
	"github.com/tabacalera-hn/attendance-backend/internal/domain/employee"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/clock"
)

// TxRunner executes fn atomically. Satisfied by the postgresql
// transaction helper; tests plug in a pass-through.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

type Service struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	clock          clock.Clock
	inTx           TxRunner
}

func NewService(attendanceRepo attendance.Repository, employeeRepo employee.Repository, clk clock.Clock, inTx TxRunner) *Service {
	return &Service{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		clock:          clk,
		inTx:           inTx,
	}
}

// RecordEntry opens the employee's working day. An existing record for
// today is a conflict, open or closed.
func (s *Service) RecordEntry(ctx context.Context, employeeID int64) (*attendance.Response, error) {
	now := s.clock.Now()
	today := clock.Today(s.clock)

	var rec *attendance.Record
	err := s.inTx(ctx, func(ctx context.Context) error {
		emp, err := s.employeeRepo.GetByID(ctx, employeeID)
		if err != nil {
			return err
		}
		if !emp.IsActive {
			return employee.ErrEmployeeInactive
		}

		existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
		if err != nil && !errors.Is(err, attendance.ErrRecordNotFound) {
			return err
		}
		if existing != nil {
			if existing.IsOpen() {
				return attendance.ErrAlreadyCheckedIn
			}
			return attendance.ErrDayCompleted
		}

		rec, err = s.attendanceRepo.CreateEntry(ctx, employeeID, today, now)
		if err != nil {
			return err
		}

		rec.EmployeeName = &emp.Name
		rec.EmployeeDNI = &emp.DNI
		empType := string(emp.Type)
		rec.EmployeeType = &empType
		return nil
	})
	if err != nil {
		return nil, err
	}

	return mapRecordToResponse(rec), nil
}

// RecordExit closes today's open record. Quantity fields that do not
// apply to the employee's type are stored as zero, never rejected.
func (s *Service) RecordExit(ctx context.Context, req attendance.ExitRequest) (*attendance.Response, error) {
	now := s.clock.Now()
	today := clock.Today(s.clock)

	var rec *attendance.Record
	err := s.inTx(ctx, func(ctx context.Context) error {
		emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return err
		}

		existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
		if err != nil {
			if errors.Is(err, attendance.ErrRecordNotFound) {
				return attendance.ErrNoOpenEntry
			}
			return err
		}
		if !existing.IsOpen() {
			return attendance.ErrNoOpenEntry
		}

		despalillo, escogida, monado, hoursExtra := filterQuantities(emp.Type, req)

		rec, err = s.attendanceRepo.CloseRecord(ctx, existing.ID, now, despalillo, escogida, monado, hoursExtra)
		if err != nil {
			return err
		}

		rec.EmployeeName = &emp.Name
		rec.EmployeeDNI = &emp.DNI
		empType := string(emp.Type)
		rec.EmployeeType = &empType
		return nil
	})
	if err != nil {
		return nil, err
	}

	return mapRecordToResponse(rec), nil
}

// TodayAttendance lists all of today's records with display fields.
func (s *Service) TodayAttendance(ctx context.Context) ([]attendance.Response, error) {
	today := clock.Today(s.clock)

	records, err := s.attendanceRepo.ListByDate(ctx, today)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.Response, 0, len(records))
	for i := range records {
		responses = append(responses, *mapRecordToResponse(&records[i]))
	}

	return responses, nil
}

// filterQuantities keeps only the quantities relevant to the employee's
// compensation scheme, coercing the rest (and negatives) to zero.
func filterQuantities(empType employee.Type, req attendance.ExitRequest) (despalillo, escogida, monado, hoursExtra float64) {
	if empType == employee.TypeProduction {
		despalillo = floatValue(req.Despalillo)
		escogida = floatValue(req.Escogida)
		monado = floatValue(req.Monado)
	} else {
		hoursExtra = floatValue(req.HoursExtra)
	}
	return
}

func floatValue(v *float64) float64 {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}

func timePtrToDisplay(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.In(clock.Zone).Format("15:04")
	return &s
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.In(clock.Zone).Format(time.RFC3339)
	return &s
}

func mapRecordToResponse(rec *attendance.Record) *attendance.Response {
	resp := &attendance.Response{
		ID:               rec.ID,
		EmployeeID:       rec.EmployeeID,
		Date:             rec.Date.Format("2006-01-02"),
		EntryTime:        timePtrToString(rec.EntryTime),
		ExitTime:         timePtrToString(rec.ExitTime),
		EntryTimeDisplay: timePtrToDisplay(rec.EntryTime),
		ExitTimeDisplay:  timePtrToDisplay(rec.ExitTime),
		Despalillo:       rec.Despalillo,
		Escogida:         rec.Escogida,
		Monado:           rec.Monado,
		HoursExtra:       rec.HoursExtra,
		IsWorking:        rec.IsOpen(),
	}

	if rec.EmployeeName != nil {
		resp.EmployeeName = *rec.EmployeeName
	}
	if rec.EmployeeDNI != nil {
		resp.EmployeeDNI = *rec.EmployeeDNI
	}
	if rec.EmployeeType != nil {
		resp.EmployeeType = *rec.EmployeeType
	}

	if rec.IsOpen() {
		resp.Status = "working"
		resp.StatusText = "En Trabajo"
	} else {
		resp.Status = "completed"
		resp.StatusText = "Completado"
	}

	return resp
}
