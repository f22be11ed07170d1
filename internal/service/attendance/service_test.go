package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/attendance"
	"github.com/tabacalera-hn/attendance-backend/internal/domain/employee"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/clock"
)

type stubEmployeeRepo struct {
	employee.Repository
	employees map[int64]*employee.Employee
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	e, ok := s.employees[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return e, nil
}

type stubAttendanceRepo struct {
	attendance.Repository
	records map[string]*attendance.Record // key: date
	nextID  int64
}

func key(employeeID int64, date string) string {
	return fmt.Sprintf("%d/%s", employeeID, date)
}

func (s *stubAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date string) (*attendance.Record, error) {
	rec, ok := s.records[key(employeeID, date)]
	if !ok {
		return nil, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (s *stubAttendanceRepo) CreateEntry(ctx context.Context, employeeID int64, date string, entryTime time.Time) (*attendance.Record, error) {
	if _, ok := s.records[key(employeeID, date)]; ok {
		return nil, attendance.ErrAlreadyCheckedIn
	}
	s.nextID++
	d, _ := time.Parse("2006-01-02", date)
	rec := &attendance.Record{
		ID:         s.nextID,
		EmployeeID: employeeID,
		Date:       d,
		EntryTime:  &entryTime,
	}
	s.records[key(employeeID, date)] = rec
	return rec, nil
}

func (s *stubAttendanceRepo) CloseRecord(ctx context.Context, recordID int64, exitTime time.Time, despalillo, escogida, monado, hoursExtra float64) (*attendance.Record, error) {
	for _, rec := range s.records {
		if rec.ID == recordID && rec.ExitTime == nil {
			rec.ExitTime = &exitTime
			rec.Despalillo = despalillo
			rec.Escogida = escogida
			rec.Monado = monado
			rec.HoursExtra = hoursExtra
			return rec, nil
		}
	}
	return nil, attendance.ErrNoOpenEntry
}

func passThroughTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService() (*Service, *stubAttendanceRepo) {
	production := &employee.Employee{
		ID: 1, Name: "Maria Lopez", DNI: "0801199012345",
		Type: employee.TypeProduction, IsActive: true,
	}
	salaried := &employee.Employee{
		ID: 2, Name: "Juan Perez", DNI: "0801198554321",
		Type: employee.TypeSalaried, MonthlySalary: 9000, IsActive: true,
	}
	inactive := &employee.Employee{
		ID: 3, Name: "Baja Definitiva", DNI: "0801197000000",
		Type: employee.TypeProduction, IsActive: false,
	}

	attRepo := &stubAttendanceRepo{records: make(map[string]*attendance.Record)}
	empRepo := &stubEmployeeRepo{employees: map[int64]*employee.Employee{
		1: production, 2: salaried, 3: inactive,
	}}
	fixed := clock.Fixed{T: time.Date(2024, 3, 13, 7, 30, 0, 0, clock.Zone)}

	return NewService(attRepo, empRepo, fixed, passThroughTx), attRepo
}

func TestRecordEntry(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.RecordEntry(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-13", resp.Date)
	assert.Equal(t, "Maria Lopez", resp.EmployeeName)
	assert.True(t, resp.IsWorking)
	assert.Equal(t, "working", resp.Status)
	assert.Equal(t, "En Trabajo", resp.StatusText)
	require.NotNil(t, resp.EntryTimeDisplay)
	assert.Equal(t, "07:30", *resp.EntryTimeDisplay)
}

func TestRecordEntryConflicts(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.RecordEntry(ctx, 1)
	require.NoError(t, err)

	// Second entry while still open
	_, err = svc.RecordEntry(ctx, 1)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	// Entry after the day was completed
	_, err = svc.RecordExit(ctx, attendance.ExitRequest{EmployeeID: 1})
	require.NoError(t, err)
	_, err = svc.RecordEntry(ctx, 1)
	assert.ErrorIs(t, err, attendance.ErrDayCompleted)
}

func TestRecordEntryInactiveEmployee(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.RecordEntry(context.Background(), 3)
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestRecordEntryUnknownEmployee(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.RecordEntry(context.Background(), 99)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRecordExitWithoutEntry(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.RecordExit(context.Background(), attendance.ExitRequest{EmployeeID: 1})
	assert.ErrorIs(t, err, attendance.ErrNoOpenEntry)
}

func TestRecordExitFiltersQuantitiesByType(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.RecordEntry(ctx, 1)
	require.NoError(t, err)
	_, err = svc.RecordEntry(ctx, 2)
	require.NoError(t, err)

	f := func(v float64) *float64 { return &v }

	// Production employee: hours_extra is ignored
	prod, err := svc.RecordExit(ctx, attendance.ExitRequest{
		EmployeeID: 1,
		Despalillo: f(10), Escogida: f(5), Monado: f(20), HoursExtra: f(3),
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, prod.Despalillo)
	assert.Equal(t, 5.0, prod.Escogida)
	assert.Equal(t, 20.0, prod.Monado)
	assert.Equal(t, 0.0, prod.HoursExtra)
	assert.Equal(t, "Completado", prod.StatusText)
	assert.False(t, prod.IsWorking)

	// Salaried employee: piece counts are ignored
	sal, err := svc.RecordExit(ctx, attendance.ExitRequest{
		EmployeeID: 2,
		Despalillo: f(10), HoursExtra: f(4),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, sal.Despalillo)
	assert.Equal(t, 4.0, sal.HoursExtra)
}

func TestRecordExitNegativeCoercedToZero(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.RecordEntry(ctx, 2)
	require.NoError(t, err)

	neg := -2.0
	resp, err := svc.RecordExit(ctx, attendance.ExitRequest{EmployeeID: 2, HoursExtra: &neg})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.HoursExtra)
}

func TestRecordExitTwice(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.RecordEntry(ctx, 1)
	require.NoError(t, err)
	_, err = svc.RecordExit(ctx, attendance.ExitRequest{EmployeeID: 1})
	require.NoError(t, err)

	_, err = svc.RecordExit(ctx, attendance.ExitRequest{EmployeeID: 1})
	assert.ErrorIs(t, err, attendance.ErrNoOpenEntry)
}
