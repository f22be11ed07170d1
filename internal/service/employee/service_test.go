package employee

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/employee"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/clock"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/validator"
)

type stubEmployeeRepo struct {
	employees map[int64]*employee.Employee
	totals    map[int64]*employee.PeriodTotals
	lastStart time.Time
	lastEnd   time.Time
	nextID    int64
}

func newStubRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{
		employees: make(map[int64]*employee.Employee),
		totals:    make(map[int64]*employee.PeriodTotals),
	}
}

func (s *stubEmployeeRepo) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	for _, existing := range s.employees {
		if existing.DNI == e.DNI && existing.IsActive {
			return nil, employee.ErrDNIExists
		}
	}
	s.nextID++
	e.ID = s.nextID
	e.IsActive = true
	s.employees[e.ID] = e
	return e, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	e, ok := s.employees[id]
	if !ok || !e.IsActive {
		return nil, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (s *stubEmployeeRepo) GetByDNI(ctx context.Context, dni string) (*employee.Employee, error) {
	for _, e := range s.employees {
		if e.DNI == dni && e.IsActive {
			return e, nil
		}
	}
	return nil, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range s.employees {
		if e.IsActive {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *stubEmployeeRepo) Update(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	s.employees[e.ID] = e
	return e, nil
}

func (s *stubEmployeeRepo) SoftDelete(ctx context.Context, id int64) error {
	e, ok := s.employees[id]
	if !ok || !e.IsActive {
		return employee.ErrEmployeeNotFound
	}
	e.IsActive = false
	return nil
}

func (s *stubEmployeeRepo) PeriodTotals(ctx context.Context, employeeID int64, start, end time.Time) (*employee.PeriodTotals, error) {
	s.lastStart, s.lastEnd = start, end
	if t, ok := s.totals[employeeID]; ok {
		return t, nil
	}
	return &employee.PeriodTotals{}, nil
}

type stubStorage struct {
	uploads map[string][]byte
}

func (s *stubStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	data, _ := io.ReadAll(file)
	if s.uploads == nil {
		s.uploads = make(map[string][]byte)
	}
	s.uploads[path] = data
	return path, nil
}

func (s *stubStorage) Delete(ctx context.Context, path string) error { return nil }

func (s *stubStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "http://localhost:5000/uploads/" + path, nil
}

func (s *stubStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := s.uploads[path]
	return ok, nil
}

func fixedClock() clock.Clock {
	// Wednesday, March 13th
	return clock.Fixed{T: time.Date(2024, 3, 13, 12, 0, 0, 0, clock.Zone)}
}

func TestCreateGeneratesQR(t *testing.T) {
	repo := newStubRepo()
	store := &stubStorage{}
	svc := NewService(repo, store, fixedClock())

	resp, err := svc.Create(context.Background(), employee.CreateRequest{
		Name: "Maria Lopez",
		DNI:  "0801199012345",
		Type: "produccion",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.QRCodeURL)
	assert.Contains(t, *resp.QRCodeURL, "qrcodes/employee_1.png")
	assert.NotEmpty(t, store.uploads["qrcodes/employee_1.png"])
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newStubRepo(), &stubStorage{}, fixedClock())

	_, err := svc.Create(context.Background(), employee.CreateRequest{
		Name: "", DNI: "123", Type: "gerencia",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	m := verrs.ToMap()
	assert.Contains(t, m, "name")
	assert.Contains(t, m, "dni")
	assert.Contains(t, m, "type")
}

func TestCreateDuplicateDNI(t *testing.T) {
	svc := NewService(newStubRepo(), &stubStorage{}, fixedClock())
	ctx := context.Background()

	_, err := svc.Create(ctx, employee.CreateRequest{Name: "A", DNI: "0801199012345", Type: "produccion"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, employee.CreateRequest{Name: "B", DNI: "0801199012345", Type: "aldia"})
	assert.ErrorIs(t, err, employee.ErrDNIExists)
}

func TestUpdateRegeneratesQROnDNIChange(t *testing.T) {
	repo := newStubRepo()
	store := &stubStorage{}
	svc := NewService(repo, store, fixedClock())
	ctx := context.Background()

	created, err := svc.Create(ctx, employee.CreateRequest{Name: "A", DNI: "0801199012345", Type: "produccion"})
	require.NoError(t, err)
	uploadsBefore := len(store.uploads)

	// Update without DNI change: no new QR upload
	name := "A. Renamed"
	_, err = svc.Update(ctx, created.ID, employee.UpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, uploadsBefore, len(store.uploads))

	// DNI change regenerates the badge
	delete(store.uploads, "qrcodes/employee_1.png")
	newDNI := "0801199099999"
	_, err = svc.Update(ctx, created.ID, employee.UpdateRequest{DNI: &newDNI})
	require.NoError(t, err)
	assert.NotEmpty(t, store.uploads["qrcodes/employee_1.png"])
}

func TestStatsProductionUsesMonthWindow(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, &stubStorage{}, fixedClock())
	ctx := context.Background()

	created, err := svc.Create(ctx, employee.CreateRequest{Name: "A", DNI: "0801199012345", Type: "produccion"})
	require.NoError(t, err)
	repo.totals[created.ID] = &employee.PeriodTotals{
		DaysWorked: 6, Despalillo: 10, Escogida: 5, Monado: 20,
	}

	stats, err := svc.Stats(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01", stats.PeriodStart)
	assert.Equal(t, "2024-03-31", stats.PeriodEnd)
	assert.Equal(t, 1489.09, stats.NetPay)
}

func TestStatsSalariedUsesWeekWindow(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, &stubStorage{}, fixedClock())
	ctx := context.Background()

	salary := 9000.0
	created, err := svc.Create(ctx, employee.CreateRequest{
		Name: "B", DNI: "0801198554321", Type: "aldia", MonthlySalary: &salary,
	})
	require.NoError(t, err)
	repo.totals[created.ID] = &employee.PeriodTotals{DaysWorked: 6, HoursExtra: 4}

	stats, err := svc.Stats(ctx, created.ID)
	require.NoError(t, err)

	// Week of Wednesday March 13th starts Monday the 11th
	assert.Equal(t, "2024-03-11", stats.PeriodStart)
	assert.Equal(t, "2024-03-17", stats.PeriodEnd)
	assert.Equal(t, 2287.5, stats.NetPay)
}

func TestDeleteIsSoft(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, &stubStorage{}, fixedClock())
	ctx := context.Background()

	created, err := svc.Create(ctx, employee.CreateRequest{Name: "A", DNI: "0801199012345", Type: "produccion"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	// Row still exists, only deactivated
	assert.False(t, repo.employees[created.ID].IsActive)
}
