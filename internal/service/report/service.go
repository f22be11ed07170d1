package report

import (
	"context"
	"time"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/employee"
	"github.com/tabacalera-hn/attendance-backend/internal/domain/payroll"
	"github.com/tabacalera-hn/attendance-backend/internal/domain/report"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/clock"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/validator"
)

type Service struct {
	reportRepo report.Repository
	clock      clock.Clock
}

func NewService(reportRepo report.Repository, clk clock.Clock) *Service {
	return &Service{reportRepo: reportRepo, clock: clk}
}

// group accumulates one employee's rows inside a reporting range.
type group struct {
	employeeID    int64
	name          string
	dni           string
	empType       string
	monthlySalary float64
	daysWorked    int
	despalillo    float64
	escogida      float64
	monado        float64
	hoursExtra    float64
}

// Weekly builds the payroll report for [startDate, endDate]. Employees
// without any record in the range do not appear.
func (s *Service) Weekly(ctx context.Context, startDate, endDate string) (*report.WeeklyReport, error) {
	start, startOK := validator.IsValidDate(startDate)
	end, endOK := validator.IsValidDate(endDate)
	if !startOK || !endOK {
		return nil, validator.ValidationErrors{
			{Field: "date_range", Message: "start_date and end_date must be YYYY-MM-DD"},
		}
	}
	if end.Before(start) {
		return nil, validator.ValidationErrors{
			{Field: "date_range", Message: "end_date must not be before start_date"},
		}
	}

	data, err := s.reportRepo.RangeData(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	// Group rows by employee. Rows arrive ordered by employee name, so
	// insertion order keeps the report name-sorted.
	var order []int64
	groups := make(map[int64]*group)
	for _, row := range data.Rows {
		g, ok := groups[row.EmployeeID]
		if !ok {
			g = &group{
				employeeID:    row.EmployeeID,
				name:          row.EmployeeName,
				dni:           row.EmployeeDNI,
				empType:       row.EmployeeType,
				monthlySalary: row.MonthlySalary,
			}
			groups[row.EmployeeID] = g
			order = append(order, row.EmployeeID)
		}
		g.daysWorked++
		g.despalillo += row.Despalillo
		g.escogida += row.Escogida
		g.monado += row.Monado
		g.hoursExtra += row.HoursExtra
	}

	rep := &report.WeeklyReport{
		StartDate:        startDate,
		EndDate:          endDate,
		Production:       []report.ProductionEntry{},
		Salaried:         []report.SalariedEntry{},
		SummaryByDay:     []report.DayCount{},
		ProductionTotals: data.ProductionTotals,
		SalariedTotals:   data.SalariedTotals,
	}
	if data.SummaryByDay != nil {
		rep.SummaryByDay = data.SummaryByDay
	}

	for _, id := range order {
		g := groups[id]
		if g.empType == string(employee.TypeProduction) {
			pay := payroll.CalculateProduction(payroll.ProductionInput{
				Despalillo: g.despalillo,
				Escogida:   g.escogida,
				Monado:     g.monado,
				DaysWorked: g.daysWorked,
			})
			rep.Production = append(rep.Production, report.ProductionEntry{
				EmployeeID:    g.employeeID,
				EmployeeName:  g.name,
				EmployeeDNI:   g.dni,
				DaysWorked:    g.daysWorked,
				Despalillo:    g.despalillo,
				Escogida:      g.escogida,
				Monado:        g.monado,
				ProductionPay: pay,
			})
			rep.Summary.ProductionPayroll += pay.Net
		} else {
			pay := payroll.CalculateSalaried(payroll.SalariedInput{
				MonthlySalary: g.monthlySalary,
				DaysWorked:    g.daysWorked,
				HoursExtra:    g.hoursExtra,
			})
			rep.Salaried = append(rep.Salaried, report.SalariedEntry{
				EmployeeID:    g.employeeID,
				EmployeeName:  g.name,
				EmployeeDNI:   g.dni,
				MonthlySalary: g.monthlySalary,
				DaysWorked:    g.daysWorked,
				HoursExtra:    g.hoursExtra,
				SalariedPay:   pay,
			})
			rep.Summary.SalariedPayroll += pay.Net
		}
	}

	rep.Summary.ProductionCount = len(rep.Production)
	rep.Summary.SalariedCount = len(rep.Salaried)
	rep.Summary.EmployeeCount = len(order)
	rep.Summary.TotalRecords = len(data.Rows)
	rep.Summary.ProductionPayroll = payroll.Round2(rep.Summary.ProductionPayroll)
	rep.Summary.SalariedPayroll = payroll.Round2(rep.Summary.SalariedPayroll)
	rep.Summary.TotalPayroll = payroll.Round2(rep.Summary.ProductionPayroll + rep.Summary.SalariedPayroll)

	return rep, nil
}

// Daily returns the raw records of one date without payroll evaluation.
func (s *Service) Daily(ctx context.Context, date string) ([]report.DailyRow, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return nil, validator.ValidationErrors{
			{Field: "date", Message: "date must be YYYY-MM-DD"},
		}
	}

	rows, err := s.reportRepo.RowsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return mapDailyRows(rows), nil
}

// DashboardDaily assembles the per-day operations view: the day's
// records, who is missing an entry, who has not clocked out, and the
// quantity totals per scheme.
func (s *Service) DashboardDaily(ctx context.Context, date string) (*report.DashboardDaily, error) {
	if date == "" {
		date = clock.Today(s.clock)
	} else if _, ok := validator.IsValidDate(date); !ok {
		return nil, validator.ValidationErrors{
			{Field: "date", Message: "date must be YYYY-MM-DD"},
		}
	}

	rows, err := s.reportRepo.RowsByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	pendingEntry, err := s.reportRepo.PendingEntry(ctx, date)
	if err != nil {
		return nil, err
	}
	pendingExit, err := s.reportRepo.PendingExit(ctx, date)
	if err != nil {
		return nil, err
	}

	out := &report.DashboardDaily{
		Date:         date,
		Attendance:   mapDailyRows(rows),
		PendingEntry: pendingEntry,
		PendingExit:  pendingExit,
	}
	if out.PendingEntry == nil {
		out.PendingEntry = []report.PendingEmployee{}
	}
	if out.PendingExit == nil {
		out.PendingExit = []report.PendingEmployee{}
	}

	for _, row := range rows {
		if row.EmployeeType == string(employee.TypeProduction) {
			out.ProductionTotals.Despalillo += row.Despalillo
			out.ProductionTotals.Escogida += row.Escogida
			out.ProductionTotals.Monado += row.Monado
		} else {
			out.SalariedTotals.HoursExtra += row.HoursExtra
		}
	}

	return out, nil
}

func mapDailyRows(rows []report.RawRow) []report.DailyRow {
	out := make([]report.DailyRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.DailyRow{
			RecordID:     row.RecordID,
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			EmployeeDNI:  row.EmployeeDNI,
			EmployeeType: row.EmployeeType,
			Date:         row.Date,
			EntryTime:    formatTimePtr(row.EntryTime),
			ExitTime:     formatTimePtr(row.ExitTime),
			Despalillo:   row.Despalillo,
			Escogida:     row.Escogida,
			Monado:       row.Monado,
			HoursExtra:   row.HoursExtra,
		})
	}
	return out
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.In(clock.Zone).Format("15:04")
	return &s
}
