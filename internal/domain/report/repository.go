package report

import "context"

// RangeData is everything the weekly report reads, fetched under one
// snapshot so totals and rows cannot drift apart mid-report.
type RangeData struct {
	Rows             []RawRow
	SummaryByDay     []DayCount
	ProductionTotals QuantityTotals
	SalariedTotals   QuantityTotals
}

type Repository interface {
	// RangeData reads all report queries for [startDate, endDate] inside a
	// single read-only transaction.
	RangeData(ctx context.Context, startDate, endDate string) (*RangeData, error)

	// RowsByDate returns the raw records for one date, employee-name ordered.
	RowsByDate(ctx context.Context, date string) ([]RawRow, error)

	// PendingEntry lists active employees with no record for the date.
	PendingEntry(ctx context.Context, date string) ([]PendingEmployee, error)

	// PendingExit lists employees with an open record for the date.
	PendingExit(ctx context.Context, date string) ([]PendingEmployee, error)
}
