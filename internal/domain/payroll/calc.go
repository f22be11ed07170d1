// Package payroll holds the pure pay-calculation rules for both
// compensation schemes. Functions here take already-aggregated quantities
// and never touch the database.
package payroll

import "math"

// Piece rates in Lempiras per processed unit.
const (
	RateDespalillo = 80.0
	RateEscogida   = 70.0
	RateMonado     = 1.0
)

// Accrual factors applied to the production subtotal. The values encode
// 1/11 and 2/11 of the base pay as fixed-precision factors and must not
// be "simplified" into fractions: payroll totals are reconciled against
// printouts computed with these exact constants.
const (
	SaturdayBonusFactor = 0.090909
	SeventhDayFactor    = 0.181818
)

// Salaried scheme constants: monthly salary prorated over 30 days,
// 8-hour days, overtime at 1.25x the hourly rate.
const (
	DaysPerMonth     = 30.0
	HoursPerDay      = 8.0
	OvertimeRate     = 1.25
	SeventhDayMinDay = 5
)

// Round2 rounds half away from zero to 2 decimals. All monetary rounding
// in the system goes through this function, applied exactly where each
// formula says and nowhere else.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ProductionInput aggregates a production employee's piece counts over a
// pay period. Quantities below zero are treated as zero.
type ProductionInput struct {
	Despalillo float64
	Escogida   float64
	Monado     float64
	DaysWorked int
}

type ProductionPay struct {
	Subtotal      float64 `json:"subtotal"`
	SaturdayBonus float64 `json:"saturday_bonus"`
	SeventhDay    float64 `json:"seventh_day"`
	Net           float64 `json:"net"`
}

// CalculateProduction applies the piece rates and accruals. The subtotal
// keeps full precision; only the two accruals and the final net are
// rounded.
func CalculateProduction(in ProductionInput) ProductionPay {
	despalillo := nonNegative(in.Despalillo)
	escogida := nonNegative(in.Escogida)
	monado := nonNegative(in.Monado)

	subtotal := RateDespalillo*despalillo + RateEscogida*escogida + RateMonado*monado
	saturday := Round2(subtotal * SaturdayBonusFactor)
	seventh := Round2(subtotal * SeventhDayFactor)

	return ProductionPay{
		Subtotal:      subtotal,
		SaturdayBonus: saturday,
		SeventhDay:    seventh,
		Net:           Round2(subtotal + saturday + seventh),
	}
}

// SalariedInput aggregates a salaried employee's period: days with a
// completed attendance record and total overtime hours.
type SalariedInput struct {
	MonthlySalary float64
	DaysWorked    int
	HoursExtra    float64
}

type SalariedPay struct {
	DailyRate    float64 `json:"daily_rate"`
	OvertimeRate float64 `json:"overtime_rate"`
	OvertimePay  float64 `json:"overtime_pay"`
	SeventhDay   float64 `json:"seventh_day"`
	Net          float64 `json:"net"`
}

// CalculateSalaried prorates the monthly salary and adds overtime plus
// the seventh-day benefit, earned after five worked days in the period.
func CalculateSalaried(in SalariedInput) SalariedPay {
	monthly := nonNegative(in.MonthlySalary)
	hours := nonNegative(in.HoursExtra)
	days := in.DaysWorked
	if days < 0 {
		days = 0
	}

	daily := monthly / DaysPerMonth
	hourly := daily / HoursPerDay
	otRate := hourly * OvertimeRate
	otPay := Round2(hours * otRate)

	seventh := 0.0
	if days >= SeventhDayMinDay {
		seventh = Round2(daily)
	}

	return SalariedPay{
		DailyRate:    daily,
		OvertimeRate: otRate,
		OvertimePay:  otPay,
		SeventhDay:   seventh,
		Net:          Round2(float64(days)*daily + otPay + seventh),
	}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
