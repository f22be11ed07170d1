package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateProduction(t *testing.T) {
	pay := CalculateProduction(ProductionInput{
		Despalillo: 10,
		Escogida:   5,
		Monado:     20,
		DaysWorked: 6,
	})

	assert.Equal(t, 1170.0, pay.Subtotal)
	assert.Equal(t, 106.36, pay.SaturdayBonus)
	assert.Equal(t, 212.73, pay.SeventhDay)
	assert.Equal(t, 1489.09, pay.Net)
}

func TestCalculateProductionZeroQuantities(t *testing.T) {
	pay := CalculateProduction(ProductionInput{})

	assert.Equal(t, 0.0, pay.Subtotal)
	assert.Equal(t, 0.0, pay.SaturdayBonus)
	assert.Equal(t, 0.0, pay.SeventhDay)
	assert.Equal(t, 0.0, pay.Net)
}

func TestCalculateProductionNegativeCoercedToZero(t *testing.T) {
	pay := CalculateProduction(ProductionInput{Despalillo: -3, Escogida: 2})

	assert.Equal(t, 140.0, pay.Subtotal)
}

func TestCalculateSalaried(t *testing.T) {
	pay := CalculateSalaried(SalariedInput{
		MonthlySalary: 9000,
		DaysWorked:    6,
		HoursExtra:    4,
	})

	assert.Equal(t, 300.0, pay.DailyRate)
	assert.Equal(t, 46.875, pay.OvertimeRate)
	assert.Equal(t, 187.5, pay.OvertimePay)
	assert.Equal(t, 300.0, pay.SeventhDay)
	assert.Equal(t, 2287.5, pay.Net)
}

func TestSalariedSeventhDayThreshold(t *testing.T) {
	four := CalculateSalaried(SalariedInput{MonthlySalary: 9000, DaysWorked: 4})
	assert.Equal(t, 0.0, four.SeventhDay)

	five := CalculateSalaried(SalariedInput{MonthlySalary: 9000, DaysWorked: 5})
	assert.Equal(t, 300.0, five.SeventhDay)
	assert.Equal(t, 1800.0, five.Net)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 106.36, Round2(106.363530))
	assert.Equal(t, 212.73, Round2(212.72706))
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, 1.0, Round2(0.999))
}
