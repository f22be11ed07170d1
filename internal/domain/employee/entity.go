package employee

import "time"

// Type distinguishes the two compensation schemes.
type Type string

const (
	// TypeProduction employees are paid per processed piece.
	TypeProduction Type = "produccion"
	// TypeSalaried employees earn a fixed monthly salary plus overtime.
	TypeSalaried Type = "aldia"
)

func IsValidType(t Type) bool {
	return t == TypeProduction || t == TypeSalaried
}

type Employee struct {
	ID            int64
	Name          string
	DNI           string
	Type          Type
	MonthlySalary float64
	Area          *string
	PhotoURL      *string
	QRCodeURL     *string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
