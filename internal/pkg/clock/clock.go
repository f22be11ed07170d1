package clock

import "time"

// Business operations run on Honduras wall time regardless of server timezone.
const businessOffsetHours = -6

// Zone is the fixed business timezone (UTC-6, no DST).
var Zone = time.FixedZone("UTC-6", businessOffsetHours*60*60)

// Clock provides the current business time. Services take a Clock so tests
// can pin "today" to a known date.
type Clock interface {
	Now() time.Time
}

// Business is the production clock. It reports wall-clock time in the
// fixed business zone.
type Business struct{}

func New() Business {
	return Business{}
}

func (Business) Now() time.Time {
	return time.Now().In(Zone)
}

// Fixed is a clock frozen at a single instant, for tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T.In(Zone)
}

// Today formats the clock's current date as YYYY-MM-DD in the business zone.
func Today(c Clock) string {
	return c.Now().Format("2006-01-02")
}

// MonthStart returns midnight on the first day of t's month.
func MonthStart(t time.Time) time.Time {
	t = t.In(Zone)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, Zone)
}

// WeekStart returns midnight on the Monday of t's week, matching
// PostgreSQL's date_trunc('week', ...) convention.
func WeekStart(t time.Time) time.Time {
	t = t.In(Zone)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Zone)
	return day.AddDate(0, 0, -(weekday - 1))
}
