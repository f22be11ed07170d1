package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTodayUsesBusinessZone(t *testing.T) {
	// 2024-03-16 02:30 UTC is still 2024-03-15 in UTC-6.
	fixed := Fixed{T: time.Date(2024, 3, 16, 2, 30, 0, 0, time.UTC)}
	assert.Equal(t, "2024-03-15", Today(fixed))
}

func TestMonthStart(t *testing.T) {
	ts := time.Date(2024, 3, 15, 14, 22, 0, 0, Zone)
	start := MonthStart(ts)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, Zone), start)
}

func TestWeekStartIsMonday(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "wednesday maps to same week's monday",
			in:   time.Date(2024, 3, 13, 10, 0, 0, 0, Zone),
			want: time.Date(2024, 3, 11, 0, 0, 0, 0, Zone),
		},
		{
			name: "monday maps to itself",
			in:   time.Date(2024, 3, 11, 23, 59, 0, 0, Zone),
			want: time.Date(2024, 3, 11, 0, 0, 0, 0, Zone),
		},
		{
			name: "sunday belongs to previous monday",
			in:   time.Date(2024, 3, 17, 8, 0, 0, 0, Zone),
			want: time.Date(2024, 3, 11, 0, 0, 0, 0, Zone),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.in))
		})
	}
}
