package dashboard

// Activity is one of the latest attendance movements of the day.
type Activity struct {
	RecordID     int64   `json:"record_id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	EmployeeType string  `json:"employee_type"`
	EntryTime    *string `json:"entry_time"`
	ExitTime     *string `json:"exit_time"`
}

// Stats carries the dashboard counters.
type Stats struct {
	ActiveEmployees int        `json:"active_employees"`
	TodayAttendance int        `json:"today_attendance"`
	PendingExits    int        `json:"pending_exits"`
	WeekEmployees   int        `json:"week_employees"`
	WeekTotalHours  float64    `json:"week_total_hours"`
	RecentActivity  []Activity `json:"recent_activity"`
}
