package attendance

type EntryRequest struct {
	EmployeeID int64 `json:"employee_id"`
}

type ExitRequest struct {
	EmployeeID int64    `json:"employee_id"`
	Despalillo *float64 `json:"despalillo"`
	Escogida   *float64 `json:"escogida"`
	Monado     *float64 `json:"monado"`
	HoursExtra *float64 `json:"hours_extra"`
}

type Response struct {
	ID               int64   `json:"id"`
	EmployeeID       int64   `json:"employee_id"`
	EmployeeName     string  `json:"employee_name"`
	EmployeeDNI      string  `json:"employee_dni"`
	EmployeeType     string  `json:"employee_type"`
	Date             string  `json:"date"`
	EntryTime        *string `json:"entry_time"`
	ExitTime         *string `json:"exit_time"`
	EntryTimeDisplay *string `json:"entry_time_display"`
	ExitTimeDisplay  *string `json:"exit_time_display"`
	Despalillo       float64 `json:"despalillo"`
	Escogida         float64 `json:"escogida"`
	Monado           float64 `json:"monado"`
	HoursExtra       float64 `json:"hours_extra"`
	IsWorking        bool    `json:"is_working"`
	Status           string  `json:"status"`
	StatusText       string  `json:"status_text"`
}
