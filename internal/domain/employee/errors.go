package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeInactive = errors.New("employee is inactive")
	ErrDNIExists        = errors.New("an employee with this DNI already exists")
)
