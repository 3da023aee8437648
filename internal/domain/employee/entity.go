package employee

import (
	"time"
)

type Employee struct {
	ID           string
	Name         string
	Email        string
	Department   string
	Position     string
	EmployeeCode string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
