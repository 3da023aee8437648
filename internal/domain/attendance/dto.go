package attendance

import (
	"github.com/attendit/attendit-backend-go/internal/pkg/validator"
)

type SaveDayRequest struct {
	// Marks holds the statuses set during the current editing session.
	// Employees not present here keep whatever was already persisted.
	Marks map[string]Status `json:"marks"`
}

func (r *SaveDayRequest) Validate() error {
	var errs validator.ValidationErrors

	for employeeID, status := range r.Marks {
		if validator.IsEmpty(employeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "marks",
				Message: "employee id must not be empty",
			})
		}
		if !status.Storable() {
			errs = append(errs, validator.ValidationError{
				Field:   "marks." + employeeID,
				Message: "status must be present or absent",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkAllRequest struct {
	Status Status `json:"status"`
}

func (r *MarkAllRequest) Validate() error {
	if !r.Status.Storable() {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be present or absent",
		}}
	}
	return nil
}

// DayView is the marking view for one date: the full roster with the
// tri-state status of each employee.
type DayView struct {
	Date      string              `json:"date"`
	Employees []EmployeeDayStatus `json:"employees"`

	PresentCount  int `json:"present_count"`
	AbsentCount   int `json:"absent_count"`
	UnmarkedCount int `json:"unmarked_count"`
}

type EmployeeDayStatus struct {
	EmployeeID   string `json:"employee_id"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	Position     string `json:"position"`
	EmployeeCode string `json:"employee_code"`
	Status       Status `json:"status"`
}
