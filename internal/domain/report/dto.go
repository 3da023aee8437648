package report

import (
	"github.com/attendit/attendit-backend-go/internal/domain/attendance"
	"github.com/attendit/attendit-backend-go/internal/pkg/validator"
)

type MonthlyReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 1 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a four-digit year",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthlyAttendance is one employee's aggregate for a (year, month) period.
// Derived on demand, never persisted.
type MonthlyAttendance struct {
	EmployeeID           string  `json:"employee_id"`
	EmployeeName         string  `json:"employee_name"`
	Department           string  `json:"department"`
	TotalDays            int     `json:"total_days"`
	PresentDays          int     `json:"present_days"`
	AbsentDays           int     `json:"absent_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`

	// DailyRecords holds a status for every calendar date of the month,
	// present or absent only. No gaps, no extra dates.
	DailyRecords map[string]attendance.Status `json:"daily_records"`
}

type MonthlyReport struct {
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	GeneratedAt string `json:"generated_at"`

	Employees []MonthlyAttendance `json:"employees"`
}

// PrintSummary is the structured payload handed to a print/PDF layer.
type PrintSummary struct {
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Headers  []string    `json:"headers"`
	Rows     [][]string  `json:"rows"`
	Summary  PrintTotals `json:"summary"`
}

type PrintTotals struct {
	TotalEmployees    int    `json:"total_employees"`
	AverageAttendance string `json:"average_attendance"`
	HighPerformers    int    `json:"high_performers"`
	LowPerformers     int    `json:"low_performers"`
}
