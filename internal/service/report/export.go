package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/attendit/attendit-backend-go/internal/domain/attendance"
	"github.com/attendit/attendit-backend-go/internal/domain/report"
	"github.com/attendit/attendit-backend-go/internal/pkg/dateutil"
)

// CSV renders the monthly aggregate as CSV text.
//
// Header: Employee Name, Department, the four summary fields, then one
// "Day N" column per calendar day. Name and department cells are quoted;
// day cells read Present or Absent from the employee's daily records,
// defaulting to Absent if a date key is somehow missing. Output is
// byte-identical for identical input; row order follows the input.
func CSV(monthlyData []report.MonthlyAttendance, year, month int) string {
	headers := []string{"Employee Name", "Department", "Total Days", "Present Days", "Absent Days", "Attendance %"}

	dates := dateutil.MonthDates(year, month)
	for day := 1; day <= len(dates); day++ {
		headers = append(headers, fmt.Sprintf("Day %d", day))
	}

	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))
	b.WriteByte('\n')

	for _, emp := range monthlyData {
		row := make([]string, 0, len(headers))
		row = append(row,
			`"`+emp.EmployeeName+`"`,
			`"`+emp.Department+`"`,
			strconv.Itoa(emp.TotalDays),
			strconv.Itoa(emp.PresentDays),
			strconv.Itoa(emp.AbsentDays),
			strconv.FormatFloat(emp.AttendancePercentage, 'f', 2, 64)+"%",
		)

		for _, date := range dates {
			if emp.DailyRecords[date] == attendance.StatusPresent {
				row = append(row, "Present")
			} else {
				row = append(row, "Absent")
			}
		}

		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}

	return b.String()
}

// PrintSummaryFrom builds the structured print/PDF payload for the monthly
// aggregate. generatedAt feeds the subtitle so output stays deterministic
// under an injected clock.
func PrintSummaryFrom(monthlyData []report.MonthlyAttendance, year, month int, generatedAt time.Time) report.PrintSummary {
	var sum float64
	high, low := 0, 0
	rows := make([][]string, 0, len(monthlyData))

	for _, emp := range monthlyData {
		sum += emp.AttendancePercentage
		if emp.AttendancePercentage >= 90 {
			high++
		}
		if emp.AttendancePercentage < 70 {
			low++
		}
		rows = append(rows, []string{
			emp.EmployeeName,
			strconv.Itoa(emp.TotalDays),
			strconv.Itoa(emp.PresentDays),
			strconv.Itoa(emp.AbsentDays),
			strconv.FormatFloat(emp.AttendancePercentage, 'f', 2, 64) + "%",
		})
	}

	average := 0.0
	if len(monthlyData) > 0 {
		average = sum / float64(len(monthlyData))
	}

	return report.PrintSummary{
		Title:    fmt.Sprintf("Attendance Report - %s %d", dateutil.MonthName(month), year),
		Subtitle: "Generated on " + generatedAt.Format("2006-01-02"),
		Headers:  []string{"Employee Name", "Total Days", "Present Days", "Absent Days", "Attendance Rate"},
		Rows:     rows,
		Summary: report.PrintTotals{
			TotalEmployees:    len(monthlyData),
			AverageAttendance: fmt.Sprintf("%.2f%%", average),
			HighPerformers:    high,
			LowPerformers:     low,
		},
	}
}
