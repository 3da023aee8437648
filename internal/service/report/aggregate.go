package report

import (
	"math"
	"sort"

	"github.com/attendit/attendit-backend-go/internal/domain/attendance"
	"github.com/attendit/attendit-backend-go/internal/domain/employee"
	"github.com/attendit/attendit-backend-go/internal/domain/report"
	"github.com/attendit/attendit-backend-go/internal/pkg/dateutil"
)

// Aggregate builds one MonthlyAttendance per employee for (year, month).
//
// employees must be the full roster; no filtering happens here.
// recordsByDate may be missing any date (treated as an empty record) and may
// contain dates outside the month (ignored). An employee with no entry for a
// date counts as absent; this is the historical-aggregation default, distinct
// from the unmarked tri-state shown while a day is being edited.
//
// The result is sorted by employee name and covers every calendar date of
// the month for every employee.
func Aggregate(employees []employee.Employee, recordsByDate map[string]attendance.DayRecord, year, month int) ([]report.MonthlyAttendance, error) {
	if month < 1 || month > 12 {
		return nil, report.ErrInvalidMonth
	}

	dates := dateutil.MonthDates(year, month)
	totalDays := len(dates)

	result := make([]report.MonthlyAttendance, 0, len(employees))
	for _, emp := range employees {
		presentDays := 0
		daily := make(map[string]attendance.Status, totalDays)

		for _, date := range dates {
			status := attendance.StatusAbsent
			if day, ok := recordsByDate[date]; ok {
				if s, marked := day[emp.ID]; marked && s == attendance.StatusPresent {
					status = attendance.StatusPresent
				}
			}
			daily[date] = status
			if status == attendance.StatusPresent {
				presentDays++
			}
		}

		percentage := 0.0
		if totalDays > 0 {
			percentage = float64(presentDays) / float64(totalDays) * 100
		}

		result = append(result, report.MonthlyAttendance{
			EmployeeID:           emp.ID,
			EmployeeName:         emp.Name,
			Department:           emp.Department,
			TotalDays:            totalDays,
			PresentDays:          presentDays,
			AbsentDays:           totalDays - presentDays,
			AttendancePercentage: round2(percentage),
			DailyRecords:         daily,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].EmployeeName != result[j].EmployeeName {
			return result[i].EmployeeName < result[j].EmployeeName
		}
		return result[i].EmployeeID < result[j].EmployeeID
	})

	return result, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
