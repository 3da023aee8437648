package dateutil

import (
	"fmt"
	"time"
)

// DateFormat is the wire format for calendar dates used across the API and
// the attendance record store.
const DateFormat = "2006-01-02"

// Now is the clock used by the impure helpers (CurrentMonth, Today).
// Tests may override it for deterministic output.
var Now = time.Now

// DaysInMonth returns the number of calendar days in the given Gregorian
// month. Callers must supply month in 1-12.
func DaysInMonth(year, month int) int {
	// Day 0 of the next month normalizes to the last day of this month.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthDates returns every date of the month in ascending order, formatted
// as YYYY-MM-DD.
func MonthDates(year, month int) []string {
	days := DaysInMonth(year, month)
	dates := make([]string, 0, days)
	for day := 1; day <= days; day++ {
		dates = append(dates, fmt.Sprintf("%04d-%02d-%02d", year, month, day))
	}
	return dates
}

// PreviousMonth returns the (year, month) pair preceding the given one,
// wrapping across year boundaries.
func PreviousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// NextMonth returns the (year, month) pair following the given one,
// wrapping across year boundaries.
func NextMonth(year, month int) (int, int) {
	if month == 12 {
		return year + 1, 1
	}
	return year, month + 1
}

// CurrentMonth returns the (year, month) of the current wall-clock time.
func CurrentMonth() (int, int) {
	now := Now()
	return now.Year(), int(now.Month())
}

// Today returns the current date as YYYY-MM-DD.
func Today() string {
	return Now().Format(DateFormat)
}

// MonthName returns the English name of the given month (1-12).
func MonthName(month int) string {
	return time.Month(month).String()
}

// MonthBounds returns the first and last dates of the month as YYYY-MM-DD.
func MonthBounds(year, month int) (string, string) {
	first := fmt.Sprintf("%04d-%02d-01", year, month)
	last := fmt.Sprintf("%04d-%02d-%02d", year, month, DaysInMonth(year, month))
	return first, last
}
