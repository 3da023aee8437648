package dateutil

import (
	"fmt"
	"regexp"
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2025, 1, 31},
		{2025, 3, 31},
		{2025, 4, 30},
		{2023, 2, 28},
		{2024, 2, 29},
		{2000, 2, 29},
		{1900, 2, 28},
		{2025, 12, 31},
	}
	for _, c := range cases {
		got := DaysInMonth(c.year, c.month)
		if got != c.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

var isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func TestMonthDates(t *testing.T) {
	for _, c := range []struct{ year, month int }{
		{2025, 1}, {2025, 2}, {2024, 2}, {2025, 12}, {1999, 6},
	} {
		dates := MonthDates(c.year, c.month)
		if len(dates) != DaysInMonth(c.year, c.month) {
			t.Errorf("MonthDates(%d, %d) has %d entries, want %d",
				c.year, c.month, len(dates), DaysInMonth(c.year, c.month))
		}
		for i, date := range dates {
			if !isoDateRegex.MatchString(date) {
				t.Errorf("MonthDates(%d, %d)[%d] = %q, not YYYY-MM-DD", c.year, c.month, i, date)
			}
			want := fmt.Sprintf("%04d-%02d-%02d", c.year, c.month, i+1)
			if date != want {
				t.Errorf("MonthDates(%d, %d)[%d] = %q, want %q", c.year, c.month, i, date, want)
			}
		}
	}
}

func TestMonthNavigation(t *testing.T) {
	cases := []struct {
		year, month         int
		prevYear, prevMonth int
		nextYear, nextMonth int
	}{
		{2025, 6, 2025, 5, 2025, 7},
		{2025, 1, 2024, 12, 2025, 2},
		{2024, 12, 2024, 11, 2025, 1},
	}
	for _, c := range cases {
		py, pm := PreviousMonth(c.year, c.month)
		if py != c.prevYear || pm != c.prevMonth {
			t.Errorf("PreviousMonth(%d, %d) = (%d, %d), want (%d, %d)",
				c.year, c.month, py, pm, c.prevYear, c.prevMonth)
		}
		ny, nm := NextMonth(c.year, c.month)
		if ny != c.nextYear || nm != c.nextMonth {
			t.Errorf("NextMonth(%d, %d) = (%d, %d), want (%d, %d)",
				c.year, c.month, ny, nm, c.nextYear, c.nextMonth)
		}
	}
}

func TestMonthNavigationRoundTrip(t *testing.T) {
	for year := 2023; year <= 2026; year++ {
		for month := 1; month <= 12; month++ {
			ny, nm := NextMonth(year, month)
			if nm < 1 || nm > 12 {
				t.Fatalf("NextMonth(%d, %d) produced month %d", year, month, nm)
			}
			y, m := PreviousMonth(ny, nm)
			if y != year || m != month {
				t.Errorf("PreviousMonth(NextMonth(%d, %d)) = (%d, %d)", year, month, y, m)
			}
		}
	}
}

func TestCurrentMonthUsesClock(t *testing.T) {
	restore := Now
	defer func() { Now = restore }()

	Now = func() time.Time {
		return time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)
	}

	year, month := CurrentMonth()
	if year != 2025 || month != 3 {
		t.Errorf("CurrentMonth() = (%d, %d), want (2025, 3)", year, month)
	}
	if got := Today(); got != "2025-03-15" {
		t.Errorf("Today() = %q, want %q", got, "2025-03-15")
	}
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(2025, 2)
	if first != "2025-02-01" || last != "2025-02-28" {
		t.Errorf("MonthBounds(2025, 2) = (%q, %q)", first, last)
	}
	first, last = MonthBounds(2024, 2)
	if last != "2024-02-29" {
		t.Errorf("MonthBounds(2024, 2) last = %q, want 2024-02-29", last)
	}
	_ = first
}

func TestMonthName(t *testing.T) {
	if got := MonthName(3); got != "March" {
		t.Errorf("MonthName(3) = %q, want March", got)
	}
	if got := MonthName(12); got != "December" {
		t.Errorf("MonthName(12) = %q, want December", got)
	}
}
