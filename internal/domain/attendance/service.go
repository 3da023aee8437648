package attendance

import "context"

// AttendanceService defines business logic for daily attendance marking.
type AttendanceService interface {
	// GetDay retrieves the marking view for a date: every employee in the
	// roster with their tri-state status (unmarked entries stay unmarked).
	GetDay(ctx context.Context, date string) (DayView, error)

	// SaveDay applies the submitted marks to the date and persists them with
	// a merge write, then returns the refreshed view.
	SaveDay(ctx context.Context, date string, req SaveDayRequest) (DayView, error)

	// MarkAll sets every employee in the roster to the given status for the
	// date and persists the result.
	MarkAll(ctx context.Context, date string, req MarkAllRequest) (DayView, error)
}
