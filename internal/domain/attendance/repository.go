package attendance

import "context"

// RecordStore defines data access for per-date attendance records.
// Records are keyed by calendar date in YYYY-MM-DD form.
type RecordStore interface {
	// GetByDate retrieves the record for a date. A date that has never been
	// saved yields an empty (non-nil) DayRecord, not an error.
	GetByDate(ctx context.Context, date string) (DayRecord, error)

	// SetByDate persists the record for a date with merge semantics: entries
	// already stored for the date but absent from record are left untouched.
	SetByDate(ctx context.Context, date string, record DayRecord) error

	// GetByDateRange retrieves all records with start <= date <= end, keyed
	// by date. Dates without a saved record have no key in the result.
	GetByDateRange(ctx context.Context, start, end string) (map[string]DayRecord, error)
}
