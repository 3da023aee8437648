package attendance

// Status is the daily presence value for an employee.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"

	// StatusUnmarked is a view-only value for employees with no saved entry
	// on a date. It is never persisted; historical aggregation collapses a
	// missing entry to StatusAbsent instead.
	StatusUnmarked Status = "unmarked"
)

// Storable reports whether the status may be written to the record store.
func (s Status) Storable() bool {
	return s == StatusPresent || s == StatusAbsent
}

// DayRecord maps employee IDs to their status for a single calendar date.
// Sparse: an employee with no key has not been marked for that date.
type DayRecord map[string]Status

func (r DayRecord) Clone() DayRecord {
	clone := make(DayRecord, len(r))
	for id, status := range r {
		clone[id] = status
	}
	return clone
}
