package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidDate   = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidStatus = errors.New("status must be present or absent")
	ErrNotLoaded     = errors.New("no attendance day loaded in this session")
)
