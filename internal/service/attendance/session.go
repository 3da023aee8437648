package attendance

import (
	"context"
	"fmt"

	"github.com/attendit/attendit-backend-go/internal/domain/attendance"
	"github.com/attendit/attendit-backend-go/internal/domain/employee"
	"github.com/attendit/attendit-backend-go/internal/pkg/validator"
)

// Session is the in-memory working set for one date under active editing.
// It is owned by a single editing context and is not safe for concurrent use.
type Session struct {
	store        attendance.RecordStore
	employeeRepo employee.EmployeeRepository

	date    string
	working attendance.DayRecord
	roster  []employee.Employee
	loaded  bool
}

func NewSession(store attendance.RecordStore, employeeRepo employee.EmployeeRepository) *Session {
	return &Session{
		store:        store,
		employeeRepo: employeeRepo,
	}
}

// Load fetches the persisted record and a roster snapshot for date,
// discarding any in-progress edits from a previously loaded date.
func (s *Session) Load(ctx context.Context, date string) error {
	if _, ok := validator.IsValidDate(date); !ok {
		return attendance.ErrInvalidDate
	}

	roster, err := s.employeeRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	record, err := s.store.GetByDate(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to load attendance for %s: %w", date, err)
	}

	s.date = date
	s.working = record.Clone()
	s.roster = roster
	s.loaded = true
	return nil
}

func (s *Session) Date() string {
	return s.date
}

// Roster returns the roster snapshot taken at Load time.
func (s *Session) Roster() []employee.Employee {
	return s.roster
}

// SetStatus records a status for employeeID in the working set only; nothing
// is persisted until Save.
func (s *Session) SetStatus(employeeID string, status attendance.Status) error {
	if !s.loaded {
		return attendance.ErrNotLoaded
	}
	if !status.Storable() {
		return attendance.ErrInvalidStatus
	}
	s.working[employeeID] = status
	return nil
}

// Status returns the live tri-state for employeeID: StatusUnmarked when the
// employee has no entry yet. Unmarked never collapses to absent here.
func (s *Session) Status(employeeID string) attendance.Status {
	if status, ok := s.working[employeeID]; ok {
		return status
	}
	return attendance.StatusUnmarked
}

// MarkAllPresent sets every employee in the roster snapshot to present,
// in memory only.
func (s *Session) MarkAllPresent() error {
	return s.markAll(attendance.StatusPresent)
}

// MarkAllAbsent sets every employee in the roster snapshot to absent,
// in memory only.
func (s *Session) MarkAllAbsent() error {
	return s.markAll(attendance.StatusAbsent)
}

func (s *Session) markAll(status attendance.Status) error {
	if !s.loaded {
		return attendance.ErrNotLoaded
	}
	for _, emp := range s.roster {
		s.working[emp.ID] = status
	}
	return nil
}

// Save persists the entire working set for the loaded date via a merge
// write: entries saved for this date by another session but absent from the
// working set survive. On failure the working set is left unchanged so the
// caller may retry.
func (s *Session) Save(ctx context.Context) error {
	if !s.loaded {
		return attendance.ErrNotLoaded
	}
	if err := s.store.SetByDate(ctx, s.date, s.working.Clone()); err != nil {
		return fmt.Errorf("failed to save attendance for %s: %w", s.date, err)
	}
	return nil
}
