package attendance

import (
	"context"
	"errors"
	"testing"

	"github.com/attendit/attendit-backend-go/internal/domain/attendance"
	"github.com/attendit/attendit-backend-go/internal/domain/employee"
	"github.com/attendit/attendit-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRecordStore keeps records in memory with the same merge-write
// semantics as the PostgreSQL store.
type fakeRecordStore struct {
	attendance.RecordStore
	records  map[string]attendance.DayRecord
	saveErr  error
	setCalls int
}

func newFakeRecordStore() *fakeRecordStore {
	return &fakeRecordStore{records: make(map[string]attendance.DayRecord)}
}

func (f *fakeRecordStore) GetByDate(ctx context.Context, date string) (attendance.DayRecord, error) {
	if record, ok := f.records[date]; ok {
		return record.Clone(), nil
	}
	return attendance.DayRecord{}, nil
}

func (f *fakeRecordStore) SetByDate(ctx context.Context, date string, record attendance.DayRecord) error {
	f.setCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.records[date] == nil {
		f.records[date] = make(attendance.DayRecord)
	}
	for id, status := range record {
		f.records[date][id] = status
	}
	return nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) ListAll(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

var testRoster = []employee.Employee{
	{ID: "e1", Name: "Alice", Department: "Engineering"},
	{ID: "e2", Name: "Bob", Department: "Sales"},
	{ID: "e3", Name: "Carol", Department: "Sales"},
}

func TestAttendanceService_GetDay_TriState(t *testing.T) {
	store := newFakeRecordStore()
	store.records["2025-03-10"] = attendance.DayRecord{
		"e1": attendance.StatusPresent,
		"e2": attendance.StatusAbsent,
	}
	svc := NewAttendanceService(store, &fakeEmployeeRepo{employees: testRoster})

	view, err := svc.GetDay(context.Background(), "2025-03-10")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", view.Date)
	require.Len(t, view.Employees, 3)
	assert.Equal(t, attendance.StatusPresent, view.Employees[0].Status)
	assert.Equal(t, attendance.StatusAbsent, view.Employees[1].Status)
	// Carol has no saved entry; live view keeps her unmarked, not absent.
	assert.Equal(t, attendance.StatusUnmarked, view.Employees[2].Status)
	assert.Equal(t, 1, view.PresentCount)
	assert.Equal(t, 1, view.AbsentCount)
	assert.Equal(t, 1, view.UnmarkedCount)
}

func TestAttendanceService_GetDay_InvalidDate(t *testing.T) {
	svc := NewAttendanceService(newFakeRecordStore(), &fakeEmployeeRepo{employees: testRoster})

	for _, date := range []string{"2025-13-01", "2025-02-30", "10-03-2025", "today"} {
		_, err := svc.GetDay(context.Background(), date)
		assert.ErrorIs(t, err, attendance.ErrInvalidDate, "date %q", date)
	}
}

func TestAttendanceService_SaveDay_MergesWithPersisted(t *testing.T) {
	store := newFakeRecordStore()
	// Another session already marked Carol for the same date.
	store.records["2025-03-10"] = attendance.DayRecord{"e3": attendance.StatusPresent}
	svc := NewAttendanceService(store, &fakeEmployeeRepo{employees: testRoster})

	view, err := svc.SaveDay(context.Background(), "2025-03-10", attendance.SaveDayRequest{
		Marks: map[string]attendance.Status{
			"e1": attendance.StatusPresent,
			"e2": attendance.StatusAbsent,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.DayRecord{
		"e1": attendance.StatusPresent,
		"e2": attendance.StatusAbsent,
		"e3": attendance.StatusPresent,
	}, store.records["2025-03-10"])
	assert.Equal(t, 0, view.UnmarkedCount)
}

func TestAttendanceService_SaveDay_InvalidStatus(t *testing.T) {
	store := newFakeRecordStore()
	svc := NewAttendanceService(store, &fakeEmployeeRepo{employees: testRoster})

	_, err := svc.SaveDay(context.Background(), "2025-03-10", attendance.SaveDayRequest{
		Marks: map[string]attendance.Status{"e1": "late"},
	})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, 0, store.setCalls)
}

func TestAttendanceService_MarkAll(t *testing.T) {
	store := newFakeRecordStore()
	svc := NewAttendanceService(store, &fakeEmployeeRepo{employees: testRoster})

	view, err := svc.MarkAll(context.Background(), "2025-03-10", attendance.MarkAllRequest{
		Status: attendance.StatusPresent,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, view.PresentCount)
	assert.Len(t, store.records["2025-03-10"], 3)
	for _, status := range store.records["2025-03-10"] {
		assert.Equal(t, attendance.StatusPresent, status)
	}
}

func TestSession_LastLoadWins(t *testing.T) {
	store := newFakeRecordStore()
	sess := NewSession(store, &fakeEmployeeRepo{employees: testRoster})
	ctx := context.Background()

	require.NoError(t, sess.Load(ctx, "2025-03-10"))
	require.NoError(t, sess.SetStatus("e1", attendance.StatusPresent))

	// Loading another date discards the in-progress edits.
	require.NoError(t, sess.Load(ctx, "2025-03-11"))
	assert.Equal(t, attendance.StatusUnmarked, sess.Status("e1"))

	require.NoError(t, sess.Save(ctx))
	assert.Empty(t, store.records["2025-03-10"])
}

func TestSession_SaveFailureKeepsWorkingSet(t *testing.T) {
	store := newFakeRecordStore()
	sess := NewSession(store, &fakeEmployeeRepo{employees: testRoster})
	ctx := context.Background()

	require.NoError(t, sess.Load(ctx, "2025-03-10"))
	require.NoError(t, sess.SetStatus("e1", attendance.StatusPresent))

	store.saveErr = errors.New("write timeout")
	err := sess.Save(ctx)
	require.Error(t, err)

	// Working set survives the failure, so the same session can retry.
	assert.Equal(t, attendance.StatusPresent, sess.Status("e1"))
	store.saveErr = nil
	require.NoError(t, sess.Save(ctx))
	assert.Equal(t, attendance.StatusPresent, store.records["2025-03-10"]["e1"])
}

func TestSession_SetStatusOverwrites(t *testing.T) {
	sess := NewSession(newFakeRecordStore(), &fakeEmployeeRepo{employees: testRoster})
	require.NoError(t, sess.Load(context.Background(), "2025-03-10"))

	require.NoError(t, sess.SetStatus("e1", attendance.StatusPresent))
	require.NoError(t, sess.SetStatus("e1", attendance.StatusAbsent))
	assert.Equal(t, attendance.StatusAbsent, sess.Status("e1"))
}

func TestSession_RequiresLoad(t *testing.T) {
	sess := NewSession(newFakeRecordStore(), &fakeEmployeeRepo{employees: testRoster})

	assert.ErrorIs(t, sess.SetStatus("e1", attendance.StatusPresent), attendance.ErrNotLoaded)
	assert.ErrorIs(t, sess.MarkAllPresent(), attendance.ErrNotLoaded)
	assert.ErrorIs(t, sess.Save(context.Background()), attendance.ErrNotLoaded)
}

func TestSession_MarkAllAbsentInMemoryOnly(t *testing.T) {
	store := newFakeRecordStore()
	sess := NewSession(store, &fakeEmployeeRepo{employees: testRoster})
	require.NoError(t, sess.Load(context.Background(), "2025-03-10"))

	require.NoError(t, sess.MarkAllAbsent())
	for _, emp := range testRoster {
		assert.Equal(t, attendance.StatusAbsent, sess.Status(emp.ID))
	}
	// Nothing persisted until Save.
	assert.Equal(t, 0, store.setCalls)
}
