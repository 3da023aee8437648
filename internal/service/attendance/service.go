package attendance

import (
	"context"

	"github.com/attendit/attendit-backend-go/internal/domain/attendance"
	"github.com/attendit/attendit-backend-go/internal/domain/employee"
)

type attendanceServiceImpl struct {
	store        attendance.RecordStore
	employeeRepo employee.EmployeeRepository
}

func NewAttendanceService(store attendance.RecordStore, employeeRepo employee.EmployeeRepository) attendance.AttendanceService {
	return &attendanceServiceImpl{
		store:        store,
		employeeRepo: employeeRepo,
	}
}

// GetDay implements attendance.AttendanceService.
func (s *attendanceServiceImpl) GetDay(ctx context.Context, date string) (attendance.DayView, error) {
	sess := NewSession(s.store, s.employeeRepo)
	if err := sess.Load(ctx, date); err != nil {
		return attendance.DayView{}, err
	}
	return dayView(sess), nil
}

// SaveDay implements attendance.AttendanceService.
func (s *attendanceServiceImpl) SaveDay(ctx context.Context, date string, req attendance.SaveDayRequest) (attendance.DayView, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayView{}, err
	}

	sess := NewSession(s.store, s.employeeRepo)
	if err := sess.Load(ctx, date); err != nil {
		return attendance.DayView{}, err
	}

	for employeeID, status := range req.Marks {
		if err := sess.SetStatus(employeeID, status); err != nil {
			return attendance.DayView{}, err
		}
	}

	if err := sess.Save(ctx); err != nil {
		return attendance.DayView{}, err
	}
	return dayView(sess), nil
}

// MarkAll implements attendance.AttendanceService.
func (s *attendanceServiceImpl) MarkAll(ctx context.Context, date string, req attendance.MarkAllRequest) (attendance.DayView, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayView{}, err
	}

	sess := NewSession(s.store, s.employeeRepo)
	if err := sess.Load(ctx, date); err != nil {
		return attendance.DayView{}, err
	}

	var err error
	if req.Status == attendance.StatusPresent {
		err = sess.MarkAllPresent()
	} else {
		err = sess.MarkAllAbsent()
	}
	if err != nil {
		return attendance.DayView{}, err
	}

	if err := sess.Save(ctx); err != nil {
		return attendance.DayView{}, err
	}
	return dayView(sess), nil
}

func dayView(sess *Session) attendance.DayView {
	view := attendance.DayView{
		Date:      sess.Date(),
		Employees: make([]attendance.EmployeeDayStatus, 0, len(sess.Roster())),
	}

	for _, emp := range sess.Roster() {
		status := sess.Status(emp.ID)
		switch status {
		case attendance.StatusPresent:
			view.PresentCount++
		case attendance.StatusAbsent:
			view.AbsentCount++
		default:
			view.UnmarkedCount++
		}
		view.Employees = append(view.Employees, attendance.EmployeeDayStatus{
			EmployeeID:   emp.ID,
			Name:         emp.Name,
			Department:   emp.Department,
			Position:     emp.Position,
			EmployeeCode: emp.EmployeeCode,
			Status:       status,
		})
	}

	return view
}
