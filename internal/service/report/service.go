package report

import (
	"context"
	"fmt"
	"time"

	"github.com/attendit/attendit-backend-go/internal/domain/attendance"
	"github.com/attendit/attendit-backend-go/internal/domain/employee"
	"github.com/attendit/attendit-backend-go/internal/domain/report"
	"github.com/attendit/attendit-backend-go/internal/pkg/dateutil"
)

type ReportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	recordStore  attendance.RecordStore
}

func NewReportService(employeeRepo employee.EmployeeRepository, recordStore attendance.RecordStore) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo: employeeRepo,
		recordStore:  recordStore,
	}
}

// monthlyRows fetches the roster and the month's records and aggregates them.
func (s *ReportServiceImpl) monthlyRows(ctx context.Context, req report.MonthlyReportRequest) ([]report.MonthlyAttendance, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	roster, err := s.employeeRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	start, end := dateutil.MonthBounds(req.Year, req.Month)
	records, err := s.recordStore.GetByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance records: %w", err)
	}

	return Aggregate(roster, records, req.Year, req.Month)
}

// GenerateMonthlyReport generates the monthly attendance report.
func (s *ReportServiceImpl) GenerateMonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	rows, err := s.monthlyRows(ctx, req)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	start, end := dateutil.MonthBounds(req.Year, req.Month)
	return report.MonthlyReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: start,
		PeriodEnd:   end,
		GeneratedAt: dateutil.Now().Format(time.RFC3339),
		Employees:   rows,
	}, nil
}

// ExportCSV renders the monthly report as CSV text.
func (s *ReportServiceImpl) ExportCSV(ctx context.Context, req report.MonthlyReportRequest) (string, string, error) {
	rows, err := s.monthlyRows(ctx, req)
	if err != nil {
		return "", "", err
	}

	filename := fmt.Sprintf("attendance_report_%04d_%02d.csv", req.Year, req.Month)
	return filename, CSV(rows, req.Year, req.Month), nil
}

// GeneratePrintSummary produces the print/PDF payload for the month.
func (s *ReportServiceImpl) GeneratePrintSummary(ctx context.Context, req report.MonthlyReportRequest) (report.PrintSummary, error) {
	rows, err := s.monthlyRows(ctx, req)
	if err != nil {
		return report.PrintSummary{}, err
	}

	return PrintSummaryFrom(rows, req.Year, req.Month, dateutil.Now()), nil
}
