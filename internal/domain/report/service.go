package report

import "context"

// ReportService defines monthly report generation and export.
type ReportService interface {
	// GenerateMonthlyReport aggregates the full roster against the month's
	// saved daily records. Every employee appears exactly once, sorted by
	// name; missing entries count as absent.
	GenerateMonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)

	// ExportCSV renders the monthly report as CSV text and suggests a
	// download filename.
	ExportCSV(ctx context.Context, req MonthlyReportRequest) (filename, csv string, err error)

	// GeneratePrintSummary produces the print/PDF payload for the month.
	GeneratePrintSummary(ctx context.Context, req MonthlyReportRequest) (PrintSummary, error)
}
