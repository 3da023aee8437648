package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/attendit/attendit-backend-go/internal/domain/report"
	"github.com/attendit/attendit-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	GetPrintSummary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func monthlyReportRequest(r *http.Request) (report.MonthlyReportRequest, error) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return report.MonthlyReportRequest{}, fmt.Errorf("invalid month parameter")
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return report.MonthlyReportRequest{}, fmt.Errorf("invalid year parameter")
	}

	return report.MonthlyReportRequest{Month: month, Year: year}, nil
}

// GetMonthlyReport handles GET /reports/attendance?month=&year=
func (h *reportHandlerImpl) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	req, err := monthlyReportRequest(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.reportService.GenerateMonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportCSV handles GET /reports/attendance/export?month=&year=
func (h *reportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	req, err := monthlyReportRequest(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	filename, csv, err := h.reportService.ExportCSV(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csv))
}

// GetPrintSummary handles GET /reports/attendance/print?month=&year=
func (h *reportHandlerImpl) GetPrintSummary(w http.ResponseWriter, r *http.Request) {
	req, err := monthlyReportRequest(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.reportService.GeneratePrintSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
