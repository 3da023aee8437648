package http

import (
	"encoding/json"
	"net/http"

	"github.com/attendit/attendit-backend-go/internal/domain/attendance"
	"github.com/attendit/attendit-backend-go/internal/handler/http/response"
	"github.com/attendit/attendit-backend-go/internal/pkg/dateutil"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	GetDay(w http.ResponseWriter, r *http.Request)
	SaveDay(w http.ResponseWriter, r *http.Request)
	MarkAll(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// GetDay handles GET /attendance/{date}
func (h *attendanceHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	result, err := h.attendanceService.GetDay(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetToday handles GET /attendance/today
func (h *attendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetDay(r.Context(), dateutil.Today())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SaveDay handles PUT /attendance/{date}
func (h *attendanceHandlerImpl) SaveDay(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	var req attendance.SaveDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.SaveDay(r.Context(), date, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance saved", result)
}

// MarkAll handles POST /attendance/{date}/mark-all
func (h *attendanceHandlerImpl) MarkAll(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	var req attendance.MarkAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.MarkAll(r.Context(), date, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance saved", result)
}
