package response

import (
	"errors"
	"net/http"

	"github.com/attendit/attendit-backend-go/internal/domain/attendance"
	"github.com/attendit/attendit-backend-go/internal/domain/auth"
	"github.com/attendit/attendit-backend-go/internal/domain/employee"
	"github.com/attendit/attendit-backend-go/internal/domain/report"
	"github.com/attendit/attendit-backend-go/internal/domain/user"
	"github.com/attendit/attendit-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrInvalidCursor):
		BadRequest(w, "Invalid pagination cursor", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Status must be present or absent", nil)

	// Report domain errors
	case errors.Is(err, report.ErrInvalidMonth):
		BadRequest(w, "Month must be between 1 and 12", nil)
	case errors.Is(err, report.ErrInvalidYear):
		BadRequest(w, "Year must be a valid year", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
