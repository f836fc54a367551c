package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
)

// Response is the success envelope every endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse writes the success envelope with the given status.
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{Success: true, Message: message, Data: data})
}

func errorResponse(c echo.Context, statusCode int, msg, fallback string) error {
	if msg == "" {
		msg = fallback
	}
	return c.JSON(statusCode, ErrorResponse{Error: msg, Code: statusCode})
}

// BadRequestResponse writes a 400 with the given message.
func BadRequestResponse(c echo.Context, msg string) error {
	return errorResponse(c, http.StatusBadRequest, msg, "Bad request")
}

// UnauthorizedResponse writes a 401.
func UnauthorizedResponse(c echo.Context, msg string) error {
	return errorResponse(c, http.StatusUnauthorized, msg, "Unauthorized")
}

// InternalServerErrorResponse writes a 500.
func InternalServerErrorResponse(c echo.Context, msg string) error {
	return errorResponse(c, http.StatusInternalServerError, msg, "Internal server error")
}

// DomainErrorResponse maps a domain error onto the HTTP error envelope using
// the shared error taxonomy; unknown errors become 500s.
func DomainErrorResponse(c echo.Context, err error) error {
	switch {
	case apperr.IsNotFound(err):
		return errorResponse(c, http.StatusNotFound, err.Error(), "Resource not found")
	case apperr.IsInvalidInput(err):
		return errorResponse(c, http.StatusBadRequest, err.Error(), "Bad request")
	case apperr.IsConflict(err):
		return errorResponse(c, http.StatusConflict, err.Error(), "Conflict")
	default:
		return errorResponse(c, http.StatusInternalServerError, err.Error(), "Internal server error")
	}
}
