package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIResponse is the envelope returned by every endpoint. Soft failures keep
// HTTP 200 with Success=false and a human-readable Message; hard failures set
// Error alongside a non-2xx status.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success sends a successful response.
func Success(c echo.Context, status int, data any) error {
	if status == 0 {
		status = http.StatusOK
	}
	return c.JSON(status, APIResponse{Success: true, Data: data})
}

// SuccessCount sends a successful response with an explicit record count.
func SuccessCount(c echo.Context, status int, data any, count int) error {
	if status == 0 {
		status = http.StatusOK
	}
	return c.JSON(status, APIResponse{Success: true, Data: data, Count: &count})
}

// SoftFailure reports an outcome where nothing went wrong technically but no
// useful result exists, such as a scan that found zero businesses.
func SoftFailure(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, APIResponse{Success: false, Message: message})
}

// Error sends an error response.
func Error(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, APIResponse{Success: false, Error: message})
}
