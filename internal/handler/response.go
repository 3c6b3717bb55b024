package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "github.com/hireloop/scheduler-api/pkg/errors"
)

// ErrorResponse is the body of every failed request: {"error": message}.
type ErrorResponse struct {
	Error string `json:"error"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// Error writes an error response with the status the error taxonomy maps to.
// Internal errors never leak their cause to the client.
func Error(c *gin.Context, err error) {
	status := apperrors.Status(err)

	// wrapped causes stay in the log, not the response
	message := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	if status >= 500 {
		message = "internal server error"
	}

	c.Error(err)
	c.JSON(status, NewErrorResponse(message))
}
