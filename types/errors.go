package types

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ApiError is the error type business logic raises. The central error handler
// translates it into an ErrorResponse body; anything else reaching that
// handler is treated as an unhandled failure.
type ApiError struct {
	Status           int
	Name             string
	Message          any // string or []string
	ValidationErrors []ValidationError
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("%v", e.Message)
}

// ValidationError carries the failing field name as structured metadata
// instead of parsing it out of message prose.
type ValidationError struct {
	Field  string   `json:"field"`
	Errors []string `json:"errors"`
}

// ErrorResponse is the body every client-visible error uses.
type ErrorResponse struct {
	StatusCode       int               `json:"statusCode"`
	Timestamp        string            `json:"timestamp"`
	Path             string            `json:"path"`
	Message          any               `json:"message"`
	Error            string            `json:"error"`
	ValidationErrors []ValidationError `json:"validationErrors,omitempty"`
}

// NewAuthError reports an authentication failure with a deliberately generic
// message.
func NewAuthError(message string) *ApiError {
	return &ApiError{
		Status:  fiber.StatusUnauthorized,
		Name:    "Unauthorized",
		Message: message,
	}
}

// NewNotFoundError reports a missing resource with identifying context.
func NewNotFoundError(message string) *ApiError {
	return &ApiError{
		Status:  fiber.StatusNotFound,
		Name:    "Not Found",
		Message: message,
	}
}

// NewValidationError reports malformed input with field-level detail.
func NewValidationError(messages []string, fields []ValidationError) *ApiError {
	var message any = "Validation failed"
	if len(messages) == 1 {
		message = messages[0]
	} else if len(messages) > 1 {
		message = messages
	}
	return &ApiError{
		Status:           fiber.StatusBadRequest,
		Name:             "Bad Request",
		Message:          message,
		ValidationErrors: fields,
	}
}

// NewBadRequestError reports malformed input without field detail, e.g. an
// unparseable body.
func NewBadRequestError(message string) *ApiError {
	return &ApiError{
		Status:  fiber.StatusBadRequest,
		Name:    "Bad Request",
		Message: message,
	}
}
