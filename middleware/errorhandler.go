package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"facilpay-api/logger"
	"facilpay-api/types"
)

// NewErrorHandler returns the central catch-all: every error escaping a
// handler is logged (unhandled ones with a stack at error level), recorded on
// the error side channel for the request logger, and turned into the
// structured error body.
func NewErrorHandler() fiber.ErrorHandler {
	log := logger.Named("ExceptionHandler")

	return func(c *fiber.Ctx, err error) error {
		statusCode := fiber.StatusInternalServerError
		name := "Internal Server Error"
		var message any = "Internal server error"
		var validationErrors []types.ValidationError

		var apiErr *types.ApiError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &apiErr):
			statusCode = apiErr.Status
			name = apiErr.Name
			message = apiErr.Message
			validationErrors = apiErr.ValidationErrors
		case errors.As(err, &fiberErr):
			statusCode = fiberErr.Code
			name = utilsStatusText(fiberErr.Code)
			message = fiberErr.Message
		default:
			// Unhandled failure: log with full context before responding,
			// and never leak internal detail to the caller.
			requestID, _ := c.Locals(LocalRequestID).(string)
			log.Error("Unhandled exception",
				zap.Error(err),
				zap.String("requestId", requestID),
				zap.String("method", c.Method()),
				zap.String("path", c.OriginalURL()),
				zap.Int("statusCode", statusCode),
				zap.String("userId", logger.ExtractUserID(c.Locals(LocalUser))),
			)
		}

		c.Locals(LocalError, map[string]any{
			"name":    name,
			"message": resolveErrorMessage(message),
		})

		return c.Status(statusCode).JSON(types.ErrorResponse{
			StatusCode:       statusCode,
			Timestamp:        time.Now().UTC().Format(time.RFC3339Nano),
			Path:             c.OriginalURL(),
			Message:          message,
			Error:            name,
			ValidationErrors: validationErrors,
		})
	}
}

// resolveErrorMessage flattens a message of unknown shape to a single string
// for the side-channel summary.
func resolveErrorMessage(message any) string {
	switch m := message.(type) {
	case string:
		return m
	case []string:
		return strings.Join(m, ", ")
	default:
		return "Unhandled exception"
	}
}

func utilsStatusText(code int) string {
	if text := fiber.NewError(code).Message; text != "" {
		return text
	}
	return "Error"
}
