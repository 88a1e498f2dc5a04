package middleware

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"facilpay-api/config"
	"facilpay-api/logger"
)

// Locals keys shared between the request logger, the auth guard and the
// error handler.
const (
	LocalRequestID = "requestId"
	LocalUser      = "user"
	LocalError     = "error"
)

// RequestLogger emits exactly one structured record per request once the
// response is complete, carrying the correlation id, latency, redacted
// request/response metadata and a severity matching the status code.
func RequestLogger(cfg *config.Config) fiber.Handler {
	log := logger.Named("HttpLogger")

	return func(c *fiber.Ctx) error {
		requestID := resolveRequestID(c)
		c.Locals(LocalRequestID, requestID)
		c.Set("x-request-id", requestID)

		start := time.Now()

		var requestBody any
		if cfg.LogBody {
			requestBody = parseBody(c.Body())
		}

		// Run the rest of the chain. Errors are dispatched to the central
		// error handler here so the final status code is known before the
		// record is emitted.
		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().Config().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		durationMs := math.Round(float64(time.Since(start).Nanoseconds())/1e6*100) / 100
		statusCode := c.Response().StatusCode()
		method := c.Method()
		path := c.OriginalURL()

		fields := []zap.Field{
			zap.String("requestId", requestID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("statusCode", statusCode),
			zap.Float64("durationMs", durationMs),
		}
		if userID := logger.ExtractUserID(c.Locals(LocalUser)); userID != "" {
			fields = append(fields, zap.String("userId", userID))
		}

		request := map[string]any{}
		if headers := logger.SanitizeHeaders(c.GetReqHeaders()); headers != nil {
			request["headers"] = headers
		}
		if cfg.LogBody {
			if body := logger.SanitizeBody(requestBody, cfg.LogBodyMaxLength); body != nil {
				request["body"] = body
			}
		}
		if len(request) > 0 {
			fields = append(fields, zap.Any("request", request))
		}

		response := map[string]any{}
		if contentLength := len(c.Response().Body()); contentLength > 0 {
			response["contentLength"] = contentLength
		}
		if cfg.LogResponseBody {
			if body := logger.SanitizeBody(parseBody(c.Response().Body()), cfg.LogBodyMaxLength); body != nil {
				response["body"] = body
			}
		}
		if len(response) > 0 {
			fields = append(fields, zap.Any("response", response))
		}

		if statusCode >= fiber.StatusBadRequest {
			if errCtx := logger.NormalizeErrorContext(c.Locals(LocalError)); errCtx != nil {
				fields = append(fields, zap.Any("error", errCtx))
			}
		}

		message := fmt.Sprintf("%s %s %d %.1fms", method, path, statusCode, durationMs)
		switch {
		case statusCode >= fiber.StatusInternalServerError:
			log.Error(message, fields...)
		case statusCode >= fiber.StatusBadRequest:
			log.Warn(message, fields...)
		default:
			log.Info(message, fields...)
		}

		return nil
	}
}

// resolveRequestID prefers an inbound correlation header and falls back to a
// freshly generated id.
func resolveRequestID(c *fiber.Ctx) string {
	for _, header := range []string{"x-request-id", "x-correlation-id"} {
		if value := strings.TrimSpace(c.Get(header)); value != "" {
			return value
		}
	}
	return uuid.NewString()
}

// parseBody decodes a JSON body into a redactable structure, falling back to
// the raw string for non-JSON payloads. Empty bodies yield nil.
func parseBody(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return string(raw)
	}
	return decoded
}
