package logger

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Redacted replaces any sensitive value before it reaches a log sink.
const Redacted = "[REDACTED]"

var headerRedactKeys = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
	"set-cookie":    {},
}

var bodyRedactKeys = map[string]struct{}{
	"password":       {},
	"pass":           {},
	"pwd":            {},
	"token":          {},
	"access_token":   {},
	"refresh_token":  {},
	"secret":         {},
	"apikey":         {},
	"api_key":        {},
	"pin":            {},
	"otp":            {},
	"cardnumber":     {},
	"card_number":    {},
	"cvv":            {},
	"cvc":            {},
	"bankaccount":    {},
	"bank_account":   {},
	"accountnumber":  {},
	"account_number": {},
}

// SanitizeHeaders returns a copy of headers with authorization and cookie
// values replaced by the redaction marker. Key casing is preserved; nil input
// yields nil.
func SanitizeHeaders(headers map[string][]string) map[string]any {
	if headers == nil {
		return nil
	}

	sanitized := make(map[string]any, len(headers))
	for key, values := range headers {
		if _, sensitive := headerRedactKeys[strings.ToLower(key)]; sensitive {
			sanitized[key] = Redacted
		} else if len(values) == 1 {
			sanitized[key] = values[0]
		} else {
			sanitized[key] = values
		}
	}

	return sanitized
}

// SanitizeBody prepares an arbitrary payload for logging: normalizes binary
// and time values, redacts sensitive keys at any nesting depth, and truncates
// oversized results. A nil payload yields nil, meaning nothing is logged.
func SanitizeBody(payload any, maxLength int) any {
	if payload == nil {
		return nil
	}

	normalized := normalizePayload(payload)
	redacted := redactSensitive(normalized)
	return truncatePayload(redacted, maxLength)
}

// ExtractUserID pulls a user identifier out of a request-attached identity,
// checking id, then userId, then sub. Returns "" when no candidate resolves.
func ExtractUserID(user any) string {
	record, ok := user.(map[string]any)
	if !ok {
		return ""
	}

	for _, key := range []string{"id", "userId", "sub"} {
		switch v := record[key].(type) {
		case string:
			return v
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			return strconv.Itoa(v)
		case uint:
			return strconv.FormatUint(uint64(v), 10)
		case nil:
			continue
		}
	}

	return ""
}

// NormalizeErrorContext reduces an error of unknown shape to a loggable
// {name, message} pair.
func NormalizeErrorContext(err any) map[string]any {
	switch e := err.(type) {
	case nil:
		return nil
	case string:
		return map[string]any{"message": e}
	case error:
		return map[string]any{"name": fmt.Sprintf("%T", e), "message": e.Error()}
	case map[string]any:
		name, _ := e["name"].(string)
		message, _ := e["message"].(string)
		if name != "" || message != "" {
			return map[string]any{"name": name, "message": message}
		}
	}
	return map[string]any{"message": fmt.Sprintf("%v", err)}
}

func redactSensitive(payload any) any {
	switch value := payload.(type) {
	case []any:
		result := make([]any, len(value))
		for i, item := range value {
			result[i] = redactSensitive(item)
		}
		return result
	case map[string]any:
		result := make(map[string]any, len(value))
		for key, item := range value {
			if _, sensitive := bodyRedactKeys[strings.ToLower(key)]; sensitive {
				result[key] = Redacted
			} else {
				result[key] = redactSensitive(item)
			}
		}
		return result
	default:
		return payload
	}
}

func truncatePayload(payload any, maxLength int) any {
	if maxLength <= 0 {
		return payload
	}

	if s, ok := payload.(string); ok {
		return truncateString(s, maxLength)
	}

	serialized, err := json.Marshal(payload)
	if err != nil {
		// Not serializable; better to log it untouched than to fail the request.
		return payload
	}
	if len(serialized) <= maxLength {
		return payload
	}

	return map[string]any{
		"truncated": true,
		"length":    len(serialized),
		"preview":   string(serialized[:maxLength]),
	}
}

func truncateString(value string, maxLength int) string {
	if len(value) <= maxLength {
		return value
	}
	return value[:maxLength] + "...[truncated]"
}

func normalizePayload(payload any) any {
	switch value := payload.(type) {
	case []byte:
		return fmt.Sprintf("[Buffer %d bytes]", len(value))
	case time.Time:
		return value.UTC().Format(time.RFC3339Nano)
	default:
		return payload
	}
}
