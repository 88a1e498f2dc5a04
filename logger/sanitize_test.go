package logger

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeHeaders(t *testing.T) {
	headers := map[string][]string{
		"Authorization": {"Bearer secret-token"},
		"Cookie":        {"session=abc"},
		"Set-Cookie":    {"a=1", "b=2"},
		"Content-Type":  {"application/json"},
		"X-Request-Id":  {"abc-123"},
	}

	sanitized := SanitizeHeaders(headers)

	assert.Equal(t, Redacted, sanitized["Authorization"])
	assert.Equal(t, Redacted, sanitized["Cookie"])
	assert.Equal(t, Redacted, sanitized["Set-Cookie"])
	assert.Equal(t, "application/json", sanitized["Content-Type"])
	assert.Equal(t, "abc-123", sanitized["X-Request-Id"])
}

func TestSanitizeHeadersNil(t *testing.T) {
	assert.Nil(t, SanitizeHeaders(nil))
}

func TestSanitizeBodyRedactsNestedKeys(t *testing.T) {
	payload := map[string]any{
		"password": "x",
		"nested":   map[string]any{"token": "y", "note": "ok"},
		"items": []any{
			map[string]any{"cvv": "123", "amount": 10.0},
		},
		"email": "jane@x.com",
	}

	result := SanitizeBody(payload, 2048)

	body, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, Redacted, body["password"])
	assert.Equal(t, "jane@x.com", body["email"])

	nested := body["nested"].(map[string]any)
	assert.Equal(t, Redacted, nested["token"])
	assert.Equal(t, "ok", nested["note"])

	item := body["items"].([]any)[0].(map[string]any)
	assert.Equal(t, Redacted, item["cvv"])
	assert.Equal(t, 10.0, item["amount"])
}

func TestSanitizeBodyCaseInsensitiveKeys(t *testing.T) {
	payload := map[string]any{
		"Password":     "x",
		"ACCESS_TOKEN": "y",
		"Api_Key":      "z",
	}

	body := SanitizeBody(payload, 2048).(map[string]any)
	assert.Equal(t, Redacted, body["Password"])
	assert.Equal(t, Redacted, body["ACCESS_TOKEN"])
	assert.Equal(t, Redacted, body["Api_Key"])
}

func TestSanitizeBodyIdempotent(t *testing.T) {
	payload := map[string]any{
		"password": "x",
		"nested":   map[string]any{"secret": "y"},
	}

	once := SanitizeBody(payload, 2048)
	twice := SanitizeBody(once, 2048)
	assert.Equal(t, once, twice)
}

func TestSanitizeBodyTruncatesLargePayloads(t *testing.T) {
	payload := map[string]any{"data": strings.Repeat("a", 100)}

	result := SanitizeBody(payload, 50)

	summary, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, summary["truncated"])
	assert.Greater(t, summary["length"].(int), 50)
	assert.Len(t, summary["preview"].(string), 50)
}

func TestSanitizeBodyTruncatesStrings(t *testing.T) {
	result := SanitizeBody(strings.Repeat("a", 20), 10)
	assert.Equal(t, strings.Repeat("a", 10)+"...[truncated]", result)
}

func TestSanitizeBodyUnderLimitPassesThrough(t *testing.T) {
	payload := map[string]any{"ok": "v"}
	assert.Equal(t, payload, SanitizeBody(payload, 2048))
}

func TestSanitizeBodyNormalizesSpecialValues(t *testing.T) {
	assert.Equal(t, "[Buffer 5 bytes]", SanitizeBody([]byte("hello"), 2048))

	ts := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-30T12:00:00Z", SanitizeBody(ts, 2048))
}

func TestSanitizeBodyNil(t *testing.T) {
	assert.Nil(t, SanitizeBody(nil, 2048))
}

func TestExtractUserID(t *testing.T) {
	tests := []struct {
		name string
		user any
		want string
	}{
		{"id string", map[string]any{"id": "u1"}, "u1"},
		{"userId number", map[string]any{"userId": float64(42)}, "42"},
		{"sub fallback", map[string]any{"sub": "abc"}, "abc"},
		{"id wins over sub", map[string]any{"id": "u1", "sub": "abc"}, "u1"},
		{"not a map", "nope", ""},
		{"nil", nil, ""},
		{"empty map", map[string]any{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractUserID(tt.user))
		})
	}
}

func TestNormalizeErrorContext(t *testing.T) {
	assert.Nil(t, NormalizeErrorContext(nil))

	assert.Equal(t,
		map[string]any{"message": "boom"},
		NormalizeErrorContext("boom"),
	)

	ctx := NormalizeErrorContext(errors.New("broken"))
	assert.Equal(t, "broken", ctx["message"])
	assert.NotEmpty(t, ctx["name"])

	assert.Equal(t,
		map[string]any{"name": "Unauthorized", "message": "Invalid credentials"},
		NormalizeErrorContext(map[string]any{"name": "Unauthorized", "message": "Invalid credentials"}),
	)
}
