package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/copilot-mcp/errors"
	"github.com/jmgilman/copilot-mcp/github"
	"github.com/jmgilman/copilot-mcp/logging"
	"github.com/jmgilman/copilot-mcp/validate"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func TestClassifier_Translate(t *testing.T) {
	t.Parallel()

	reset := strconv.FormatInt(fixedNow.Add(60*time.Second).Unix(), 10)

	tests := []struct {
		name        string
		err         error
		wantKind    errors.ErrorCode
		wantStatus  int
		wantMessage string
		retryable   bool
	}{
		{
			name:        "401 is unauthorized",
			err:         &github.UpstreamError{StatusCode: http.StatusUnauthorized, Message: "Bad credentials"},
			wantKind:    errors.CodeUnauthorized,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "authentication failed",
		},
		{
			name: "403 with reset header is rate limited",
			err: &github.UpstreamError{
				StatusCode: http.StatusForbidden,
				Headers:    map[string]string{github.HeaderRateLimitReset: reset},
			},
			wantKind:    errors.CodeRateLimit,
			wantStatus:  http.StatusForbidden,
			wantMessage: "retry after 60 seconds",
			retryable:   true,
		},
		{
			name:        "403 without reset header is forbidden",
			err:         &github.UpstreamError{StatusCode: http.StatusForbidden, Message: "Resource not accessible by integration"},
			wantKind:    errors.CodeForbidden,
			wantStatus:  http.StatusForbidden,
			wantMessage: "permission denied",
			retryable:   true,
		},
		{
			name:        "404 is not found",
			err:         &github.UpstreamError{StatusCode: http.StatusNotFound, Message: "Not Found"},
			wantKind:    errors.CodeNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "check that the organization",
		},
		{
			name:        "500 is server error",
			err:         &github.UpstreamError{StatusCode: http.StatusInternalServerError},
			wantKind:    errors.CodeServerError,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "try again later",
			retryable:   true,
		},
		{
			name:        "503 is server error",
			err:         &github.UpstreamError{StatusCode: http.StatusServiceUnavailable},
			wantKind:    errors.CodeServerError,
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: "503",
			retryable:   true,
		},
		{
			name:        "422 keeps the upstream message",
			err:         &github.UpstreamError{StatusCode: http.StatusUnprocessableEntity, Message: "Validation Failed"},
			wantKind:    errors.CodeUnknown,
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "Validation Failed",
			retryable:   true,
		},
		{
			name:        "429 without a 403 is unknown",
			err:         &github.UpstreamError{StatusCode: http.StatusTooManyRequests, Message: "Too Many Requests"},
			wantKind:    errors.CodeUnknown,
			wantStatus:  http.StatusTooManyRequests,
			wantMessage: "Too Many Requests",
			retryable:   true,
		},
		{
			name:        "transport failure is unknown",
			err:         &github.UpstreamError{Message: "dial tcp: connection refused"},
			wantKind:    errors.CodeUnknown,
			wantMessage: "dial tcp: connection refused",
			retryable:   true,
		},
		{
			name:        "untyped error is unknown",
			err:         fmt.Errorf("boom"),
			wantKind:    errors.CodeUnknown,
			wantMessage: "boom",
			retryable:   true,
		},
		{
			name:        "wrapped upstream error is found in the chain",
			err:         fmt.Errorf("listing seats: %w", &github.UpstreamError{StatusCode: http.StatusNotFound}),
			wantKind:    errors.CodeNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "resource not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := New(logging.Nop(), WithClock(fixedClock))
			got := c.Translate(tt.err, "list seats")

			var classified *Error
			require.True(t, errors.As(got, &classified))
			assert.Equal(t, tt.wantKind, classified.Code())
			assert.Equal(t, tt.wantStatus, classified.StatusCode())
			assert.Contains(t, classified.Message(), tt.wantMessage)
			assert.Equal(t, "list seats", classified.Operation())
			assert.Equal(t, tt.retryable, errors.IsRetryable(got))
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassifier_RateLimit(t *testing.T) {
	t.Parallel()

	t.Run("retry after is computed from the reset header", func(t *testing.T) {
		t.Parallel()

		resetAt := fixedNow.Add(60 * time.Second)
		c := New(logging.Nop(), WithClock(fixedClock))

		got := c.Translate(&github.UpstreamError{
			StatusCode: http.StatusForbidden,
			Headers:    map[string]string{github.HeaderRateLimitReset: strconv.FormatInt(resetAt.Unix(), 10)},
			Payload:    json.RawMessage(`{"message":"API rate limit exceeded"}`),
		}, "get usage")

		var classified *Error
		require.True(t, errors.As(got, &classified))
		assert.Equal(t, errors.CodeRateLimit, classified.Code())
		assert.Equal(t, 60*time.Second, classified.RetryAfter())
		assert.True(t, resetAt.Equal(classified.ResetAt()))
		assert.JSONEq(t, `{"message":"API rate limit exceeded"}`, string(classified.Payload()))
		assert.Equal(t, 60, classified.Context()["retry_after_seconds"])
	})

	t.Run("partial seconds round up", func(t *testing.T) {
		t.Parallel()

		now := fixedNow.Add(-500 * time.Millisecond)
		c := New(logging.Nop(), WithClock(func() time.Time { return now }))

		got := c.Translate(&github.UpstreamError{
			StatusCode: http.StatusForbidden,
			Headers:    map[string]string{github.HeaderRateLimitReset: strconv.FormatInt(fixedNow.Add(10*time.Second).Unix(), 10)},
		}, "get usage")

		var classified *Error
		require.True(t, errors.As(got, &classified))
		assert.Equal(t, 11*time.Second, classified.RetryAfter())
	})

	t.Run("reset in the past clamps to zero", func(t *testing.T) {
		t.Parallel()

		c := New(logging.Nop(), WithClock(fixedClock))

		got := c.Translate(&github.UpstreamError{
			StatusCode: http.StatusForbidden,
			Headers:    map[string]string{github.HeaderRateLimitReset: strconv.FormatInt(fixedNow.Add(-time.Minute).Unix(), 10)},
		}, "get usage")

		var classified *Error
		require.True(t, errors.As(got, &classified))
		assert.Equal(t, errors.CodeRateLimit, classified.Code())
		assert.Zero(t, classified.RetryAfter())
	})

	t.Run("unparsable reset is still rate limited", func(t *testing.T) {
		t.Parallel()

		c := New(logging.Nop(), WithClock(fixedClock))

		got := c.Translate(&github.UpstreamError{
			StatusCode: http.StatusForbidden,
			Headers:    map[string]string{github.HeaderRateLimitReset: "soon"},
		}, "get usage")

		var classified *Error
		require.True(t, errors.As(got, &classified))
		assert.Equal(t, errors.CodeRateLimit, classified.Code())
		assert.True(t, classified.ResetAt().IsZero())
		assert.Zero(t, classified.RetryAfter())
		assert.NotContains(t, classified.Context(), "reset_at")
	})
}

func TestClassifier_PassThrough(t *testing.T) {
	t.Parallel()

	c := New(logging.Nop())

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, c.Translate(nil, "op"))
		assert.NoError(t, c.Classify(nil, "op"))
	})

	t.Run("validation failures are untouched", func(t *testing.T) {
		t.Parallel()

		failure := validate.OrganizationName("-bad-")
		require.Error(t, failure)

		assert.Same(t, failure, c.Classify(failure, "op"))
	})

	t.Run("classified errors are untouched", func(t *testing.T) {
		t.Parallel()

		classified := NewError(errors.CodeServerError, http.StatusBadGateway, "bad gateway")

		assert.Same(t, classified, c.Translate(classified, "op"))
	})

	t.Run("context cancellation stays visible", func(t *testing.T) {
		t.Parallel()

		got := c.Translate(context.Canceled, "op")

		assert.Equal(t, errors.CodeUnknown, errors.GetCode(got))
		assert.ErrorIs(t, got, context.Canceled)
	})
}

func TestClassifier_ClassifyLogs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(&buf, logging.Options{Level: slog.LevelDebug, Format: logging.FormatJSON})
	c := New(logger, WithClock(fixedClock))

	got := c.Classify(&github.UpstreamError{
		StatusCode: http.StatusNotFound,
		Payload:    json.RawMessage(`{"message":"Not Found"}`),
	}, "get seat details")

	assert.Equal(t, errors.CodeNotFound, errors.GetCode(got))

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "get seat details", record["operation"])
	assert.Equal(t, "NOT_FOUND", record["kind"])
	assert.EqualValues(t, 404, record["status"])
	assert.Equal(t, `{"message":"Not Found"}`, record["payload"])
}

func TestError_JSONEnvelope(t *testing.T) {
	t.Parallel()

	c := New(logging.Nop(), WithClock(fixedClock))
	got := c.Translate(&github.UpstreamError{
		StatusCode: http.StatusForbidden,
		Headers:    map[string]string{github.HeaderRateLimitReset: strconv.FormatInt(fixedNow.Add(30*time.Second).Unix(), 10)},
	}, "list seats")

	resp := errors.ToJSON(got)

	require.NotNil(t, resp)
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", resp.Code)
	assert.Equal(t, "RETRYABLE", resp.Classification)
	assert.Equal(t, 30, resp.Context["retry_after_seconds"])
	assert.Equal(t, "list seats", resp.Context["operation"])
	assert.Equal(t, "2024-06-01T12:00:30Z", resp.Context["reset_at"])
}
