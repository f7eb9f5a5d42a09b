package retry

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/copilot-mcp/classify"
	"github.com/jmgilman/copilot-mcp/errors"
	"github.com/jmgilman/copilot-mcp/logging"
	"github.com/jmgilman/copilot-mcp/validate"
)

func serverError() error {
	return classify.NewError(errors.CodeServerError, http.StatusBadGateway, "bad gateway")
}

func TestDo(t *testing.T) {
	t.Parallel()

	t.Run("success returns immediately", func(t *testing.T) {
		t.Parallel()

		calls := 0
		got, err := Do(context.Background(), Policy{BaseBackoff: time.Millisecond}, "get billing", func(context.Context) (string, error) {
			calls++
			return "ok", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, 1, calls)
	})

	t.Run("two server errors then success", func(t *testing.T) {
		t.Parallel()

		const base = 20 * time.Millisecond
		calls := 0
		start := time.Now()

		got, err := Do(context.Background(), Policy{MaxAttempts: 3, BaseBackoff: base}, "list seats", func(context.Context) (string, error) {
			calls++
			if calls < 3 {
				return "", serverError()
			}
			return "seats", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "seats", got)
		assert.Equal(t, 3, calls)
		assert.GreaterOrEqual(t, time.Since(start), 3*base)
	})

	t.Run("exhausted budget returns the last error", func(t *testing.T) {
		t.Parallel()

		calls := 0
		_, err := Do(context.Background(), Policy{MaxAttempts: 3, BaseBackoff: time.Millisecond}, "list seats", func(context.Context) (int, error) {
			calls++
			return 0, classify.NewError(errors.CodeServerError, 500+calls, fmt.Sprintf("attempt %d", calls))
		})

		require.Error(t, err)
		assert.Equal(t, 3, calls)

		var classified *classify.Error
		require.True(t, errors.As(err, &classified))
		assert.Equal(t, 503, classified.StatusCode())
	})

	t.Run("single attempt policy never sleeps", func(t *testing.T) {
		t.Parallel()

		calls := 0
		_, err := Do(context.Background(), Policy{MaxAttempts: 1, BaseBackoff: time.Hour}, "list seats", func(context.Context) (int, error) {
			calls++
			return 0, serverError()
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("untyped errors are retried", func(t *testing.T) {
		t.Parallel()

		calls := 0
		_, err := Do(context.Background(), Policy{MaxAttempts: 2, BaseBackoff: time.Millisecond}, "get usage", func(context.Context) (int, error) {
			calls++
			return 0, fmt.Errorf("connection reset")
		})

		require.EqualError(t, err, "connection reset")
		assert.Equal(t, 2, calls)
	})
}

func TestDo_PermanentFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{
			name: "unauthorized",
			err:  classify.NewError(errors.CodeUnauthorized, http.StatusUnauthorized, "bad credentials"),
		},
		{
			name: "not found",
			err:  classify.NewError(errors.CodeNotFound, http.StatusNotFound, "not found"),
		},
		{
			name: "validation failure",
			err:  validate.Failure(validate.FieldOrg, "must not be empty"),
		},
		{
			name: "context canceled",
			err:  fmt.Errorf("request aborted: %w", context.Canceled),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			start := time.Now()

			_, err := Do(context.Background(), Policy{MaxAttempts: 3, BaseBackoff: time.Hour}, "get seat details", func(context.Context) (int, error) {
				calls++
				return 0, tt.err
			})

			assert.Same(t, tt.err, err)
			assert.Equal(t, 1, calls)
			assert.Less(t, time.Since(start), time.Second)
		})
	}
}

func TestDo_ContextCancelledDuringBackoff(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	calls := 0
	start := time.Now()
	_, err := Do(ctx, Policy{MaxAttempts: 3, BaseBackoff: time.Hour}, "get usage", func(context.Context) (int, error) {
		calls++
		return 0, serverError()
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, calls)
	assert.Less(t, time.Since(start), time.Minute)
}

func TestDo_CustomPredicate(t *testing.T) {
	t.Parallel()

	calls := 0
	_, err := Do(context.Background(), Policy{
		MaxAttempts: 5,
		BaseBackoff: time.Millisecond,
		Retryable:   func(error) bool { return false },
	}, "get usage", func(context.Context) (int, error) {
		calls++
		return 0, serverError()
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_LogsRetries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(&buf, logging.Options{Level: slog.LevelDebug, Format: logging.FormatJSON})

	_, err := Do(context.Background(), Policy{
		MaxAttempts: 3,
		BaseBackoff: time.Millisecond,
		Logger:      logger,
	}, "add seats", func(context.Context) (int, error) {
		return 0, serverError()
	})
	require.Error(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"operation":"add seats"`)
	assert.Contains(t, lines[0], `"attempt":1`)
	assert.Contains(t, lines[1], `"attempt":2`)
	assert.Contains(t, lines[1], `"max_attempts":3`)
}

func TestRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "untyped", err: fmt.Errorf("boom"), want: true},
		{name: "forbidden", err: classify.NewError(errors.CodeForbidden, 403, "forbidden"), want: true},
		{name: "rate limited", err: classify.NewError(errors.CodeRateLimit, 403, "slow down"), want: true},
		{name: "server error", err: serverError(), want: true},
		{name: "unknown", err: classify.NewError(errors.CodeUnknown, 422, "Validation Failed"), want: true},
		{name: "unauthorized", err: classify.NewError(errors.CodeUnauthorized, 401, "bad credentials"), want: false},
		{name: "not found", err: classify.NewError(errors.CodeNotFound, 404, "not found"), want: false},
		{name: "validation failure", err: validate.Failure("page", "must be greater than or equal to 1"), want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "deadline", err: fmt.Errorf("wrapped: %w", context.DeadlineExceeded), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Retryable(tt.err))
		})
	}
}
