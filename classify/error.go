package classify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmgilman/copilot-mcp/errors"
)

// Error is a classified upstream failure. Its kind is one of CodeUnauthorized,
// CodeForbidden, CodeRateLimit, CodeNotFound, CodeServerError or CodeUnknown.
type Error struct {
	kind              errors.ErrorCode
	message           string
	operation         string
	statusCode        int
	payload           json.RawMessage
	resetAt           time.Time
	retryAfterSeconds int
	cause             error
}

// NewError builds a classified error directly, for callers that already know
// the kind.
func NewError(kind errors.ErrorCode, statusCode int, message string) *Error {
	return &Error{
		kind:       kind,
		message:    message,
		statusCode: statusCode,
	}
}

// Error formats as "[KIND] message".
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.kind, e.message)
}

// Code returns the error kind.
func (e *Error) Code() errors.ErrorCode {
	return e.kind
}

// Classification reports whether the failure is worth retrying.
func (e *Error) Classification() errors.ErrorClassification {
	return errors.ClassificationOf(e.kind)
}

// Message returns the actionable message shown to callers.
func (e *Error) Message() string {
	return e.message
}

// Context returns the operation, status and rate limit hints as metadata.
func (e *Error) Context() map[string]interface{} {
	ctx := make(map[string]interface{}, 4)
	if e.operation != "" {
		ctx["operation"] = e.operation
	}
	if e.statusCode != 0 {
		ctx["status_code"] = e.statusCode
	}
	if e.kind == errors.CodeRateLimit {
		ctx["retry_after_seconds"] = e.retryAfterSeconds
		if !e.resetAt.IsZero() {
			ctx["reset_at"] = e.resetAt.UTC().Format(time.RFC3339)
		}
	}
	if len(ctx) == 0 {
		return nil
	}
	return ctx
}

// Unwrap returns the raw failure.
func (e *Error) Unwrap() error {
	return e.cause
}

// Operation names the facade operation that failed.
func (e *Error) Operation() string {
	return e.operation
}

// StatusCode is the upstream HTTP status, or 0 if none was received.
func (e *Error) StatusCode() int {
	return e.statusCode
}

// Payload is the raw upstream error body.
func (e *Error) Payload() json.RawMessage {
	return e.payload
}

// ResetAt is when the rate limit window resets. Zero unless the kind is
// CodeRateLimit and GitHub sent a parsable reset time.
func (e *Error) ResetAt() time.Time {
	return e.resetAt
}

// RetryAfter is the wait suggested to the caller of a rate limited request.
func (e *Error) RetryAfter() time.Duration {
	return time.Duration(e.retryAfterSeconds) * time.Second
}

var _ errors.PlatformError = (*Error)(nil)
