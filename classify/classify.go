// Package classify maps raw upstream failures onto the closed set of error
// kinds the rest of the server reasons about.
//
// The mapping looks at the HTTP status of the github.UpstreamError found in
// an error chain; first match wins:
//
//	401                          Unauthorized
//	403 with x-ratelimit-reset   RateLimited
//	403                          Forbidden
//	404                          NotFound
//	>= 500                       ServerError
//	anything else                Unknown
//
// Validation failures and errors that are already classified pass through
// unchanged.
package classify

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/jmgilman/copilot-mcp/errors"
	"github.com/jmgilman/copilot-mcp/github"
	"github.com/jmgilman/copilot-mcp/logging"
	"github.com/jmgilman/copilot-mcp/validate"
)

// Classifier translates upstream failures into *Error values.
type Classifier struct {
	logger logging.Logger
	now    func() time.Time
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithClock replaces time.Now, which is used to compute rate limit
// retry-after hints.
func WithClock(now func() time.Time) Option {
	return func(c *Classifier) {
		c.now = now
	}
}

// New creates a Classifier that logs through logger. A nil logger discards.
func New(logger logging.Logger, opts ...Option) *Classifier {
	if logger == nil {
		logger = logging.Nop()
	}
	c := &Classifier{
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify translates err like Translate and logs the resulting
// classification. It returns nil only for a nil err.
func (c *Classifier) Classify(err error, operation string) error {
	translated := c.Translate(err, operation)

	var classified *Error
	if errors.As(translated, &classified) {
		args := []any{
			"operation", classified.operation,
			"kind", classified.kind,
			"status", classified.statusCode,
		}
		if len(classified.payload) > 0 {
			args = append(args, "payload", string(classified.payload))
		}
		if classified.kind == errors.CodeRateLimit {
			args = append(args, "retry_after_seconds", classified.retryAfterSeconds)
		}
		c.logger.Warn("github request failed", args...)
	}

	return translated
}

// Translate maps err onto an *Error without logging. Validation failures and
// values that already carry a classification are returned as-is.
func (c *Classifier) Translate(err error, operation string) error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) || validate.IsFailure(err) {
		return err
	}

	out := &Error{
		operation: operation,
		cause:     err,
	}

	var upstream *github.UpstreamError
	if !errors.As(err, &upstream) {
		out.kind = errors.CodeUnknown
		out.message = err.Error()
		return out
	}

	out.statusCode = upstream.StatusCode
	out.payload = upstream.Payload

	switch status := upstream.StatusCode; {
	case status == http.StatusUnauthorized:
		out.kind = errors.CodeUnauthorized
		out.message = "authentication failed: check that the GitHub token or GitHub App credentials are valid and not expired"
	case status == http.StatusForbidden:
		if reset, ok := upstream.Header(github.HeaderRateLimitReset); ok {
			c.rateLimited(out, reset)
			break
		}
		out.kind = errors.CodeForbidden
		out.message = "permission denied: the credentials lack the scopes required to manage GitHub Copilot for this organization or enterprise"
	case status == http.StatusNotFound:
		out.kind = errors.CodeNotFound
		out.message = "resource not found: check that the organization, enterprise or username exists and that Copilot is enabled for it"
	case status >= http.StatusInternalServerError:
		out.kind = errors.CodeServerError
		out.message = fmt.Sprintf("GitHub API returned %d: the service is having problems, try again later", status)
	default:
		out.kind = errors.CodeUnknown
		out.message = upstream.Message
		if out.message == "" {
			out.message = err.Error()
		}
	}

	return out
}

// rateLimited fills in a RateLimited error from the raw reset header. An
// unparsable header leaves ResetAt zero and the hint at 0 seconds.
func (c *Classifier) rateLimited(out *Error, reset string) {
	out.kind = errors.CodeRateLimit

	if unix, err := strconv.ParseInt(reset, 10, 64); err == nil {
		out.resetAt = time.Unix(unix, 0)
		wait := math.Ceil(out.resetAt.Sub(c.now()).Seconds())
		out.retryAfterSeconds = int(math.Max(wait, 0))
	}

	out.message = fmt.Sprintf("GitHub API rate limit exceeded: retry after %d seconds", out.retryAfterSeconds)
}
