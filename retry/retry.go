// Package retry runs upstream calls under a bounded exponential backoff.
//
// Attempts are sequential. After a retryable failure on attempt n the loop
// sleeps BaseBackoff * 2^(n-1) and tries again, until MaxAttempts is reached.
// Permanent failures and context cancellation end the loop at once.
package retry

import (
	"context"
	"time"

	goretry "github.com/sethvargo/go-retry"

	"github.com/jmgilman/copilot-mcp/errors"
	"github.com/jmgilman/copilot-mcp/logging"
)

const (
	// DefaultMaxAttempts is the attempt budget, first call included.
	DefaultMaxAttempts = 3

	// DefaultBaseBackoff is the sleep after the first failed attempt.
	DefaultBaseBackoff = time.Second
)

// Policy configures Do. Zero fields take the package defaults.
type Policy struct {
	// MaxAttempts bounds the number of calls, first call included.
	MaxAttempts int

	// BaseBackoff is doubled after every failed attempt.
	BaseBackoff time.Duration

	// Retryable decides whether a failure is worth another attempt.
	// Defaults to Retryable.
	Retryable func(error) bool

	// Logger receives one record per scheduled retry.
	Logger logging.Logger
}

// DefaultPolicy returns the policy used when none is configured.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: DefaultMaxAttempts,
		BaseBackoff: DefaultBaseBackoff,
		Retryable:   Retryable,
		Logger:      logging.Nop(),
	}
}

func (p Policy) withDefaults() Policy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = DefaultMaxAttempts
	}
	if p.BaseBackoff <= 0 {
		p.BaseBackoff = DefaultBaseBackoff
	}
	if p.Retryable == nil {
		p.Retryable = Retryable
	}
	if p.Logger == nil {
		p.Logger = logging.Nop()
	}
	return p
}

// Retryable is the default predicate. Classified errors are retried according
// to their classification, untyped errors count as unknown and are retried,
// and context cancellation or expiry never is.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return errors.IsRetryable(err)
}

// Do calls fn until it succeeds, fails permanently or the attempt budget is
// spent, and returns the last result. operation names the call in log
// records.
func Do[T any](ctx context.Context, policy Policy, operation string, fn func(context.Context) (T, error)) (T, error) {
	policy = policy.withDefaults()

	var (
		result  T
		attempt int
		lastErr error
	)

	exponential := goretry.WithMaxRetries(uint64(policy.MaxAttempts-1), goretry.NewExponential(policy.BaseBackoff))
	backoff := goretry.BackoffFunc(func() (time.Duration, bool) {
		delay, stop := exponential.Next()
		if !stop {
			policy.Logger.Warn("retrying github request",
				"operation", operation,
				"attempt", attempt,
				"max_attempts", policy.MaxAttempts,
				"delay", delay,
				"error", lastErr,
			)
		}
		return delay, stop
	})

	err := goretry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		v, err := fn(ctx)
		if err == nil {
			result = v
			return nil
		}

		lastErr = err
		if policy.Retryable(err) {
			return goretry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}
