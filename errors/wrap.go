package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps err with a code and message, keeping err reachable through
// Unwrap, errors.Is and errors.As.
//
// When err already carries a PlatformError its classification is kept, so
// wrapping a retryable failure in a higher-level message does not silently
// turn it permanent. Returns nil if err is nil.
//
//	raw, err := os.ReadFile(path)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeInvalidConfig, "failed to read private key")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	if err == nil {
		return nil
	}

	classification := ClassificationOf(code)
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		classification = platformErr.Classification()
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		cause:          err,
	}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}
