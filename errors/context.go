package errors

import "errors"

// WithContext returns a copy of err with key set in its context map.
//
// A plain error is first promoted to a PlatformError with CodeUnknown.
// Returns nil if err is nil.
//
//	err := errors.New(errors.CodeInvalidInput, "org: must not be empty")
//	err = errors.WithContext(err, "field", "org")
func WithContext(err error, key string, value interface{}) PlatformError {
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap returns a copy of err with every entry of ctx merged into its
// context map. Entries in ctx override existing keys. Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	base := promote(err)
	merged := copyContext(base.Context())
	if merged == nil {
		merged = make(map[string]interface{}, len(ctx))
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &platformError{
		code:           base.Code(),
		classification: base.Classification(),
		message:        base.Message(),
		context:        merged,
		cause:          base.Unwrap(),
	}
}

// promote returns the PlatformError in err's chain, or wraps err as an
// unknown failure.
func promote(err error) PlatformError {
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		return platformErr
	}
	return &platformError{
		code:           CodeUnknown,
		classification: ClassificationOf(CodeUnknown),
		message:        err.Error(),
		cause:          err,
	}
}
