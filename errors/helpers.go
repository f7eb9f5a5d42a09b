package errors

import (
	stderrors "errors"
)

// Is wraps the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode returns the code of the outermost PlatformError in err's chain.
// Returns CodeUnknown for nil or untyped errors.
//
//	if errors.GetCode(err) == errors.CodeNotFound {
//	    // suggest checking the organization name
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Code()
	}

	return CodeUnknown
}

// GetClassification returns the classification of the outermost PlatformError
// in err's chain. Untyped errors get the classification of CodeUnknown; nil
// is permanent.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Classification()
	}

	return ClassificationOf(CodeUnknown)
}

// IsRetryable reports whether err is classified as retryable.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
