package errors

// ErrorClassification tells the retry layer whether an operation that failed
// with a given error is worth repeating.
type ErrorClassification string

const (
	// ClassificationRetryable marks failures that may clear up on their own.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent marks failures that will recur on every attempt.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications is the retry predicate over the error taxonomy.
// Only caller errors, Unauthorized and NotFound stop a retry loop early.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeForbidden:   ClassificationRetryable,
	CodeRateLimit:   ClassificationRetryable,
	CodeServerError: ClassificationRetryable,
	CodeUnknown:     ClassificationRetryable,

	CodeInvalidInput:  ClassificationPermanent,
	CodeInvalidConfig: ClassificationPermanent,
	CodeUnauthorized:  ClassificationPermanent,
	CodeNotFound:      ClassificationPermanent,
	CodeInternal:      ClassificationPermanent,
}

// ClassificationOf returns the default classification for an error code.
// Codes outside the taxonomy are permanent.
func ClassificationOf(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
