package errors

// PlatformError is an error with a code, a retry classification and optional
// context metadata.
type PlatformError interface {
	error

	// Code identifies the failure kind.
	Code() ErrorCode

	// Classification reports whether retrying may succeed.
	Classification() ErrorClassification

	// Message returns the human-readable message without the code prefix.
	Message() string

	// Context returns a copy of the attached metadata, or nil if there is none.
	Context() map[string]interface{}

	// Unwrap returns the wrapped cause, if any.
	Unwrap() error
}
