package errors

import "fmt"

// New creates a PlatformError classified by the default table for code.
//
//	err := errors.New(errors.CodeNotFound, "organization not found")
func New(code ErrorCode, message string) PlatformError {
	return &platformError{
		code:           code,
		classification: ClassificationOf(code),
		message:        message,
	}
}

// Newf is New with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) PlatformError {
	return New(code, fmt.Sprintf(format, args...))
}
