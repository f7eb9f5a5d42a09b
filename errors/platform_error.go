package errors

import "fmt"

// platformError is the package's PlatformError implementation. It is
// unexported so values are only built through New, Wrap and friends.
type platformError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]interface{}
	cause          error
}

// Error formats as "[CODE] message" with ": cause" appended when wrapping.
func (e *platformError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

func (e *platformError) Code() ErrorCode {
	return e.code
}

func (e *platformError) Classification() ErrorClassification {
	return e.classification
}

func (e *platformError) Message() string {
	return e.message
}

// Context returns a copy so callers cannot mutate the error.
func (e *platformError) Context() map[string]interface{} {
	return copyContext(e.context)
}

func (e *platformError) Unwrap() error {
	return e.cause
}

func copyContext(src map[string]interface{}) map[string]interface{} {
	if src == nil {
		return nil
	}
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
