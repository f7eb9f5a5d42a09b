// Package errors provides the structured error type shared by every layer of
// the Copilot administration server.
//
// Every error that crosses a package boundary is a PlatformError: it carries an
// ErrorCode naming the failure kind, an ErrorClassification that tells the retry
// layer whether repeating the call can help, a human-readable message and an
// optional context map. The package stays compatible with the standard library
// (errors.Is, errors.As, errors.Unwrap).
//
// # Taxonomy
//
// The codes mirror the failure kinds surfaced to MCP clients:
//
//	CodeInvalidInput    caller error, rejected before any I/O     PERMANENT
//	CodeUnauthorized    bad token or app credentials              PERMANENT
//	CodeNotFound        unknown organization, enterprise or user  PERMANENT
//	CodeForbidden       authenticated but not allowed             RETRYABLE
//	CodeRateLimit       GitHub rate limit hit                     RETRYABLE
//	CodeServerError     GitHub returned 5xx                       RETRYABLE
//	CodeUnknown         anything else                             RETRYABLE
//
// CodeInvalidConfig and CodeInternal are used by the binary itself and are
// permanent.
//
// # Usage
//
//	err := errors.New(errors.CodeInvalidInput, "org: must not be empty")
//	err = errors.WithContext(err, "field", "org")
//
//	if errors.IsRetryable(err) {
//	    // back off and try again
//	}
//
// For API responses, ToJSON flattens any error into an ErrorResponse without
// exposing the wrapped chain.
package errors
