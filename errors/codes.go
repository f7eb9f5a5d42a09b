package errors

// ErrorCode names a failure kind. Codes are strings so they read well in logs
// and serialize naturally to JSON.
type ErrorCode string

const (
	// Caller errors.

	// CodeInvalidInput indicates a parameter failed validation.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates the server configuration is unusable.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Upstream errors.

	// CodeUnauthorized indicates GitHub rejected the credentials.
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// CodeForbidden indicates the credentials lack permission for the operation.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// CodeRateLimit indicates the GitHub API rate limit has been exceeded.
	CodeRateLimit ErrorCode = "RATE_LIMIT_EXCEEDED"

	// CodeNotFound indicates the organization, enterprise or user does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeServerError indicates GitHub answered with a 5xx status.
	CodeServerError ErrorCode = "SERVER_ERROR"

	// System errors.

	// CodeInternal indicates a bug or unexpected state inside this process.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates a failure that fits no other kind.
	CodeUnknown ErrorCode = "UNKNOWN"
)
