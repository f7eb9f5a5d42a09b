package github

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// HeaderRateLimitReset is the response header carrying the unix time, in
// seconds, at which the current rate limit window resets.
const HeaderRateLimitReset = "x-ratelimit-reset"

// UpstreamError is a failed call to the GitHub API as the provider saw it.
// Every field is optional: a transport failure has no status, headers or
// payload.
type UpstreamError struct {
	// StatusCode is the HTTP status, or 0 if no response was received.
	StatusCode int

	// Headers holds the response headers keyed by lower-case name.
	Headers map[string]string

	// Payload is the response body GitHub sent with the error.
	Payload json.RawMessage

	// Message is the provider's description of the failure.
	Message string

	// Err is the underlying client error.
	Err error
}

// Error implements error.
func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("github: %d %s", e.StatusCode, e.Message)
	}
	return "github: " + e.Message
}

// Unwrap returns the underlying client error.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Header returns the value of the named response header. The lookup is
// case-insensitive.
func (e *UpstreamError) Header(name string) (string, bool) {
	v, ok := e.Headers[strings.ToLower(name)]
	return v, ok
}

// FlattenHeaders converts http.Header into the lower-case single-value form
// used by UpstreamError. Multi-valued headers keep their first value.
func FlattenHeaders(h http.Header) map[string]string {
	if len(h) == 0 {
		return nil
	}
	out := make(map[string]string, len(h))
	for name, values := range h {
		if len(values) == 0 {
			continue
		}
		out[strings.ToLower(name)] = values[0]
	}
	return out
}
