package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat JSON envelope for an error. The wrapped chain is
// left out; it may carry upstream response bodies or local file paths.
type ErrorResponse struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Classification string                 `json:"classification"`
	Context        map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error into an ErrorResponse. Returns nil if err is nil.
//
// Untyped errors are reported with CodeUnknown and their Error() text.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	resp := &ErrorResponse{
		Code:           string(GetCode(err)),
		Message:        err.Error(),
		Classification: string(GetClassification(err)),
	}

	var platformErr PlatformError
	if As(err, &platformErr) {
		resp.Message = platformErr.Message()
		resp.Context = platformErr.Context()
	}

	return resp
}

// MarshalJSON renders a platformError as its ErrorResponse.
func (e *platformError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(&ErrorResponse{
		Code:           string(e.code),
		Message:        e.message,
		Classification: string(e.classification),
		Context:        e.context,
	})
	if err != nil {
		return nil, Wrap(err, CodeInternal, "failed to marshal error response")
	}
	return data, nil
}
