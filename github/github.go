package github

import (
	"time"

	"github.com/jmgilman/copilot-mcp/errors"
)

// DateLayout is the YYYY-MM-DD layout the Copilot usage and metrics endpoints
// accept for their since/until parameters.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date. Out-of-range days such as 2024-02-30 are
// rejected.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errors.Wrap(err, errors.CodeInvalidInput, "failed to parse date")
	}
	return t, nil
}
