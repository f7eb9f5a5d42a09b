// Package validate rejects malformed tool arguments before any network call
// is made.
//
// Every function is pure and returns nil or a validation failure: an
// errors.PlatformError with code CodeInvalidInput whose context names the
// offending field. Validation failures are permanent and never retried.
package validate

import (
	"fmt"
	"regexp"

	"github.com/jmgilman/copilot-mcp/errors"
	"github.com/jmgilman/copilot-mcp/github"
)

const (
	// MaxNameLength is the longest organization, enterprise or user handle
	// GitHub accepts.
	MaxNameLength = 39

	// MinPerPage and MaxPerPage bound the per_page parameter.
	MinPerPage = 1
	MaxPerPage = 100
)

// Field names reported in validation failures.
const (
	FieldOrg               = "org"
	FieldEnterprise        = "enterprise"
	FieldUsername          = "username"
	FieldSelectedUsernames = "selected_usernames"
	FieldPage              = "page"
	FieldPerPage           = "per_page"
)

var (
	namePattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?$`)

	// idpUsernamePattern matches handles provisioned by an identity provider
	// for enterprise managed users: a base handle, one underscore, and an
	// alphanumeric short-code suffix.
	idpUsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?_[a-zA-Z0-9]+$`)

	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// OrganizationName checks an organization login.
func OrganizationName(name string) error {
	return slug(FieldOrg, name)
}

// EnterpriseName checks an enterprise slug. It follows the organization rule.
func EnterpriseName(name string) error {
	return slug(FieldEnterprise, name)
}

// Username checks a user login. A name is valid if it follows the
// organization rule or is an IdP-suffixed handle such as "octocat_acme".
func Username(name string) error {
	return username(FieldUsername, name)
}

// Usernames checks a batch of logins for a seat assignment or cancellation.
// The list must be non-empty and every entry must pass Username; the first
// bad entry fails the whole batch.
func Usernames(names []string) error {
	if len(names) == 0 {
		return Failure(FieldSelectedUsernames, "must contain at least one username")
	}
	for i, name := range names {
		if err := username(fmt.Sprintf("%s[%d]", FieldSelectedUsernames, i), name); err != nil {
			return err
		}
	}
	return nil
}

// Date checks that value is a YYYY-MM-DD string naming a real calendar day.
func Date(value, field string) error {
	if !datePattern.MatchString(value) {
		return Failure(field, "must be a date in YYYY-MM-DD format")
	}
	if _, err := github.ParseDate(value); err != nil {
		return Failure(field, fmt.Sprintf("%q is not a valid calendar date", value))
	}
	return nil
}

// Pagination checks page >= 1 and per_page within [MinPerPage, MaxPerPage].
func Pagination(page, perPage int) error {
	if page < 1 {
		return Failure(FieldPage, "must be greater than or equal to 1")
	}
	if perPage < MinPerPage || perPage > MaxPerPage {
		return Failure(FieldPerPage, fmt.Sprintf("must be between %d and %d", MinPerPage, MaxPerPage))
	}
	return nil
}

// Failure builds a validation failure for field.
func Failure(field, reason string) error {
	err := errors.New(errors.CodeInvalidInput, fmt.Sprintf("%s: %s", field, reason))
	return errors.WithContextMap(err, map[string]interface{}{
		"field":  field,
		"reason": reason,
	})
}

// IsFailure reports whether err is a validation failure.
func IsFailure(err error) bool {
	return err != nil && errors.GetCode(err) == errors.CodeInvalidInput
}

// Field returns the field named by a validation failure, or "" if err is not
// one.
func Field(err error) string {
	var platformErr errors.PlatformError
	if !errors.As(err, &platformErr) || platformErr.Code() != errors.CodeInvalidInput {
		return ""
	}
	field, _ := platformErr.Context()["field"].(string)
	return field
}

func slug(field, name string) error {
	if name == "" {
		return Failure(field, "must not be empty")
	}
	if len(name) > MaxNameLength {
		return Failure(field, fmt.Sprintf("must be at most %d characters", MaxNameLength))
	}
	if !namePattern.MatchString(name) {
		return Failure(field, "may only contain alphanumeric characters or hyphens, and cannot begin or end with a hyphen")
	}
	return nil
}

func username(field, name string) error {
	if name == "" {
		return Failure(field, "must not be empty")
	}
	if len(name) <= MaxNameLength && namePattern.MatchString(name) {
		return nil
	}
	if idpUsernamePattern.MatchString(name) {
		return nil
	}
	return Failure(field, fmt.Sprintf("%q is not a valid GitHub username", name))
}
